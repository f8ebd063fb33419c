package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// WatchlistService implements per-user saved-movie operations. Uniqueness on
// (user, imdb id) lives in a storage-level constraint: a duplicate insert is
// reported by the repository and treated here as the already-saved success
// case, so concurrent adds for the same pair cannot create two entries.
type WatchlistService struct {
	repo   ports.WatchlistRepository
	logger zerolog.Logger
}

func NewWatchlistService(repo ports.WatchlistRepository, logger zerolog.Logger) *WatchlistService {
	return &WatchlistService{repo: repo, logger: logger}
}

func (s *WatchlistService) Add(ctx context.Context, userID string, input ports.AddWatchlistInput) (*domain.WatchlistEntry, bool, error) {
	imdbID := strings.TrimSpace(input.IMDbID)
	if imdbID == "" {
		return nil, false, domain.ErrMovieIDRequired
	}

	entry := &domain.WatchlistEntry{
		UserID:    userID,
		IMDbID:    imdbID,
		Title:     input.Title,
		Poster:    input.Poster,
		Year:      input.Year,
		Type:      input.Type,
		Rating:    input.Rating,
		Runtime:   input.Runtime,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, entry)
	if err != nil {
		if err == domain.ErrDuplicateEntry {
			// Already saved: hand back the stored entry so the response
			// carries its real id, same as a first add.
			existing, ferr := s.repo.FindOne(ctx, userID, imdbID)
			if ferr != nil {
				return nil, false, ferr
			}
			s.logger.Debug().Str("user_id", userID).Str("imdb_id", imdbID).Msg("watchlist entry already present")
			return existing, false, nil
		}
		return nil, false, err
	}

	s.logger.Info().Str("user_id", userID).Str("imdb_id", imdbID).Msg("watchlist entry added")
	return created, true, nil
}

func (s *WatchlistService) List(ctx context.Context, userID string) ([]*domain.WatchlistEntry, error) {
	return s.repo.FindByUser(ctx, userID)
}

// Remove deletes the matching entry. Removing an entry that is not there
// still reports success.
func (s *WatchlistService) Remove(ctx context.Context, userID, imdbID string) error {
	if strings.TrimSpace(imdbID) == "" {
		return domain.ErrMovieIDRequired
	}
	return s.repo.Delete(ctx, userID, imdbID)
}

func (s *WatchlistService) Exists(ctx context.Context, userID, imdbID string) (bool, error) {
	if strings.TrimSpace(imdbID) == "" {
		return false, domain.ErrMovieIDRequired
	}
	return s.repo.Exists(ctx, userID, imdbID)
}
