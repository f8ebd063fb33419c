package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// WatchlistRepository defines persistence for per-user saved movies.
// Uniqueness on (user, imdb id) is enforced at the storage layer; Insert
// returns domain.ErrDuplicateEntry when the pair already exists, which the
// service layer treats as success.
type WatchlistRepository interface {
	Insert(ctx context.Context, entry *domain.WatchlistEntry) (*domain.WatchlistEntry, error)
	// FindOne returns the entry for the pair, or domain.ErrEntryNotFound.
	FindOne(ctx context.Context, userID, imdbID string) (*domain.WatchlistEntry, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.WatchlistEntry, error)
	// Delete removes the matching entry. Deleting an absent entry is not an error.
	Delete(ctx context.Context, userID, imdbID string) error
	Exists(ctx context.Context, userID, imdbID string) (bool, error)
}
