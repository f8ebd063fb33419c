package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// AddWatchlistInput carries the denormalized display fields captured when a
// movie is saved.
type AddWatchlistInput struct {
	IMDbID  string
	Title   string
	Poster  string
	Year    string
	Type    string
	Rating  string
	Runtime string
}

// WatchlistService defines per-user saved-movie operations. Add and Remove
// are idempotent: re-adding an existing entry and removing an absent one both
// report success. Add's boolean reports whether a new entry was stored;
// false means the movie was already on the list and the stored entry is
// returned unchanged.
type WatchlistService interface {
	Add(ctx context.Context, userID string, input AddWatchlistInput) (*domain.WatchlistEntry, bool, error)
	List(ctx context.Context, userID string) ([]*domain.WatchlistEntry, error)
	Remove(ctx context.Context, userID, imdbID string) error
	Exists(ctx context.Context, userID, imdbID string) (bool, error)
}
