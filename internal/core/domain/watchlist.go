package domain

import (
	"errors"
	"time"
)

var ErrMovieIDRequired = errors.New("id required")
var ErrDuplicateEntry = errors.New("watchlist entry already exists")
var ErrEntryNotFound = errors.New("watchlist entry not found")

// WatchlistEntry is one saved movie on a user's personal list. Display fields
// are denormalized from OMDb at save time so the list renders without an
// upstream round trip. Entries are immutable; they are only added and removed.
type WatchlistEntry struct {
	ID      string `json:"id"`
	UserID  string `json:"-"`
	IMDbID  string `json:"imdbID"`
	Title   string `json:"title"`
	Poster  string `json:"poster,omitempty"`
	Year    string `json:"year,omitempty"`
	Type    string `json:"type,omitempty"`
	Rating  string `json:"rating,omitempty"`
	Runtime string `json:"runtime,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
