package ports

import (
	"context"

	"github.com/movian/movian-api/internal/core/domain"
)

// MovieSearchResult is a single page of OMDb search results.
type MovieSearchResult struct {
	Items []domain.MovieSummary
	Total int
}

// MovieService proxies the external movie catalogue. All operations carry a
// bounded timeout; upstream failures surface domain.ErrUpstream.
type MovieService interface {
	Search(ctx context.Context, query string, page int, mediaType string) (*MovieSearchResult, error)
	Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error)
	Trailer(ctx context.Context, imdbID string) (*domain.Trailer, error)
}

// MovieFinder is the outbound OMDb port.
type MovieFinder interface {
	Search(ctx context.Context, query string, page int, mediaType string) ([]domain.MovieSummary, int, error)
	ByID(ctx context.Context, imdbID string) (*domain.MovieDetail, error)
}

// TrailerFinder is the outbound YouTube port.
type TrailerFinder interface {
	Search(ctx context.Context, query string) (*domain.Trailer, error)
}

// MovieCache stores movie details with a TTL. Implementations fail safe: a
// broken cache behaves like a miss and never fails the request.
type MovieCache interface {
	GetDetail(ctx context.Context, imdbID string) (*domain.MovieDetail, error)
	SetDetail(ctx context.Context, detail *domain.MovieDetail) error
}
