package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/movian/movian-api/internal/core/domain"
	"github.com/movian/movian-api/internal/core/ports"
)

// MovieService proxies the external movie catalogue and trailer lookup.
// Detail responses sit behind a fail-safe cache: cache errors degrade to an
// upstream fetch and never fail the request.
type MovieService struct {
	movies   ports.MovieFinder
	trailers ports.TrailerFinder
	cache    ports.MovieCache
	logger   zerolog.Logger
}

func NewMovieService(
	movies ports.MovieFinder,
	trailers ports.TrailerFinder,
	cache ports.MovieCache,
	logger zerolog.Logger,
) *MovieService {
	return &MovieService{movies: movies, trailers: trailers, cache: cache, logger: logger}
}

func (s *MovieService) Search(ctx context.Context, query string, page int, mediaType string) (*ports.MovieSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrQueryRequired
	}
	if page < 1 {
		page = 1
	}

	items, total, err := s.movies.Search(ctx, query, page, mediaType)
	if err != nil {
		s.logger.Warn().Err(err).Str("query", query).Msg("movie search failed")
		return nil, err
	}
	return &ports.MovieSearchResult{Items: items, Total: total}, nil
}

func (s *MovieService) Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	imdbID = strings.TrimSpace(imdbID)
	if imdbID == "" {
		return nil, domain.ErrMovieIDRequired
	}

	if cached, err := s.cache.GetDetail(ctx, imdbID); err == nil && cached != nil {
		s.logger.Debug().Str("imdb_id", imdbID).Msg("movie detail cache hit")
		return cached, nil
	}

	detail, err := s.movies.ByID(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDetail(ctx, detail); err != nil {
		s.logger.Warn().Err(err).Str("imdb_id", imdbID).Msg("failed to cache movie detail")
	}
	return detail, nil
}

// Trailer resolves the movie title first (cached path), then searches
// YouTube for an official trailer match.
func (s *MovieService) Trailer(ctx context.Context, imdbID string) (*domain.Trailer, error) {
	detail, err := s.Detail(ctx, imdbID)
	if err != nil {
		return nil, err
	}

	query := detail.Title
	if detail.Year != "" {
		query += " " + detail.Year
	}
	query += " official trailer"

	trailer, err := s.trailers.Search(ctx, query)
	if err != nil {
		s.logger.Warn().Err(err).Str("imdb_id", imdbID).Msg("trailer lookup failed")
		return nil, err
	}
	return trailer, nil
}
