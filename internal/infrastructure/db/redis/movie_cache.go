package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/movian/movian-api/internal/core/domain"
)

const detailTTL = 6 * time.Hour

// MovieCache stores OMDb detail payloads in Redis. It fails safe: a broken
// or unreachable Redis behaves like a cache miss and never fails the request.
// Key format: movie:detail:<imdb_id>
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// GetDetail returns the cached detail or nil on miss. Connectivity errors
// degrade to a miss.
func (c *MovieCache) GetDetail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	raw, err := c.client.Get(ctx, c.key(imdbID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, nil
	}

	var detail domain.MovieDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		// poisoned entry: drop it and treat as a miss
		_ = c.client.Del(ctx, c.key(imdbID)).Err()
		return nil, nil
	}
	return &detail, nil
}

// SetDetail stores the detail with a TTL. Storage errors are swallowed.
func (c *MovieCache) SetDetail(ctx context.Context, detail *domain.MovieDetail) error {
	if c == nil || c.client == nil || detail == nil {
		return nil
	}

	raw, err := json.Marshal(detail)
	if err != nil {
		return err
	}
	_ = c.client.Set(ctx, c.key(detail.IMDbID), raw, detailTTL).Err()
	return nil
}

func (c *MovieCache) key(imdbID string) string {
	return "movie:detail:" + imdbID
}
