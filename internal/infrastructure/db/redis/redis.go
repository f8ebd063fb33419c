// Package redis holds the Redis connector and the movie detail cache. Redis
// is strictly a read-through cache here; losing it degrades catalogue lookups
// to upstream calls and nothing else.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config captures the settings for the cache connection. Password and TLS
// are zero-valued for a local instance; hosted deployments set both.
type Config struct {
	Addr     string
	Password string
	DB       int
	TLS      bool
	Timeout  time.Duration
}

// Connect opens a client and verifies it with a ping so a misconfigured
// cache fails at startup instead of degrading every movie lookup silently.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
