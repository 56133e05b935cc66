package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewRedis connects to the Redis instance holding operator sessions.
// The URL uses the redis:// scheme, e.g. redis://localhost:6379/0.
func NewRedis(url string, log zerolog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	rlog := log.With().Str("component", "redis").Logger()
	rlog.Info().
		Str("addr", opts.Addr).
		Msg("Redis connection established")

	return client, nil
}
