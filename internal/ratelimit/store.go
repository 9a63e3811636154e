package ratelimit

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
)

// NewStore builds the counter backend selected by cfg.Store. The returned
// close function releases backend connections and is never nil.
func NewStore(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (Store, func() error, error) {
	switch cfg.Store {
	case config.RateLimitStoreMemory, "":
		log.Info().Dur("window", cfg.Window).Int("max", cfg.Max).Msg("using in-memory rate limit store")
		return NewMemoryStore(cfg.Window), func() error { return nil }, nil

	case config.RateLimitStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("%w: redis ping %s: %w", ErrStoreFailure, cfg.Redis.Addr, err)
		}

		log.Info().Str("addr", cfg.Redis.Addr).Str("prefix", cfg.Redis.Prefix).Msg("using redis rate limit store")
		return NewRedisStore(client, cfg.Window, WithPrefix(cfg.Redis.Prefix)), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}
}
