package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps counters in Redis so every replica shares one quota.
// Each key is an integer with a TTL equal to the window.
type RedisStore struct {
	client redis.Cmdable
	window time.Duration
	prefix string
	now    func() time.Time
}

type RedisOption func(*RedisStore)

func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

func NewRedisStore(client redis.Cmdable, window time.Duration, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, window: window, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Increment(ctx context.Context, key string) (int, time.Time, error) {
	k := s.prefix + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.ExpireNX(ctx, k, s.window)
		pttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, err
	}

	ttl := pttl.Val()
	if ttl < 0 {
		// key lost its TTL (e.g. created by an older client); restart the window
		if err := s.client.PExpire(ctx, k, s.window).Err(); err != nil {
			return 0, time.Time{}, err
		}
		ttl = s.window
	}

	return int(incr.Val()), s.now().Add(ttl), nil
}
