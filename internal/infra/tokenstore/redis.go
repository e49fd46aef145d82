package tokenstore

import (
	"context"
	"time"

	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "roomescape:revoked:"

// RedisStore keeps revoked token ids as keys that expire with the token itself.
type RedisStore struct {
	client redis.Cmdable
	clock  clock.Clock
}

func NewRedisStore(client redis.Cmdable, clk clock.Clock) *RedisStore {
	return &RedisStore{client: client, clock: clk}
}

func (s *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store revoked token")
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, errs.Wrap(err, "failed to look up revoked token")
	}
	return n > 0, nil
}
