package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps token ids in Redis so sessions survive restarts and can
// be shared across replicas. Expiry rides on the key TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error {
	key := redisKeyPrefix + jti
	if err := s.client.Set(ctx, key, strconv.FormatInt(userID, 10), ttl).Err(); err != nil {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Exists(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("redis check session: %w", err)
	}
	return n > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, jti string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+jti).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
