// internal/domain/cart/storage.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is the durable key-value boundary the cart store persists
// through. Last write wins; no transactional guarantees assumed.
type Storage interface {
	// Read returns the stored value for key, or found=false when absent
	Read(ctx context.Context, key string) (value []byte, found bool, err error)
	// Write stores value under key, overwriting any prior value
	Write(ctx context.Context, key string, value []byte) error
}

// RedisStorage persists cart state as a JSON blob in Redis
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage creates Redis-backed cart storage. Keys expire after
// ttl; every write refreshes the expiry.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStorage) Read(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cart state: %w", err)
	}
	return value, true, nil
}

func (s *RedisStorage) Write(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cart state: %w", err)
	}
	return nil
}
