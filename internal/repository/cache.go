package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_response_system/internal/service"
)

// CacheRepository - хранилище ключ/значение на Redis для мемоизации внешних вызовов
type CacheRepository struct {
	redisClient *redis.Client
}

func NewCacheRepository(redisClient *redis.Client) service.Cache {
	return &CacheRepository{redisClient: redisClient}
}

// Get читает значение по ключу и декодирует его в dest.
// Значения хранятся как JSON; если декодирование не удалось, а dest - *string,
// возвращается сырое значение как есть.
func (r *CacheRepository) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache key %q: %w", key, err)
	}

	if err := json.Unmarshal(val, dest); err != nil {
		if s, ok := dest.(*string); ok {
			*s = string(val)
			return true, nil
		}
		return false, fmt.Errorf("failed to unmarshal cache value for key %q: %w", key, err)
	}
	return true, nil
}

// Set сохраняет значение по ключу с заданным TTL. ttl == 0 означает хранение без срока жизни.
func (r *CacheRepository) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value for key %q: %w", key, err)
	}

	if err := r.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %q: %w", key, err)
	}
	return nil
}
