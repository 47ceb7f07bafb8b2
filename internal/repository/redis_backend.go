package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/myclassprogress/pkg/errors"
)

// RedisBackend stores each key as a plain Redis string under an optional prefix.
type RedisBackend struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisBackend constructs a Redis backed store backend.
func NewRedisBackend(client *redis.Client, prefix string, logger *zap.Logger) *RedisBackend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisBackend{client: client, prefix: prefix, logger: logger}
}

// Get retrieves the raw value for key.
func (r *RedisBackend) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", appErrors.ErrKeyNotFound
	}

	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", appErrors.ErrKeyNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value without expiry.
func (r *RedisBackend) Set(ctx context.Context, key, value string) error {
	if r.client == nil {
		return nil
	}

	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return r.classify(fmt.Sprintf("redis set %s", key), err)
	}
	return nil
}

// SetMany writes every key in one MULTI/EXEC so readers never see half a save.
func (r *RedisBackend) SetMany(ctx context.Context, values map[string]string) error {
	if r.client == nil {
		return nil
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range values {
			pipe.Set(ctx, r.key(key), value, 0)
		}
		return nil
	})
	if err != nil {
		return r.classify("redis save", err)
	}
	return nil
}

// Remove deletes key.
func (r *RedisBackend) Remove(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}

	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *RedisBackend) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}

func (r *RedisBackend) key(key string) string {
	return r.prefix + key
}

// classify maps Redis maxmemory rejections to the quota error.
func (r *RedisBackend) classify(op string, err error) error {
	if strings.HasPrefix(err.Error(), "OOM") {
		r.logger.Warn("redis memory limit reached", zap.String("op", op), zap.Error(err))
		return appErrors.Wrap(err, appErrors.ErrQuotaExceeded.Code, appErrors.ErrQuotaExceeded.Status, appErrors.ErrQuotaExceeded.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}
