package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tastrnet/mainversion-sub000/pkg/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache is a thin JSON read-through layer over Redis. A nil *Cache is valid
// and behaves as a permanent miss, so callers never branch on availability.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func InitRedis(config utils.RedisConfig, log *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", config.Addr, err)
	}

	log.Info("Redis connected", zap.String("addr", config.Addr))

	return &Cache{
		client: client,
		ttl:    config.TTL(),
		log:    log.With(zap.String("component", "cache")),
	}, nil
}

// GetJSON unmarshals the value at key into dest. Returns false on miss,
// on a disabled cache, or on any error (errors are logged, never returned).
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("Cache read failed", zap.Error(err), zap.String("key", key))
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warn("Cache entry corrupt, dropping", zap.Error(err), zap.String("key", key))
		c.client.Del(ctx, key)
		return false
	}

	return true
}

// SetJSON stores value at key with the configured TTL. Best effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value any) {
	if c == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Cache marshal failed", zap.Error(err), zap.String("key", key))
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// Invalidate removes keys. Best effort.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Cache invalidate failed", zap.Error(err), zap.Strings("keys", keys))
	}
}
