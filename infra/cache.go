package infra

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/herocatalog/superhero-catalog/config"
)

// CacheClient is an optional Redis-backed cache for detail projections.
// All methods are nil-safe so callers never have to branch on whether the
// cache was configured.
type CacheClient struct {
	Client *redis.Client
}

func InitCacheClient(cfg *config.EnvConfig, logger *LoggerClient) *CacheClient {
	if cfg.Redis.Host == "" {
		logger.Infof("[Cache] REDIS_HOST not set, running without cache")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warningf("[Cache] Redis connection failed, running without cache: %v", err)
		return nil
	}

	logger.Infof("[Cache] Connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
	return &CacheClient{Client: client}
}

func (r *CacheClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if r == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, expiration).Err()
}

// Get unmarshals the cached value into dest. The first return value reports
// whether the key was present.
func (r *CacheClient) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if r == nil {
		return false, nil
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, json.Unmarshal(data, dest)
}

func (r *CacheClient) Delete(ctx context.Context, keys ...string) error {
	if r == nil {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

func (r *CacheClient) Close() error {
	if r == nil {
		return nil
	}
	return r.Client.Close()
}
