package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"medtrack-go/internal/config"
	categoriesdomain "medtrack-go/internal/domain/categories"
	"medtrack-go/pkg/logger"
)

const categoriesKey = "medtrack:categories"

// CategoriesCache keeps the category list in Redis so several instances can
// share one cache. Failures degrade to a miss; the store stays the source of
// truth.
type CategoriesCache struct {
	client *redis.Client
	log    logger.Logger
}

func NewCategoriesCache(cfg config.CacheConfig, log logger.Logger) (*CategoriesCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &CategoriesCache{client: client, log: log}, nil
}

func (c *CategoriesCache) Get() ([]categoriesdomain.Category, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	payload, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("rediscache: get failed", "err", err)
		}
		return nil, false
	}

	var categories []categoriesdomain.Category
	if err := json.Unmarshal(payload, &categories); err != nil {
		c.log.Warn("rediscache: decode failed", "err", err)
		return nil, false
	}
	return categories, true
}

func (c *CategoriesCache) Set(categories []categoriesdomain.Category, ttl time.Duration) {
	if ttl <= 0 {
		c.Delete()
		return
	}

	payload, err := json.Marshal(categories)
	if err != nil {
		c.log.Warn("rediscache: encode failed", "err", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.client.Set(ctx, categoriesKey, payload, ttl).Err(); err != nil {
		c.log.Warn("rediscache: set failed", "err", err)
	}
}

func (c *CategoriesCache) Delete() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := c.client.Del(ctx, categoriesKey).Err(); err != nil {
		c.log.Warn("rediscache: delete failed", "err", err)
	}
}

func (c *CategoriesCache) Close() error {
	return c.client.Close()
}
