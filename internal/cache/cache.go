package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/port"
)

// detailTTL bounds staleness if an invalidation is ever missed; every
// mutation of the aggregate deletes the entry explicitly.
const detailTTL = 5 * time.Minute

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetPhotoDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	log.Printf("getting entry in cache for photo #%s...", id)

	val, err := c.client.Get(ctx, getCacheKey(id.String())).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetPhotoDetails(ctx context.Context, id db.UUID, data []byte) {
	log.Printf("creating entry in cache for photo #%s...", id)

	if err := c.client.Set(ctx, getCacheKey(id.String()), data, detailTTL).Err(); err != nil {
		log.Printf("redis set failed for photo #%s: %v", id, err)
	}
}

func (c *Cache) DeletePhotoDetails(ctx context.Context, id db.UUID) error {
	log.Printf("deleting entry in cache for photo #%s...", id)

	if err := c.client.Del(ctx, getCacheKey(id.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(id string) string {
	return "photo:" + id
}
