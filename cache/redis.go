package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"clinicstore/util"

	"github.com/redis/go-redis/v9"
)

// Cache keeps JSON encoded records in redis. A nil *Cache is a valid,
// disabled cache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func DoctorKey(id int64) string {
	return util.DoctorKey + strconv.FormatInt(id, 10)
}

func PrescriptionKey(id string) string {
	return util.PrescriptionKey + id
}

func (c *Cache) SetCache(ctx context.Context, key string, value interface{}) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// GetCache decodes the cached value into out and reports whether it was present.
func (c *Cache) GetCache(ctx context.Context, key string, out interface{}) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) DeleteCache(ctx context.Context, key string) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}
