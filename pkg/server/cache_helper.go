package server

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
)

// CacheHelper returns the encoded result of fn, served from the cache when
// possible. Cache failures only cost a recomputation.
type CacheHelper[T any] struct {
	Cache      Cache
	Expiration time.Duration
}

func NewCacheHelper[T any](cache Cache, expiration time.Duration) *CacheHelper[T] {
	return &CacheHelper[T]{Cache: cache, Expiration: expiration}
}

func (c *CacheHelper[T]) Handle(ctx context.Context, key string, fn func() T) ([]byte, bool, error) {
	if c.Cache != nil {
		data, err := c.Cache.Get(ctx, key)
		if err == nil {
			return data, true, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			log.Printf("cache get %s failed: %v", key, err)
		}
	}
	data, err := sonic.Marshal(fn())
	if err != nil {
		return nil, false, err
	}
	if c.Cache != nil {
		if err := c.Cache.Set(ctx, key, data, c.Expiration); err != nil {
			log.Printf("cache set %s failed: %v", key, err)
		}
	}
	return data, false, nil
}
