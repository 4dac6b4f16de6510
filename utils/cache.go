package utils

import (
	"context"
	"encoding/json"
	"time"

	"github.com/TrungLe-99/ShopViet/config"
)

// Cache staleness windows per concern. Frequently-changing lists stay short,
// slow-changing catalogs long.
const (
	CacheTTLOrders     = 30 * time.Second
	CacheTTLProducts   = 5 * time.Minute
	CacheTTLCategories = 15 * time.Minute
	CacheTTLShipping   = 15 * time.Minute
)

// CacheGetJSON loads a cached value into dest. A miss, a disabled cache or a
// decode failure all report false; callers fall through to the database.
func CacheGetJSON(key string, dest interface{}) bool {
	if config.Redis == nil {
		return false
	}

	data, err := config.Redis.Get(context.Background(), key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		LogDebug("Cache decode failed for key %s: %v", key, err)
		return false
	}
	return true
}

// CacheSetJSON stores a value under key for the given TTL. Failures are
// logged and ignored; the cache never fails a request.
func CacheSetJSON(key string, value interface{}, ttl time.Duration) {
	if config.Redis == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		LogDebug("Cache encode failed for key %s: %v", key, err)
		return
	}
	if err := config.Redis.Set(context.Background(), key, data, ttl).Err(); err != nil {
		LogDebug("Cache set failed for key %s: %v", key, err)
	}
}

// InvalidateCache drops the given keys after a successful mutation
func InvalidateCache(keys ...string) {
	if config.Redis == nil || len(keys) == 0 {
		return
	}
	if err := config.Redis.Del(context.Background(), keys...).Err(); err != nil {
		LogDebug("Cache invalidation failed: %v", err)
	}
}
