package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fablink/fablink-api/models"
)

// MatchCache is the swappable key-value store used to memoize ranking
// results. The engine itself stays cache-agnostic: controllers consult the
// cache around it. Entries expire after their TTL and Clear drops everything.
type MatchCache interface {
	Get(ctx context.Context, key string) (*models.RankingResult, error)
	Set(ctx context.Context, key string, result *models.RankingResult, ttl time.Duration) error
	Clear(ctx context.Context) error
}

var matchCacheInstance MatchCache

// InitMatchCache initializes the global match cache instance
func InitMatchCache(cache MatchCache) MatchCache {
	matchCacheInstance = cache
	return matchCacheInstance
}

// GetMatchCache returns the initialized match cache instance
func GetMatchCache() MatchCache {
	return matchCacheInstance
}

// SetMatchCache sets the match cache instance (primarily for testing)
func SetMatchCache(cache MatchCache) {
	matchCacheInstance = cache
}

// MatchCacheKey builds the cache key for one ranking request
func MatchCacheKey(orderID uint, maxRecommendations int, minFloor float64, urgencyBoost float64) string {
	return fmt.Sprintf("match:order:%d:max:%d:floor:%.1f:boost:%.2f", orderID, maxRecommendations, minFloor, urgencyBoost)
}

// memoryCacheEntry is one TTL-stamped entry in the in-memory cache.
// Results are stored encoded, same as the Redis variant, so Get always
// hands back a private copy and concurrent callers never share a struct.
type memoryCacheEntry struct {
	payload   []byte
	expiresAt time.Time
}

// MemoryMatchCache is the default in-process MatchCache. Suitable for a
// single instance; deployments with multiple replicas use RedisMatchCache.
type MemoryMatchCache struct {
	entries map[string]memoryCacheEntry
	mu      sync.RWMutex
}

// NewMemoryMatchCache creates an empty in-memory cache
func NewMemoryMatchCache() *MemoryMatchCache {
	return &MemoryMatchCache{
		entries: make(map[string]memoryCacheEntry),
	}
}

// Get returns the cached result, or nil when absent or expired
func (c *MemoryMatchCache) Get(ctx context.Context, key string) (*models.RankingResult, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// The key may have been re-Set since the read above; only drop
		// the entry we actually saw expire.
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, nil
	}

	var result models.RankingResult
	if err := json.Unmarshal(entry.payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for %s: %w", key, err)
	}
	return &result, nil
}

// Set stores the result under key for ttl
func (c *MemoryMatchCache) Set(ctx context.Context, key string, result *models.RankingResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode ranking result: %w", err)
	}
	c.mu.Lock()
	c.entries[key] = memoryCacheEntry{
		payload:   payload,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Clear removes all cached results
func (c *MemoryMatchCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memoryCacheEntry)
	c.mu.Unlock()
	return nil
}

// redisMatchKeyPattern scopes Clear to match-cache keys so a shared Redis
// instance never loses unrelated data.
const redisMatchKeyPattern = "match:order:*"

// RedisMatchCache is the Redis-backed MatchCache for multi-instance
// deployments. Results are stored as JSON with Redis-native expiry.
type RedisMatchCache struct {
	client *redis.Client
}

// NewRedisMatchCache creates a MatchCache over the given Redis connection URL
func NewRedisMatchCache(redisURL string) (*RedisMatchCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	return &RedisMatchCache{client: redis.NewClient(opts)}, nil
}

// NewRedisMatchCacheFromClient wraps an existing client (primarily for testing)
func NewRedisMatchCacheFromClient(client *redis.Client) *RedisMatchCache {
	return &RedisMatchCache{client: client}
}

// Get returns the cached result, or nil when absent
func (c *RedisMatchCache) Get(ctx context.Context, key string) (*models.RankingResult, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var result models.RankingResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt cache entry for %s: %w", key, err)
	}
	return &result, nil
}

// Set stores the result under key for ttl
func (c *RedisMatchCache) Set(ctx context.Context, key string, result *models.RankingResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode ranking result: %w", err)
	}
	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Clear removes all match-cache keys
func (c *RedisMatchCache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, redisMatchKeyPattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan failed: %w", err)
	}
	return nil
}
