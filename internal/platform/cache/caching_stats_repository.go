// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"arena_backend/internal/feature/stats/domain/entity"
	"arena_backend/internal/feature/stats/usecase"
)

// CachingStatsRepository decorates a StatsRepository with Redis caching of
// the leaderboard. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
type CachingStatsRepository struct {
	inner     usecase.StatsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingStatsRepository decorates a StatsRepository with Redis caching.
// If ttl is 0, it defaults to 30 seconds. If namespace is empty, it uses
// "leaderboard".
func NewCachingStatsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatsRepository, namespace string) *CachingStatsRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	if namespace == "" {
		namespace = "leaderboard"
	}
	return &CachingStatsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// RecordMatch stores the match and invalidates the cached leaderboard.
func (c *CachingStatsRepository) RecordMatch(ctx context.Context, m *entity.Match) error {
	if err := c.inner.RecordMatch(ctx, m); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail the write if invalidation fails
	return nil
}

// FindStats passes through to the underlying repository. Per-player
// aggregates are a single primary-key read and not worth caching.
func (c *CachingStatsRepository) FindStats(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
	return c.inner.FindStats(ctx, userID)
}

// UserExists passes through to the underlying repository.
func (c *CachingStatsRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	return c.inner.UserExists(ctx, userID)
}

// Leaderboard retrieves the leaderboard, checking cache first then falling
// back to the database.
func (c *CachingStatsRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Leaderboard(ctx, limit)
	}

	key := c.cacheKey(limit)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.LeaderboardEntry
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.Leaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a specific leaderboard size.
func (c *CachingStatsRepository) cacheKey(limit int) string {
	return fmt.Sprintf("%s:%d", c.namespace, limit)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStatsRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
