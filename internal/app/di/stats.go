// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	statsadapters "arena_backend/internal/feature/stats/adapters"
	"arena_backend/internal/feature/stats/usecase"
	"arena_backend/internal/platform/cache"
)

// NewStatsRepository creates a StatsRepository implementation.
// If Redis is available, the MySQL repository is wrapped in a leaderboard
// cache. Otherwise, queries go straight to the database.
func NewStatsRepository(rdb *redis.Client, db *gorm.DB) usecase.StatsRepository {
	inner := statsadapters.NewStatsMySQL(db)
	if rdb != nil {
		return cache.NewCachingStatsRepository(rdb, 0, inner, "")
	}
	return inner
}
