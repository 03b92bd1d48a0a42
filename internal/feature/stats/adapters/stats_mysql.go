// Package adapters provides the repository implementations for the stats feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arena_backend/internal/feature/stats/domain/entity"
	"arena_backend/internal/feature/stats/usecase"
)

// statsMySQL is the MySQL implementation of the StatsRepository interface,
// backed by GORM.
type statsMySQL struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsMySQL)(nil)

// NewStatsMySQL creates a new statsMySQL with the given gorm.DB connection.
func NewStatsMySQL(db *gorm.DB) *statsMySQL {
	return &statsMySQL{db: db}
}

// RecordMatch stores the match and bumps both players' aggregates in one
// transaction, so a partially applied result can never be observed.
func (r *statsMySQL) RecordMatch(ctx context.Context, m *entity.Match) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		if err := bumpStats(tx, m.Winner(), 1, 0); err != nil {
			return err
		}
		return bumpStats(tx, m.Loser(), 0, 1)
	})
}

// bumpStats inserts or increments a player's aggregate row.
func bumpStats(tx *gorm.DB, userID uint, wins, losses int) error {
	row := entity.PlayerStats{UserID: userID, Wins: wins, Losses: losses, Played: 1}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"wins":   gorm.Expr("wins + ?", wins),
			"losses": gorm.Expr("losses + ?", losses),
			"played": gorm.Expr("played + 1"),
		}),
	}).Create(&row).Error
}

// FindStats retrieves a player's aggregate row.
// Returns usecase.ErrStatsNotFound when the player has no row yet.
func (r *statsMySQL) FindStats(ctx context.Context, userID uint) (*entity.PlayerStats, error) {
	var s entity.PlayerStats
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStatsNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Leaderboard returns the top players by wins joined with their profile
// display names. Ties on wins are broken by fewer games played.
func (r *statsMySQL) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var out []entity.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Table("player_stats").
		Select("player_stats.user_id AS user_id, COALESCE(profiles.display_name, '') AS display_name, player_stats.wins AS wins, player_stats.played AS played").
		Joins("LEFT JOIN profiles ON profiles.user_id = player_stats.user_id").
		Order("player_stats.wins DESC, player_stats.played ASC, player_stats.user_id ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserExists reports whether a user row with the given ID exists.
func (r *statsMySQL) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
