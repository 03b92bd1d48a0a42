// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"arena_backend/internal/feature/users/domain/entity"
	"arena_backend/internal/feature/users/usecase"
)

// profileMySQL is the MySQL implementation of the ProfileRepository
// interface, backed by GORM.
type profileMySQL struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileMySQL)(nil)

// NewProfileMySQL creates a new profileMySQL with the given gorm.DB connection.
func NewProfileMySQL(db *gorm.DB) *profileMySQL {
	return &profileMySQL{db: db}
}

// FindByUserID retrieves a profile by user ID.
// Returns usecase.ErrProfileNotFound when no row exists.
func (r *profileMySQL) FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error) {
	var p entity.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Upsert inserts the profile row or updates its mutable columns.
func (r *profileMySQL) Upsert(ctx context.Context, p *entity.Profile) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "avatar_url", "updated_at"}),
	}).Create(p).Error
}
