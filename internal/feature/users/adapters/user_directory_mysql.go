package adapters

import (
	"context"

	"gorm.io/gorm"

	"arena_backend/internal/feature/users/usecase"
)

// userDirectoryMySQL answers user-existence checks against the users table.
// It queries by table name to avoid coupling this feature to the auth
// feature's entity type.
type userDirectoryMySQL struct {
	db *gorm.DB
}

var _ usecase.UserDirectory = (*userDirectoryMySQL)(nil)

// NewUserDirectoryMySQL creates a new userDirectoryMySQL.
func NewUserDirectoryMySQL(db *gorm.DB) *userDirectoryMySQL {
	return &userDirectoryMySQL{db: db}
}

// Exists reports whether a user row with the given ID exists.
func (r *userDirectoryMySQL) Exists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("users").Where("id = ?", userID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
