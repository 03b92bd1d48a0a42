package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"arena_backend/internal/feature/users/domain/entity"
	"arena_backend/internal/feature/users/usecase"
)

// friendMySQL is the MySQL implementation of the FriendRepository interface.
type friendMySQL struct {
	db *gorm.DB
}

var _ usecase.FriendRepository = (*friendMySQL)(nil)

// NewFriendMySQL creates a new friendMySQL with the given gorm.DB connection.
func NewFriendMySQL(db *gorm.DB) *friendMySQL {
	return &friendMySQL{db: db}
}

// Add inserts a friendship edge. The composite unique index rejects
// duplicate pairs; MySQL error 1062 maps to ErrAlreadyFriends.
func (r *friendMySQL) Add(ctx context.Context, userID, friendID uint) error {
	edge := entity.Friendship{UserID: userID, FriendID: friendID}
	if err := r.db.WithContext(ctx).Create(&edge).Error; err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrAlreadyFriends
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrAlreadyFriends
		}
		return err
	}
	return nil
}

// Remove deletes a friendship edge.
// Returns usecase.ErrFriendshipNotFound when no edge matched.
func (r *friendMySQL) Remove(ctx context.Context, userID, friendID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&entity.Friendship{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrFriendshipNotFound
	}
	return nil
}

// List returns the user's friends joined with their profile display names.
// Friends without a profile row appear with an empty display name.
func (r *friendMySQL) List(ctx context.Context, userID uint) ([]entity.Friend, error) {
	var out []entity.Friend
	err := r.db.WithContext(ctx).
		Table("friendships").
		Select("friendships.friend_id AS user_id, COALESCE(profiles.display_name, '') AS display_name").
		Joins("LEFT JOIN profiles ON profiles.user_id = friendships.friend_id").
		Where("friendships.user_id = ?", userID).
		Order("friendships.created_at ASC").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
