// Package entity defines the domain entities for the users feature.
package entity

import "time"

// Profile holds the public-facing attributes of a user. It is keyed by the
// user ID and created lazily on first update.
type Profile struct {
	UserID      uint   `gorm:"primaryKey"`
	DisplayName string `gorm:"size:50"`
	AvatarURL   string `gorm:"size:255"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Friendship is a directed edge from a user to a friend. The composite
// unique index prevents duplicate edges.
type Friendship struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_friend,priority:1"`
	FriendID  uint `gorm:"not null;uniqueIndex:idx_user_friend,priority:2"`
	CreatedAt time.Time
}

// Friend is the read model for one friend-list entry.
type Friend struct {
	UserID      uint
	DisplayName string
}
