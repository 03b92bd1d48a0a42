package usecase

import (
	"context"
	"errors"
	"fmt"

	"arena_backend/internal/feature/users/domain/entity"
)

const (
	// maxDisplayNameLength matches the column size of the display name field.
	maxDisplayNameLength = 50
	// maxAvatarURLLength matches the column size of the avatar URL field.
	maxAvatarURLLength = 255
)

// ProfileRepository abstracts the persistence layer for profiles.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ProfileRepository interface {
	// FindByUserID retrieves a profile, or ErrProfileNotFound when none exists.
	FindByUserID(ctx context.Context, userID uint) (*entity.Profile, error)

	// Upsert inserts or updates the profile row for the profile's user.
	Upsert(ctx context.Context, p *entity.Profile) error
}

// FriendRepository abstracts the persistence layer for friendship edges.
type FriendRepository interface {
	// Add inserts a friendship edge; ErrAlreadyFriends on a duplicate pair.
	Add(ctx context.Context, userID, friendID uint) error

	// Remove deletes a friendship edge; ErrFriendshipNotFound when absent.
	Remove(ctx context.Context, userID, friendID uint) error

	// List returns the friends of a user with their display names.
	List(ctx context.Context, userID uint) ([]entity.Friend, error)
}

// UserDirectory answers existence checks against the identity store.
type UserDirectory interface {
	Exists(ctx context.Context, userID uint) (bool, error)
}

// usersUsecase implements the profile and friends business logic.
type usersUsecase struct {
	profiles ProfileRepository
	friends  FriendRepository
	users    UserDirectory
}

// NewUsersUsecase creates a new instance of usersUsecase.
func NewUsersUsecase(profiles ProfileRepository, friends FriendRepository, users UserDirectory) *usersUsecase {
	return &usersUsecase{
		profiles: profiles,
		friends:  friends,
		users:    users,
	}
}

// GetProfile returns the profile of the given user. A user who never set a
// profile gets an empty one; an identity that no longer exists is
// ErrUserNotFound.
func (u *usersUsecase) GetProfile(ctx context.Context, userID uint) (*entity.Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrProfileNotFound) {
		return nil, err
	}

	exists, err := u.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}
	return &entity.Profile{UserID: userID}, nil
}

// UpdateProfile stores the display name and avatar URL for the user,
// creating the profile row if necessary.
func (u *usersUsecase) UpdateProfile(ctx context.Context, userID uint, displayName, avatarURL string) (*entity.Profile, error) {
	if len(displayName) > maxDisplayNameLength {
		return nil, fmt.Errorf("%w: display name must be at most %d characters long", ErrValidation, maxDisplayNameLength)
	}
	if len(avatarURL) > maxAvatarURLLength {
		return nil, fmt.Errorf("%w: avatar url must be at most %d characters long", ErrValidation, maxAvatarURLLength)
	}

	exists, err := u.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	p := &entity.Profile{UserID: userID, DisplayName: displayName, AvatarURL: avatarURL}
	if err := u.profiles.Upsert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// AddFriend creates a friendship edge from userID to friendID.
func (u *usersUsecase) AddFriend(ctx context.Context, userID, friendID uint) error {
	if userID == friendID {
		return ErrSelfFriend
	}

	exists, err := u.users.Exists(ctx, friendID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	return u.friends.Add(ctx, userID, friendID)
}

// RemoveFriend deletes the friendship edge from userID to friendID.
func (u *usersUsecase) RemoveFriend(ctx context.Context, userID, friendID uint) error {
	return u.friends.Remove(ctx, userID, friendID)
}

// ListFriends returns the user's friends as a flat list.
func (u *usersUsecase) ListFriends(ctx context.Context, userID uint) ([]entity.Friend, error) {
	return u.friends.List(ctx, userID)
}
