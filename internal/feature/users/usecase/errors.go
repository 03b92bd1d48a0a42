// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrValidation wraps every input-validation failure so transports can
	// map the whole family to a 400 with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileNotFound is returned by the repository when no profile row
	// exists yet for a user.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrSelfFriend is returned when a user tries to add themselves.
	ErrSelfFriend = errors.New("cannot add yourself as a friend")

	// ErrAlreadyFriends is returned when the friendship edge already exists.
	ErrAlreadyFriends = errors.New("already friends")

	// ErrFriendshipNotFound is returned when removing an edge that does not exist.
	ErrFriendshipNotFound = errors.New("friendship not found")
)
