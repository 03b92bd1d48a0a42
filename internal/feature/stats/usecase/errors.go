// Package usecase implements the business logic for the stats feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a referenced player does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrStatsNotFound is returned by the repository when a player has no
	// aggregate row yet.
	ErrStatsNotFound = errors.New("stats not found")

	// ErrSelfMatch is returned when both sides of a match are the same player.
	ErrSelfMatch = errors.New("cannot record a match against yourself")

	// ErrInvalidScore is returned for negative or tied scores.
	ErrInvalidScore = errors.New("invalid score")
)
