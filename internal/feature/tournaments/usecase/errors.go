// Package usecase implements the business logic for the tournaments feature.
package usecase

import "errors"

var (
	// ErrTournamentNotFound is returned when the referenced tournament does
	// not exist.
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrAlreadyJoined is returned when a player joins a tournament twice.
	ErrAlreadyJoined = errors.New("already joined")

	// ErrNotParticipant is returned when a tournament match names a player
	// who has not joined the tournament.
	ErrNotParticipant = errors.New("not a tournament participant")

	// ErrInvalidName is returned for an empty or oversized tournament name.
	ErrInvalidName = errors.New("invalid tournament name")
)
