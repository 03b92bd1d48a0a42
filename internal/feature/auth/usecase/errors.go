// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrValidation wraps every input-validation failure so transports can
	// map the whole family to a 400 with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for a failed login. It is deliberately
	// the same for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTooManyLoginAttempts is returned when the login throttle for an email
	// is exhausted.
	ErrTooManyLoginAttempts = errors.New("too many login attempts")
)
