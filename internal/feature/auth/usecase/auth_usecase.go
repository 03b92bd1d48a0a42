package usecase

import (
	"context"
	"errors"
	"fmt"

	"arena_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user to the storage. It returns
	// ErrEmailAlreadyExists when the unique index rejects the insert.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// PasswordHasher abstracts the one-way salted hashing of passwords.
type PasswordHasher interface {
	// Hash generates a salted digest from a plaintext password.
	Hash(plaintext string) (string, error)

	// Check reports whether the plaintext matches the digest. Malformed
	// digests are a mismatch, never an error.
	Check(plaintext, digest string) bool
}

// JWTGenerator defines the interface for JWT token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// LoginLimiter throttles login attempts per key. Reset clears the key's
// count so successful logins do not accumulate toward the limit.
type LoginLimiter interface {
	Allow(key string) bool
	Reset(key string)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users   UserRepository
	hasher  PasswordHasher
	tokens  JWTGenerator
	limiter LoginLimiter
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens JWTGenerator, limiter LoginLimiter) *authUsecase {
	return &authUsecase{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
	}
}

// Register creates a new user with a hashed password and returns the stored
// identity. Uniqueness is enforced by the store's unique index; a duplicate
// email surfaces as ErrEmailAlreadyExists.
func (u *authUsecase) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Email: email, Password: hashed}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// dummyDigest is a bcrypt hash of an unguessable throwaway value. It keeps
// the compare cost constant when the email does not exist.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns a signed JWT token on success.
// The same ErrInvalidCredentials covers both an unknown email and a wrong
// password, and the hash comparison runs in both cases to keep the timing
// indistinguishable.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if u.limiter != nil && !u.limiter.Allow(email) {
		return "", ErrTooManyLoginAttempts
	}

	user, err := u.users.FindByEmail(ctx, email)

	digest := dummyDigest
	if err == nil {
		digest = user.Password
	}

	match := u.hasher.Check(password, digest)

	if err != nil || !match {
		return "", ErrInvalidCredentials
	}

	// The throttle is for guessing, not for legitimate use; clear the
	// window so only failed attempts count toward the limit.
	if u.limiter != nil {
		u.limiter.Reset(email)
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Email)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}

// GetByID returns the identity named by a verified token. A token can
// outlive the row it names; the caller maps ErrUserNotFound to 404.
func (u *authUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
