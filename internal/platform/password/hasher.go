// Package password wraps bcrypt hashing behind a small, injectable hasher.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest work factor the hasher will accept. A cost below
// this makes stored hashes cheap to brute-force, so the constructor clamps
// instead of trusting its caller.
const MinCost = bcrypt.DefaultCost

// Hasher generates and verifies salted bcrypt digests.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given work factor.
// Costs below MinCost are raised to MinCost.
func NewHasher(cost int) *Hasher {
	if cost < MinCost {
		cost = MinCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the effective work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted digest of the plaintext. The salt is random, so the
// same input yields a different digest each call.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

// Check reports whether the plaintext matches the digest.
// A malformed digest is a mismatch, never an error.
func (h *Hasher) Check(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
