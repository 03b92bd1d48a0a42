package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// TestNewHasher_EnforcesMinimumCost verifies that a misconfigured work factor
// cannot weaken the stored hashes.
func TestNewHasher_EnforcesMinimumCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cost     int
		expected int
	}{
		{"zero cost clamped", 0, MinCost},
		{"bcrypt min cost clamped", bcrypt.MinCost, MinCost},
		{"negative cost clamped", -5, MinCost},
		{"default cost kept", bcrypt.DefaultCost, bcrypt.DefaultCost},
		{"higher cost kept", bcrypt.DefaultCost + 2, bcrypt.DefaultCost + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewHasher(tt.cost)
			if h.Cost() != tt.expected {
				t.Errorf("expected cost %d, got %d", tt.expected, h.Cost())
			}
			if h.Cost() < bcrypt.DefaultCost {
				t.Errorf("effective cost %d is below the security floor %d", h.Cost(), bcrypt.DefaultCost)
			}
		})
	}
}

func TestHasher_HashAndCheck(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	digest, err := h.Hash("Str0ng!Passw0rd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if digest == "" || digest == "Str0ng!Passw0rd" {
		t.Fatal("digest is empty or equals the plaintext")
	}

	if !h.Check("Str0ng!Passw0rd", digest) {
		t.Error("expected matching password to verify")
	}
	if h.Check("wrong", digest) {
		t.Error("expected mismatched password to fail")
	}
}

// TestHasher_HashIsSalted verifies that two hashes of the same input differ.
func TestHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	first, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := h.Hash("same-input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected different digests for the same input")
	}
}

// TestHasher_CheckMalformedDigest verifies that garbage digests are treated
// as a mismatch rather than a failure.
func TestHasher_CheckMalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty digest", ""},
		{"not a bcrypt hash", "plaintext-stored-by-mistake"},
		{"truncated hash", "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.Check("anything", tt.digest) {
				t.Error("expected malformed digest to fail verification")
			}
		})
	}
}
