package ratelimiter

import (
	"testing"
	"time"
)

func TestKeyLimiter_AllowsUpToLimit(t *testing.T) {
	t.Parallel()

	l := NewKeyLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("user@example.com") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("user@example.com") {
		t.Error("attempt over the limit should be rejected")
	}
}

func TestKeyLimiter_ResetClearsTheWindow(t *testing.T) {
	t.Parallel()

	l := NewKeyLimiter(1, time.Minute)

	if !l.Allow("user@example.com") {
		t.Fatal("first attempt should be allowed")
	}
	l.Reset("user@example.com")
	if !l.Allow("user@example.com") {
		t.Error("attempt after a reset should be allowed")
	}

	// Resetting an unknown key is a no-op.
	l.Reset("other@example.com")
	if !l.Allow("other@example.com") {
		t.Error("unseen key should be allowed after a spurious reset")
	}
}

func TestKeyLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	l := NewKeyLimiter(1, time.Minute)

	if !l.Allow("a@example.com") {
		t.Fatal("first key should be allowed")
	}
	if !l.Allow("b@example.com") {
		t.Error("second key should not share the first key's window")
	}
	if l.Allow("a@example.com") {
		t.Error("first key should be exhausted")
	}
}

func TestKeyLimiter_WindowRollsOver(t *testing.T) {
	t.Parallel()

	l := NewKeyLimiter(1, time.Minute)
	current := time.Now()
	l.now = func() time.Time { return current }

	if !l.Allow("user@example.com") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("user@example.com") {
		t.Fatal("second attempt in the same window should be rejected")
	}

	// Advance past the window
	current = current.Add(time.Minute + time.Second)

	if !l.Allow("user@example.com") {
		t.Error("attempt after the window rolled over should be allowed")
	}
}
