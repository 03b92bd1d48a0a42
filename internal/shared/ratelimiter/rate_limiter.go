// Package ratelimiter limits the frequency of operations such as login
// attempts.
package ratelimiter

import (
	"sync"
	"time"
)

// KeyLimiterInterface restricts how often an operation may run per key.
type KeyLimiterInterface interface {
	Allow(key string) bool
	Reset(key string)
}

// KeyLimiter is a fixed-window counter per key. Unlike a client-side API
// limiter it never sleeps; callers reject the operation when Allow returns
// false.
type KeyLimiter struct {
	limit    int           // attempts allowed per window
	interval time.Duration // window length
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	started time.Time
}

// NewKeyLimiter creates a KeyLimiter allowing limit attempts per interval
// for each key.
func NewKeyLimiter(limit int, interval time.Duration) *KeyLimiter {
	return &KeyLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether another attempt is permitted for key, counting the
// attempt when it is.
func (l *KeyLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.started) >= l.interval {
		// Stale windows pile up under many distinct keys; sweep on rollover.
		if len(l.windows) > 10000 {
			l.sweep(now)
		}
		l.windows[key] = &window{count: 1, started: now}
		return true
	}

	if w.count >= l.limit {
		return false
	}
	w.count++
	return true
}

// Reset forgets the key's window. Callers use it to clear the count after
// the guarded operation succeeds, so only failures accumulate.
func (l *KeyLimiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// sweep drops windows whose interval has elapsed. Caller holds the lock.
func (l *KeyLimiter) sweep(now time.Time) {
	for k, w := range l.windows {
		if now.Sub(w.started) >= l.interval {
			delete(l.windows, k)
		}
	}
}
