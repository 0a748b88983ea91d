package auth

import (
	"sync"
	"time"
)

// lockout counts failed logins per key within a sliding window. A key with
// max failures inside the window is locked until the oldest one expires.
type lockout struct {
	mu        sync.Mutex
	max       int
	window    time.Duration
	failures  map[string][]time.Time
	lastSweep time.Time
}

// lockoutMaxKeys forces a sweep before the window elapses when failures
// for many distinct usernames pile up.
const lockoutMaxKeys = 10_000

func newLockout(max int, window time.Duration) *lockout {
	if max <= 0 {
		max = 5
	}
	if window <= 0 {
		window = 30 * time.Minute
	}
	return &lockout{max: max, window: window, failures: make(map[string][]time.Time)}
}

func (l *lockout) locked(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(key, now)) >= l.max
}

func (l *lockout) fail(key string, now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Sub(l.lastSweep) >= l.window || len(l.failures) >= lockoutMaxKeys {
		l.sweep(now)
	}
	l.failures[key] = append(l.prune(key, now), now)
}

// sweep drops every key whose failures have all expired. Callers hold mu.
func (l *lockout) sweep(now time.Time) {
	for key := range l.failures {
		l.prune(key, now)
	}
	l.lastSweep = now
}

func (l *lockout) reset(key string) {
	l.mu.Lock()
	delete(l.failures, key)
	l.mu.Unlock()
}

// prune drops failures older than the window. Callers hold mu.
func (l *lockout) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	kept := l.failures[key][:0]
	for _, at := range l.failures[key] {
		if at.After(cutoff) {
			kept = append(kept, at)
		}
	}
	if len(kept) == 0 {
		delete(l.failures, key)
		return nil
	}
	l.failures[key] = kept
	return kept
}
