// Package ratelimit keeps one token bucket per client key.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter manages rate limiters for individual clients
type Limiter struct {
	mu       sync.RWMutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// New creates a limiter allowing perMinute requests per key with the given burst
func New(perMinute, burst int) *Limiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		limiters: make(map[string]*entry),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
		now:      time.Now,
	}
}

// WithClock replaces the limiter's time source and returns the limiter
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Allow reports whether a request for key may proceed
func (l *Limiter) Allow(key string) bool {
	now := l.now()
	e := l.get(key, now)
	return e.limiter.AllowN(now, 1)
}

func (l *Limiter) get(key string, now time.Time) *entry {
	l.mu.RLock()
	e, ok := l.limiters[key]
	l.mu.RUnlock()
	if ok {
		l.mu.Lock()
		e.lastSeen = now
		l.mu.Unlock()
		return e
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double check to prevent race condition
	if e, ok = l.limiters[key]; ok {
		e.lastSeen = now
		return e
	}

	e = &entry{limiter: rate.NewLimiter(l.limit, l.burst), lastSeen: now}
	l.limiters[key] = e
	return e
}

// Prune drops limiters idle for longer than maxIdle and returns how many were removed
func (l *Limiter) Prune(maxIdle time.Duration) int {
	cutoff := l.now().Add(-maxIdle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, e := range l.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(l.limiters, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked keys
func (l *Limiter) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.limiters)
}

// ClientKey identifies the caller by IP. chi's RealIP middleware has already
// rewritten RemoteAddr when the site runs behind a proxy.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Middleware rejects requests over budget by calling deny
func (l *Limiter) Middleware(deny func(w http.ResponseWriter, r *http.Request)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow(ClientKey(r)) {
				deny(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
