// Package middleware holds the HTTP middleware chain of the planner API.
package middleware

import (
	"net/http"
	"sync"
	"time"
)

// TokenBucket is a process-wide rate limiter. The planner is a single-tenant
// style app, so one bucket for the whole API is enough; per-user limiting
// would go behind the auth middleware instead.
type TokenBucket struct {
	mu         sync.Mutex
	tokens     float64
	capacity   float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// NewTokenBucket creates a limiter allowing rps requests per second with a
// burst of the same size.
func NewTokenBucket(rps int) *TokenBucket {
	return &TokenBucket{
		tokens:     float64(rps),
		capacity:   float64(rps),
		refillRate: float64(rps),
		lastRefill: time.Now(),
	}
}

// Allow consumes one token if available.
func (b *TokenBucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// RateLimit rejects requests beyond the bucket's rate with 429.
func RateLimit(bucket *TokenBucket) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !bucket.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"msg":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
