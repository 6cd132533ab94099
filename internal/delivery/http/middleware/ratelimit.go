package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	h "tutorly/internal/delivery/http/helpers"
)

// RateLimiter limits booking requests per authenticated user. Users booking
// through a UI click at human speed; anything faster is a client bug or abuse.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*userLimiter
}

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a RateLimiter allowing perMinute requests per user
// with the given burst.
func NewRateLimiter(perMinute int, burst int) *RateLimiter {
	return &RateLimiter{
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
		limiters: make(map[string]*userLimiter),
	}
}

func (rl *RateLimiter) allow(userID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	ul, ok := rl.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[userID] = ul
	}
	ul.lastAccess = time.Now()
	// Opportunistic cleanup keeps the map from growing without a background goroutine.
	if len(rl.limiters) > 10000 {
		cutoff := time.Now().Add(-10 * time.Minute)
		for id, l := range rl.limiters {
			if l.lastAccess.Before(cutoff) {
				delete(rl.limiters, id)
			}
		}
	}
	return ul.limiter.Allow()
}

// Limit returns a wrapper that rejects over-limit requests with 429. Requests
// without an authenticated user pass through; RequireAuth handles those.
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if ok && !rl.allow(userID) {
			h.WriteJSONError(w, http.StatusTooManyRequests, h.ErrCodeTooManyReqs, "too many requests")
			return
		}
		next(w, r)
	}
}
