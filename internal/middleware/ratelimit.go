package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type visitor struct {
	hits     []time.Time
	lastSeen time.Time
}

// RateLimiter is a per-client sliding window limiter keyed by IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window per IP
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go rl.evictLoop()
	return rl
}

// evictLoop drops visitors idle for more than two windows
func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for now := range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if now.Sub(v.lastSeen) > 2*rl.window {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow records a hit for ip and reports whether it is within the limit
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{}
		rl.visitors[ip] = v
	}
	v.lastSeen = now

	// Drop hits that fell out of the window
	cutoff := now.Add(-rl.window)
	kept := v.hits[:0]
	for _, t := range v.hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	v.hits = kept

	if len(v.hits) >= rl.limit {
		return false
	}
	v.hits = append(v.hits, now)
	return true
}

// RateLimit middleware rejects clients exceeding limit requests per window
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(limit, window)

	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
