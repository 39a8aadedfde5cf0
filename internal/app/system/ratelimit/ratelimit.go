// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"sync"
	"time"
)

// Limiter provides rate limiting using a sliding window algorithm.
// It is safe for concurrent use.
//
// Windows are process-local: limits reset on restart. That is acceptable for
// the daily chat-comment cap this service applies with it.
type Limiter struct {
	mu       sync.Mutex
	windows  map[string]*window
	limit    int           // max events per window
	duration time.Duration // window duration
	cleanup  time.Duration // how often to clean old entries
}

type window struct {
	count     int
	expiresAt time.Time
}

// New creates a new rate limiter.
// limit: maximum events allowed per duration
// duration: the time window for counting events
func New(limit int, duration time.Duration) *Limiter {
	l := &Limiter{
		windows:  make(map[string]*window),
		limit:    limit,
		duration: duration,
		cleanup:  duration * 2, // cleanup entries older than 2x duration
	}
	go l.cleanupLoop()
	return l
}

// Allow checks if an event for the given key should be allowed.
// Returns true if allowed, false if rate limited.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]

	// If no window exists or window expired, create new one
	if !exists || now.After(w.expiresAt) {
		l.windows[key] = &window{
			count:     1,
			expiresAt: now.Add(l.duration),
		}
		return true
	}

	// Window still active - check limit
	if w.count >= l.limit {
		return false
	}

	w.count++
	return true
}

// Remaining returns how many events are left for this key in the current window.
func (l *Limiter) Remaining(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, exists := l.windows[key]

	if !exists || now.After(w.expiresAt) {
		return l.limit
	}

	remaining := l.limit - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the rate limit for a specific key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// cleanupLoop periodically removes expired entries to prevent memory leaks.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, w := range l.windows {
			if now.After(w.expiresAt) {
				delete(l.windows, key)
			}
		}
		l.mu.Unlock()
	}
}

// CommentLimiter caps how many chat annotations a mentor may post per day.
// The cap applies per author across all of their chats.
type CommentLimiter struct {
	daily  *Limiter
	perDay int
}

// NewCommentLimiter creates a limiter allowing perDay comments per author
// per 24 hours. perDay <= 0 disables the cap.
func NewCommentLimiter(perDay int) *CommentLimiter {
	if perDay <= 0 {
		return &CommentLimiter{}
	}
	return &CommentLimiter{daily: New(perDay, 24*time.Hour), perDay: perDay}
}

// Cap returns the configured daily cap, or 0 when disabled. Callers that
// keep a durable count (the window here is in-memory only) can use it to
// enforce the cap across restarts.
func (c *CommentLimiter) Cap() int {
	if c == nil {
		return 0
	}
	return c.perDay
}

// Allow reports whether authorID may post another comment today.
func (c *CommentLimiter) Allow(authorID string) bool {
	if c == nil || c.daily == nil {
		return true
	}
	return c.daily.Allow(authorID)
}

// Remaining returns how many comments authorID has left today.
// Returns -1 when the cap is disabled.
func (c *CommentLimiter) Remaining(authorID string) int {
	if c == nil || c.daily == nil {
		return -1
	}
	return c.daily.Remaining(authorID)
}
