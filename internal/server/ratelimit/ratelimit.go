// Package ratelimit provides per-client rate limiting using the token bucket algorithm.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows capacity requests at once, refilling at a steady rate.
// Callers hold the Limiter's lock.
type tokenBucket struct {
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastSeen   time.Time
}

func (tb *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(tb.lastSeen).Seconds()
	if elapsed > 0 {
		tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.refillRate)
	}
	tb.lastSeen = now
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	mu      sync.Mutex
	config  Config
	buckets map[string]*tokenBucket // client:method:path -> bucket
	now     func() time.Time
}

// NewLimiter creates a limiter. A nil clock uses time.Now.
func NewLimiter(config Config, now func() time.Time) *Limiter {
	if now == nil {
		now = time.Now
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
		now:     now,
	}
}

// Allow checks if a request from the given client is allowed for the endpoint and
// consumes a token when it is.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled() {
		return true, Info{Allowed: true}
	}

	rule := l.config.Match(path, method)
	if rule.Limit <= 0 {
		// Unlimited endpoint (e.g., health check)
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + method + ":" + rule.key(path)
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &tokenBucket{
			capacity:   float64(rule.burst()),
			refillRate: float64(rule.Limit) / rule.Window.Seconds(),
			tokens:     float64(rule.burst()),
			lastSeen:   now,
		}
		l.buckets[key] = bucket
	}
	bucket.refill(now)

	allowed := bucket.tokens >= 1
	if allowed {
		bucket.tokens--
	}

	info := Info{
		Allowed:   allowed,
		Limit:     rule.Limit,
		Remaining: int(bucket.tokens),
		ResetTime: now.Add(secondsToDuration((bucket.capacity - bucket.tokens) / bucket.refillRate)),
	}
	if !allowed {
		info.RetryAfter = secondsToDuration((1 - bucket.tokens) / bucket.refillRate)
	}
	return allowed, info
}

// Cleanup removes buckets idle since before cutoff and returns how many were dropped
func (l *Limiter) Cleanup(cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	dropped := 0
	for key, bucket := range l.buckets {
		if bucket.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
			dropped++
		}
	}
	return dropped
}

// Run drops idle buckets every interval until stop is closed
func (l *Limiter) Run(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.Cleanup(l.now().Add(-time.Hour))
		case <-stop:
			return
		}
	}
}

func secondsToDuration(s float64) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}
