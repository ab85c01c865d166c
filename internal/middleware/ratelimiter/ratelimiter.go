// Package ratelimiter implements a per-key token bucket with idle-key
// expiration. Used to throttle write endpoints per authenticated user.
package ratelimiter

import (
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
	timer      *time.Timer
	mu         sync.Mutex
}

type Limiter struct {
	buckets        map[string]*bucket
	mu             sync.RWMutex
	rate           float64
	capacity       float64
	expirationTime time.Duration
}

// New creates a limiter refilling rate tokens per second up to capacity.
// Buckets idle for expirationTime are dropped to bound memory.
func New(rate, capacity float64, expirationTime time.Duration) *Limiter {
	return &Limiter{
		buckets:        make(map[string]*bucket),
		rate:           rate,
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (l *Limiter) getBucket(key string) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		l.resetExpiry(key, b)
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, exists = l.buckets[key]; exists {
		l.resetExpiry(key, b)
		return b
	}

	b = &bucket{tokens: l.capacity, lastRefill: time.Now()}
	l.buckets[key] = b
	l.resetExpiry(key, b)
	return b
}

func (l *Limiter) resetExpiry(key string, b *bucket) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(l.expirationTime, func() {
		l.mu.Lock()
		delete(l.buckets, key)
		l.mu.Unlock()
	})
}

// Allow consumes a token for key if one is available.
func (l *Limiter) Allow(key string) bool {
	b := l.getBucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Stop cancels all pending expiration timers.
func (l *Limiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}
