package ratelimiter

import (
	"time"

	"code.cloudfoundry.org/lager"
)

type Stat struct {
	Key       string `json:"key"`
	Available int    `json:"available"`
}

type Stats []Stat

type Limiter interface {
	ExceedsLimit(string) bool
}

// RateLimiter enforces a per-key requests-per-minute budget backed by an
// expiring in-memory token bucket store.
type RateLimiter struct {
	store Store
}

func NewRateLimiter(limitPerMinute int, expireDuration time.Duration, logger lager.Logger) *RateLimiter {
	return &RateLimiter{
		store: NewStore(limitPerMinute, expireDuration, logger),
	}
}

func (r *RateLimiter) ExceedsLimit(key string) bool {
	_, err := r.store.Increment(key)
	return err != nil
}

func (r *RateLimiter) GetStats() Stats {
	stats := make(Stats, 0)
	for k, avail := range r.store.Stats() {
		stats = append(stats, Stat{Key: k, Available: avail})
	}
	return stats
}
