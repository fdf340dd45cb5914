package ratelimiter

import (
	"errors"
	"sync"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/juju/ratelimit"
)

const expirySweepInterval = 30 * time.Second

var errBucketEmpty = errors.New("rate limit exceeded")

type Store interface {
	Increment(string) (int, error)
	Stats() map[string]int
}

type memoryStore struct {
	limitPerMinute int
	expireDuration time.Duration
	logger         lager.Logger

	mu      sync.Mutex
	buckets map[string]*tokenBucket
}

type tokenBucket struct {
	bucket   *ratelimit.Bucket
	lastSeen time.Time
}

func NewStore(limitPerMinute int, expireDuration time.Duration, logger lager.Logger) Store {
	s := &memoryStore{
		limitPerMinute: limitPerMinute,
		expireDuration: expireDuration,
		logger:         logger,
		buckets:        make(map[string]*tokenBucket),
	}
	go s.sweepExpired()
	return s
}

func (s *memoryStore) Increment(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.buckets[key]
	if !ok {
		refill := time.Minute / time.Duration(s.limitPerMinute)
		b = &tokenBucket{bucket: ratelimit.NewBucket(refill, int64(s.limitPerMinute))}
		s.buckets[key] = b
	}
	b.lastSeen = time.Now()
	if b.bucket.Available() == 0 {
		return 0, errBucketEmpty
	}
	b.bucket.Take(1)
	return int(b.bucket.Available()), nil
}

func (s *memoryStore) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := make(map[string]int, len(s.buckets))
	for k, b := range s.buckets {
		m[k] = int(b.bucket.Available())
	}
	return m
}

// sweepExpired drops buckets for keys not seen within expireDuration, so a
// churning tenant population does not grow the store without bound.
func (s *memoryStore) sweepExpired() {
	for range time.Tick(expirySweepInterval) {
		s.mu.Lock()
		now := time.Now()
		for k, b := range s.buckets {
			if now.Sub(b.lastSeen) > s.expireDuration {
				s.logger.Debug("removing-idle-bucket", lager.Data{"key": k})
				delete(s.buckets, k)
			}
		}
		s.mu.Unlock()
	}
}
