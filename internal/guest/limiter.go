// Package guest caps how often anonymous visitors can hit expensive
// features. The counters live in process memory and reset on restart: this
// is a soft limit to nudge guests toward signing up, not a security
// boundary. A distributed limiter can replace the Limiter implementation
// without changing call sites.
package guest

import "sync"

// Limiter is a check-and-increment counter over named buckets.
type Limiter interface {
	// Allow increments the bucket's count and returns true, unless the
	// count has already reached limit, in which case it returns false
	// without incrementing.
	Allow(bucket string, limit int) bool
}

type memoryLimiter struct {
	mu     sync.Mutex
	counts map[string]int
}

// NewMemoryLimiter returns a process-lifetime Limiter. The mutex makes the
// read-compare-increment atomic so concurrent requests on the same bucket
// cannot both slip under the cap.
func NewMemoryLimiter() Limiter {
	return &memoryLimiter{counts: map[string]int{}}
}

func (l *memoryLimiter) Allow(bucket string, limit int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts[bucket] >= limit {
		return false
	}
	l.counts[bucket]++
	return true
}
