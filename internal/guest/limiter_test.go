package guest

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestAllow_Sequential(t *testing.T) {
	l := NewMemoryLimiter()
	if !l.Allow("exam", 2) {
		t.Fatal("first call should be allowed")
	}
	if !l.Allow("exam", 2) {
		t.Fatal("second call should be allowed")
	}
	if l.Allow("exam", 2) {
		t.Fatal("third call should be denied")
	}
	// Denied calls must not increment; still denied, not corrupted.
	if l.Allow("exam", 2) {
		t.Fatal("fourth call should be denied")
	}
}

func TestAllow_IndependentBuckets(t *testing.T) {
	l := NewMemoryLimiter()
	if !l.Allow("exam", 1) {
		t.Fatal("exam bucket should be allowed")
	}
	if !l.Allow("quiz", 1) {
		t.Fatal("quiz bucket should be unaffected by exam bucket")
	}
}

func TestAllow_ConcurrentSingleWinner(t *testing.T) {
	l := NewMemoryLimiter()

	const n = 64
	var allowed int64
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if l.Allow("x", 1) {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	if allowed != 1 {
		t.Fatalf("allowed = %d, want exactly 1", allowed)
	}
}
