package ratelimiter

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	staleAfter time.Duration
	interval   time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanup evicts buckets idle for longer than staleAfter, checking every
// interval. A zero interval disables the background sweep.
func WithCleanup(interval, staleAfter time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.interval = interval
		ms.staleAfter = staleAfter
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) { ms.now = now }
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:    make(map[string]*bucket),
		now:        time.Now,
		interval:   5 * time.Minute,
		staleAfter: time.Hour,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(ms)
	}
	if ms.interval > 0 {
		go ms.sweep()
	}
	return ms
}

func (ms *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Capped so a long idle period cannot overflow the token count.
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = b.lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
		if b.tokens == cfg.Capacity {
			b.lastRefill = now
		}
	}

	b.lastAccess = now
	resetAt := b.lastRefill.Add(cfg.RefillInterval)
	// Denied requests leave the bucket as it was.
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.buckets, key)
	return nil
}

// Len reports the number of tracked keys.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// RemoveStale evicts buckets idle for longer than the configured threshold.
func (ms *MemoryStore) RemoveStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > ms.staleAfter {
			delete(ms.buckets, key)
		}
	}
}

func (ms *MemoryStore) sweep() {
	ticker := time.NewTicker(ms.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ms.RemoveStale()
		case <-ms.stop:
			return
		}
	}
}

// Close stops the background sweep. It is safe to call more than once.
func (ms *MemoryStore) Close() {
	ms.stopOnce.Do(func() { close(ms.stop) })
}

var _ Store = (*MemoryStore)(nil)
