package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state per key.
type Store interface {
	// ConsumeTokens refills the bucket for elapsed time, then takes tokens.
	// A negative remaining count means the bucket was overdrawn.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
