package ratelimiter

import (
	"context"
	"fmt"
)

// Limiter applies one bucket Config to many keys.
type Limiter struct {
	store Store
	cfg   Config
}

func NewLimiter(store Store, cfg Config) (*Limiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, cfg: cfg}, nil
}

func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return l.consume(ctx, key, n)
}

// Status reports the bucket for key without taking tokens.
func (l *Limiter) Status(ctx context.Context, key string) (Result, error) {
	return l.consume(ctx, key, 0)
}

func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *Limiter) consume(ctx context.Context, key string, n int) (Result, error) {
	remaining, resetAt, err := l.store.ConsumeTokens(ctx, key, n, l.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: l.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}
