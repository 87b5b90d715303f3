// Package ratelimiter implements token bucket rate limiting with pluggable
// storage and an HTTP middleware.
//
// Each key owns a bucket of Config.Capacity tokens that regains
// Config.RefillRate tokens every Config.RefillInterval. A request takes one
// token. Denied requests do not drain the bucket further.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewLimiter(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.With(ratelimiter.Middleware(limiter, keyFunc)).Post("/send", h)
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited response, and Retry-After on denials.
package ratelimiter
