package ratelimiter

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

type middlewareConfig struct {
	denied  http.Handler
	onError func(w http.ResponseWriter, r *http.Request, err error)
	now     func() time.Time
}

type MiddlewareOption func(*middlewareConfig)

// WithDeniedHandler renders rejected requests. Rate limit headers are
// already set when it runs.
func WithDeniedHandler(h http.Handler) MiddlewareOption {
	return func(c *middlewareConfig) { c.denied = h }
}

// WithErrorHandler renders store failures.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) { c.onError = fn }
}

// Middleware takes one token per request and rejects the request once the
// bucket for its key is empty.
func Middleware(l *Limiter, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		denied: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), k)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if wait := res.RetryAfter(cfg.now()); wait > 0 {
					h.Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				}
				cfg.denied.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
