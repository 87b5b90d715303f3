package ratelimiter

import "time"

// Config defines a token bucket. The defaults allow a burst of five sends
// per key and one more each minute.
type Config struct {
	Capacity       int           `env:"SEND_LIMIT_CAPACITY" envDefault:"5"`
	RefillRate     int           `env:"SEND_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"SEND_LIMIT_REFILL_INTERVAL" envDefault:"1m"`
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return invalidConfig("capacity", c.Capacity)
	case c.RefillRate <= 0:
		return invalidConfig("refill rate", c.RefillRate)
	case c.RefillInterval <= 0:
		return invalidConfig("refill interval", c.RefillInterval)
	}
	return nil
}

// Result is the outcome of one check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the tokens were available. A negative Remaining
// means the bucket was overdrawn and the request must be denied.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is how long a denied caller should wait. It is zero for allowed
// results.
func (r Result) RetryAfter(now time.Time) time.Duration {
	if r.Allowed() || !r.ResetAt.After(now) {
		return 0
	}
	return r.ResetAt.Sub(now)
}
