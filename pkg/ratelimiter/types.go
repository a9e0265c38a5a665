package ratelimiter

import (
	"context"
	"time"
)

// Store persists bucket state. ConsumeTokens refills the bucket for the
// elapsed time, then takes tokens only if enough are available. remaining
// is negative when the request is denied; tokens == 0 reads the state.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Result describes the outcome of a rate limit check.
type Result struct {
	Limit     int       // bucket capacity
	Remaining int       // tokens left; negative when denied
	ResetAt   time.Time // next refill
}

func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed results.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config describes a token bucket. Tags are unprefixed; embed with
// envPrefix to load several limiters.
type Config struct {
	Capacity       int           `env:"RATE_CAPACITY" envDefault:"5"`  // burst size
	RefillRate     int           `env:"RATE_REFILL" envDefault:"1"`    // tokens added per interval
	RefillInterval time.Duration `env:"RATE_INTERVAL" envDefault:"1m"` // refill period
}
