package retrier

import (
	"context"
	"time"
)

// Interface sketch
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// When nil every error is retried, otherwise only those the predicate accepts
	ShouldRetry ShouldRetryFunc
}
