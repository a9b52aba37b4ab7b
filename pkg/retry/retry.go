// Package retry runs an operation with bounded exponential backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = 500 * time.Millisecond
	// MaxDelay caps a single wait however large MaxAttempts is.
	MaxDelay = time.Hour
)

// Timer lets callers replace the wall clock between attempts.
type Timer = backoff.Timer

// Options bounds a retry loop. The delay before attempt n+1 is BaseDelay*2^(n-1),
// capped at MaxDelay.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	// OnRetry is called after a failed attempt that will be retried.
	OnRetry func(attempt int, next time.Duration, err error)
	Timer   Timer
}

// Permanent stops the loop and returns err unchanged from Do.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do calls fn until it returns nil, a Permanent error, the context is done or
// MaxAttempts calls have been made. The last error is returned.
func Do(ctx context.Context, opts Options, fn func(ctx context.Context) error) error {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.MaxAttempts == 1 {
		// WithMaxRetries treats zero as unlimited.
		return fn(ctx)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = opts.BaseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = longestDelay(opts.BaseDelay, opts.MaxAttempts)
	exp.MaxElapsedTime = 0
	exp.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(opts.MaxAttempts-1)), ctx)

	attempt := 0
	op := func() error {
		attempt++
		return fn(ctx)
	}
	notify := func(err error, next time.Duration) {
		if opts.OnRetry != nil {
			opts.OnRetry(attempt, next, err)
		}
	}

	if opts.Timer != nil {
		return backoff.RetryNotifyWithTimer(op, policy, notify, opts.Timer)
	}
	return backoff.RetryNotify(op, policy, notify)
}

// longestDelay is the wait before the last attempt, BaseDelay*2^(attempts-2),
// computed without overflowing time.Duration.
func longestDelay(base time.Duration, attempts int) time.Duration {
	if base >= MaxDelay {
		return MaxDelay
	}
	d := base
	for i := 2; i < attempts; i++ {
		if d > MaxDelay/2 {
			return MaxDelay
		}
		d *= 2
	}
	return d
}
