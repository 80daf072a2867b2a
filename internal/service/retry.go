package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-wu-catalog/internal/logger"
)

// RetryConfig bounds a retried action.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	Multiplier      float64
}

// DefaultRetryConfig is used for file downloads and snapshot writes.
var DefaultRetryConfig = RetryConfig{MaxAttempts: 3, InitialInterval: time.Second, Multiplier: 2}

// permanentError marks an error that must not be retried.
type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// Permanent wraps err so that Retry returns it immediately.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return permanentError{err: err}
}

// backoff grows the wait from cfg.InitialInterval by cfg.Multiplier and
// stops after cfg.MaxAttempts-1 retries.
func (cfg RetryConfig) backoff() (retry.Backoff, int) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	multiplier := cfg.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}

	interval := cfg.InitialInterval
	b := retry.BackoffFunc(func() (time.Duration, bool) {
		next := interval
		interval = time.Duration(float64(interval) * multiplier)
		return next, false
	})
	return retry.WithMaxRetries(uint64(attempts-1), b), attempts
}

// Retry calls action until it succeeds, returns a Permanent error, ctx is
// done, or cfg.MaxAttempts attempts were made.
func Retry(ctx context.Context, cfg RetryConfig, action func(ctx context.Context) error) error {
	b, attempts := cfg.backoff()
	log := logger.FromContext(ctx)

	attempt := 0
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		err := action(ctx)
		if err == nil {
			return nil
		}

		var permanent permanentError
		if errors.As(err, &permanent) {
			return permanent
		}
		if attempt < attempts {
			log.Warn().Err(err).
				Int("attempt", attempt).
				Int("max_attempts", attempts).
				Msg("attempt failed, retrying")
		}
		return retry.RetryableError(err)
	})

	var permanent permanentError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &permanent):
		return permanent.err
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return fmt.Errorf("retry aborted after %d attempts: %w", attempt, err)
	default:
		return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
	}
}
