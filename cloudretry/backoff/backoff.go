package backoff

import (
	"context"
	"fmt"
	"math"
	"time"
)

const maxShift = 62

// Exponential calculates the doubling delay for an attempt number.
// The delay is calculated as base * 2^attempt with overflow protection.
// Negative attempts are treated as 0.
func Exponential(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}

	if attempt < 0 {
		attempt = 0
	} else if attempt > maxShift {
		attempt = maxShift
	}

	multiplier := int64(1 << attempt)

	baseInt := int64(base)
	if baseInt > math.MaxInt64/multiplier {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(baseInt * multiplier)
}

// scale calculates base * factor^attempt, clamping to math.MaxInt64 on
// overflow. Factors below 1 are allowed and shrink the delay.
func scale(base time.Duration, factor float64, attempt int) time.Duration {
	if base <= 0 || factor <= 0 {
		return 0
	}

	scaled := float64(base) * math.Pow(factor, float64(attempt))
	if scaled >= math.MaxInt64 || math.IsInf(scaled, 1) {
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(scaled)
}

// WaitContext sleeps for the specified duration but respects context cancellation.
// Returns nil if the wait completes, or an error if the context is cancelled.
// Returns immediately (nil) for zero or negative durations.
func WaitContext(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return nil
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context done: %w", ctx.Err())
	}
}
