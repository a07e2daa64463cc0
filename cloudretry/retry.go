package cloudretry

import (
	"context"
	"time"

	"github.com/LerianStudio/lib-cloudretry/cloudretry/backoff"
	"github.com/LerianStudio/lib-cloudretry/cloudretry/internal/nilcheck"
	"github.com/LerianStudio/lib-cloudretry/cloudretry/log"
)

// Operation is a call into a provider API that may fail transiently.
// The context passed to the wrapped operation is the caller's context; it also
// bounds the waits between attempts.
type Operation[T any] func(ctx context.Context) (T, error)

// DefaultStrategy spaces retries as 3s * 1.1^i over ten scheduled attempts.
// It is used by WithBackoff and Do when no WithStrategy option is given.
var DefaultStrategy = backoff.NewExponential(10, 3*time.Second, 1.1)

// Option customizes a retry wrapper.
type Option func(*options)

type options struct {
	strategy backoff.Strategy
	logger   log.Logger
	wait     func(context.Context, time.Duration) error
}

func newOptions(opts ...Option) options {
	cfg := options{
		strategy: DefaultStrategy,
		logger:   log.NewNop(),
		wait:     backoff.WaitContext,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrategy sets the backoff strategy that schedules retry delays.
func WithStrategy(strategy backoff.Strategy) Option {
	return func(cfg *options) {
		if strategy != nil {
			cfg.strategy = strategy
		}
	}
}

// WithLogger sets the sink receiving an informational entry before each
// scheduled retry. Nil loggers (including typed nils) are ignored.
func WithLogger(logger log.Logger) Option {
	return func(cfg *options) {
		if !nilcheck.Interface(logger) {
			cfg.logger = logger
		}
	}
}

// WithBackoff returns a wrapper that retries an operation according to
// policy. The wrapped operation keeps the signature and return values of the
// original; only transient provider failures are retried, everything else
// propagates unchanged.
//
// Each invocation of the wrapped operation obtains a fresh delay sequence, so
// concurrent invocations never share retry state.
func WithBackoff[T any](policy Policy, opts ...Option) func(Operation[T]) Operation[T] {
	cfg := newOptions(opts...)

	return func(op Operation[T]) Operation[T] {
		return func(ctx context.Context) (T, error) {
			return run(ctx, policy, op, cfg)
		}
	}
}

// Do invokes op under the given policy, retrying transient failures.
// It is shorthand for wrapping with WithBackoff and calling immediately.
func Do[T any](ctx context.Context, policy Policy, op Operation[T], opts ...Option) (T, error) {
	return run(ctx, policy, op, newOptions(opts...))
}

func run[T any](ctx context.Context, policy Policy, op Operation[T], cfg options) (T, error) {
	attempt := 0

	for delay := range cfg.strategy() {
		result, err := op(ctx)
		if err == nil {
			return result, nil
		}

		if !policy.Recognizes(err) {
			return result, err
		}

		code, ok := policy.StatusCode(err)
		if !ok || !policy.Found(code) {
			return result, err
		}

		attempt++
		cfg.logger.Log(ctx, log.LevelInfo, "transient provider failure, retrying",
			log.Err(err),
			log.String("status_code", code),
			log.Int("attempt", attempt),
			log.Duration("delay", delay),
		)

		if waitErr := cfg.wait(ctx, delay); waitErr != nil {
			var zero T
			return zero, waitErr
		}
	}

	// Delays exhausted: one final unguarded attempt surfaces the natural
	// outcome without further classification.
	return op(ctx)
}
