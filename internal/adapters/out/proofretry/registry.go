// Package proofretry retries proof registry lookups with exponential backoff.
package proofretry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"tourdispatch/internal/core/ports"
	"tourdispatch/internal/pkg/errs"
)

const (
	DefaultAttempts        = 3
	DefaultInitialInterval = 200 * time.Millisecond
	DefaultMaxInterval     = 2 * time.Second
	DefaultTimeout         = 10 * time.Second
)

var ErrRegistryIsRequired = errs.NewValueIsRequiredError("proof registry")

var _ ports.ProofRegistry = (*Registry)(nil)

// Registry decorates a ProofRegistry. Every lookup is retried up to the
// configured number of attempts; the last error is returned once they are
// spent or the context is done. A lookup with all its retries is bounded by
// the timeout, which must stay below the tour lock TTL.
type Registry struct {
	next     ports.ProofRegistry
	attempts uint64
	initial  time.Duration
	max      time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

type Option func(*Registry)

func WithIntervals(initial, maxInterval time.Duration) Option {
	return func(r *Registry) {
		r.initial = initial
		r.max = maxInterval
	}
}

// WithTimeout bounds each lookup, retries included. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Registry) {
		r.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func New(next ports.ProofRegistry, attempts int, opts ...Option) (*Registry, error) {
	if next == nil {
		return nil, ErrRegistryIsRequired
	}
	if attempts < 1 {
		return nil, errs.NewValueIsOutOfRangeError("proof lookup attempts", attempts, 1, "unbounded")
	}

	r := &Registry{
		next:     next,
		attempts: uint64(attempts),
		initial:  DefaultInitialInterval,
		max:      DefaultMaxInterval,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timeout < 0 {
		return nil, errs.NewValueIsOutOfRangeError("proof lookup timeout", r.timeout, 0, "unbounded")
	}
	r.logger = r.logger.With("component", "proof-registry")
	return r, nil
}

func (r *Registry) WithProofOfDelivery(ctx context.Context, orderIDs []string) ([]string, error) {
	return r.lookup(ctx, "proof_of_delivery", orderIDs, r.next.WithProofOfDelivery)
}

func (r *Registry) WithReturnsRecord(ctx context.Context, orderIDs []string) ([]string, error) {
	return r.lookup(ctx, "returns_record", orderIDs, r.next.WithReturnsRecord)
}

func (r *Registry) lookup(
	ctx context.Context,
	kind string,
	orderIDs []string,
	fetch func(context.Context, []string) ([]string, error),
) ([]string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var found []string
	operation := func() error {
		var err error
		found, err = fetch(ctx, orderIDs)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, wait time.Duration) {
		r.logger.WarnContext(ctx, "proof lookup failed, retrying",
			"kind", kind,
			"orders", len(orderIDs),
			"wait", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotify(operation, r.policy(ctx), notify); err != nil {
		return nil, err
	}
	return found, nil
}

func (r *Registry) policy(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(r.initial),
		backoff.WithMaxInterval(r.max),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(b, r.attempts-1), ctx)
}
