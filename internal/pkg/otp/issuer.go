package otp

import (
	"context"
	"fmt"
	"time"
)

// Issuer creates codes and hands them to a Deliverer.
type Issuer struct {
	store     Store
	deliverer Deliverer
	ttl       time.Duration
	generate  func() (string, error)
}

// IssuerOption customizes an Issuer.
type IssuerOption func(*Issuer)

// WithGenerator replaces the random code source.
func WithGenerator(fn func() (string, error)) IssuerOption {
	return func(i *Issuer) {
		if fn != nil {
			i.generate = fn
		}
	}
}

// NewIssuer builds an Issuer. ttl is the lifetime of every issued code and
// must be at least one millisecond.
func NewIssuer(store Store, deliverer Deliverer, ttl time.Duration, opts ...IssuerOption) (*Issuer, error) {
	// the store expires keys with millisecond precision
	if ttl < time.Millisecond {
		return nil, ErrInvalidTTL
	}

	i := &Issuer{
		store:     store,
		deliverer: deliverer,
		ttl:       ttl,
		generate:  GenerateCode,
	}
	for _, opt := range opts {
		opt(i)
	}

	return i, nil
}

// TTL returns the lifetime applied to issued codes.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue stores a fresh code for email and delivers it, unless a code is still
// outstanding. The store write happens before delivery; when delivery fails
// the error wraps ErrDeliveryFailed and the stored code is left to expire.
//
// The candidate code is drawn before the atomic check-and-set. On
// OutcomeMustWait it is discarded without reaching the store or the deliverer.
func (i *Issuer) Issue(ctx context.Context, email string) (IssueResult, error) {
	code, err := i.generate()
	if err != nil {
		return IssueResult{}, fmt.Errorf("otp: generate code: %w", err)
	}

	remaining, err := i.store.SetIfExpired(ctx, Key(email), code, i.ttl)
	if err != nil {
		return IssueResult{}, fmt.Errorf("otp: store code: %w", err)
	}
	if remaining > 0 {
		return IssueResult{Outcome: OutcomeMustWait, RetryAfter: remaining}, nil
	}

	if err := i.deliverer.DeliverCode(ctx, NormalizeEmail(email), code, i.ttl); err != nil {
		return IssueResult{}, fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	return IssueResult{Outcome: OutcomeSentCode}, nil
}
