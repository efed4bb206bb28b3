package otp

import (
	"context"
	"fmt"
)

// Verifier checks submitted codes. A matching code is consumed.
type Verifier struct {
	store Store
}

// NewVerifier builds a Verifier over store.
func NewVerifier(store Store) *Verifier {
	return &Verifier{store: store}
}

// Verify compares code with the live code of email using exact string
// equality. Leading zeros are significant and no trimming is applied.
func (v *Verifier) Verify(ctx context.Context, email, code string) (VerifyOutcome, error) {
	outcome, err := v.store.Consume(ctx, Key(email), code)
	if err != nil {
		return 0, fmt.Errorf("otp: consume code: %w", err)
	}

	return outcome, nil
}
