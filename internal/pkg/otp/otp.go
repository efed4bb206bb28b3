package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	keyPrefix = "otp:"

	// CodeLength is the number of digits in a generated code.
	CodeLength = 6

	codeMin = 100000
	codeMax = 999999
)

var (
	// ErrDeliveryFailed is returned by Issue when the code was stored but the
	// delivery channel failed. The stored code is kept until it expires.
	ErrDeliveryFailed = errors.New("otp: delivery failed")

	// ErrInvalidTTL is returned when an issuer is built with a TTL under one millisecond.
	ErrInvalidTTL = errors.New("otp: ttl must be at least 1ms")
)

// IssueOutcome is the result of a successful Issue call.
type IssueOutcome int

const (
	// OutcomeSentCode means a new code was stored and delivered.
	OutcomeSentCode IssueOutcome = iota + 1
	// OutcomeMustWait means a previous code is still live; nothing was stored or sent.
	OutcomeMustWait
)

func (o IssueOutcome) String() string {
	switch o {
	case OutcomeSentCode:
		return "sent_code"
	case OutcomeMustWait:
		return "must_wait"
	default:
		return "unknown"
	}
}

// IssueResult carries the issue outcome. RetryAfter is set only for OutcomeMustWait.
type IssueResult struct {
	Outcome    IssueOutcome
	RetryAfter time.Duration
}

// RetryAfterSeconds returns RetryAfter rounded up to whole seconds.
func (r IssueResult) RetryAfterSeconds() int64 {
	if r.RetryAfter <= 0 {
		return 0
	}
	return int64((r.RetryAfter + time.Second - 1) / time.Second)
}

// VerifyOutcome is the result of a Verify call.
type VerifyOutcome int

const (
	// OutcomeValid means the code matched and has been consumed.
	OutcomeValid VerifyOutcome = iota + 1
	// OutcomeInvalid means a live code exists but does not match.
	OutcomeInvalid
	// OutcomeExpired means no live code exists (never issued, lapsed or consumed).
	OutcomeExpired
)

func (o VerifyOutcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Store is a keyed store with per-key expiry.
//
// Both methods must be atomic on the store side.
type Store interface {
	// SetIfExpired writes code under key with the given ttl unless a live value
	// exists. It returns the remaining ttl of the live value, or zero when the
	// code was written.
	SetIfExpired(ctx context.Context, key, code string, ttl time.Duration) (time.Duration, error)

	// Consume compares the stored value with code and deletes it only when they
	// are equal.
	Consume(ctx context.Context, key, code string) (VerifyOutcome, error)
}

// Deliverer sends a code to its owner.
type Deliverer interface {
	DeliverCode(ctx context.Context, email, code string, ttl time.Duration) error
}

// NormalizeEmail lower-cases and trims an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Key returns the store key for an address.
func Key(email string) string {
	return keyPrefix + NormalizeEmail(email)
}

// GenerateCode returns a uniformly random code in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", CodeLength, n.Int64()+codeMin), nil
}
