package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// Purpose tells session tokens and verification tokens apart.
type Purpose string

const (
	// PurposeSession marks a token issued after register or login.
	PurposeSession Purpose = "session"
	// PurposeVerification marks a token issued after a successful OTP check.
	PurposeVerification Purpose = "verification"
)

// JWT defines the token operations needed by the app.
type JWT interface {
	// Generate creates a signed session token for the user.
	Generate(uid int64, email string) (string, error)
	// GenerateVerification creates a signed verification token scoped to email.
	GenerateVerification(email string) (string, error)
	// Verify parses and validates the token and returns claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// Audiences are the accepted token audiences.
	Audiences []string
	// SessionTTL is the session token time-to-live.
	SessionTTL time.Duration
	// VerificationTTL is the verification token time-to-live.
	VerificationTTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Claims is a helper for wrapping registered claims with a payload.
type Claims struct {
	// RegisteredClaims holds the standard JWT claims.
	jwt.RegisteredClaims
	// Purpose is the token kind.
	Purpose Purpose `json:"purpose"`
	// UserID is the authenticated user identifier. Zero for verification tokens.
	UserID int64 `json:"user_id,string,omitempty"`
	// UserEmail is the authenticated (or verified) email.
	UserEmail string `json:"user_email"`
}

// IsSession reports whether the claims belong to a session token.
func (c Claims) IsSession() bool {
	return c.Purpose == PurposeSession
}

// IsVerification reports whether the claims belong to a verification token.
func (c Claims) IsVerification() bool {
	return c.Purpose == PurposeVerification
}

// Remaining returns how long the token stays valid after now.
func (c Claims) Remaining(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := c.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
