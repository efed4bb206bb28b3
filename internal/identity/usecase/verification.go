package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
)

const verificationKeyPrefix = "identity:verification:"

// verifiedEmail returns the email proven by the verification token in ctx.
func (s *Usecase) verifiedEmail(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil || !clm.IsVerification() || clm.ID == "" || clm.UserEmail == "" {
		return nil, goerror.NewBusiness("Verification required", goerror.CodeUnauthorized)
	}
	return clm, nil
}

// consumeVerification runs fn at most once per verification token. The marker
// lives as long as the token itself, so a replay is refused for the token's
// whole lifetime. A failed fn also burns the token.
func (s *Usecase) consumeVerification(ctx context.Context, clm *jwt.Claims, fn func(context.Context) error) error {
	remaining := clm.Remaining(s.clock.Now())
	if remaining <= 0 {
		return goerror.NewBusiness("Verification token expired", goerror.CodeUnauthorized)
	}

	err := s.idemp.Exec(ctx, verificationKeyPrefix+clm.ID, fn,
		idempotency.WithLockDuration(remaining),
		idempotency.WithStateTTL(remaining),
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted),
		errors.Is(err, idempotency.ErrAlreadyFailed):
		slog.WarnContext(ctx, "verification token replayed", "jti", clm.ID, "email", clm.UserEmail)
		return goerror.NewBusiness("Verification token already used", goerror.CodeUnauthorized)
	}

	var gerr *goerror.Error
	if errors.As(err, &gerr) {
		return err
	}

	slog.ErrorContext(ctx, "failed to consume verification token", "jti", clm.ID, "error", err)
	return goerror.NewServer(err)
}
