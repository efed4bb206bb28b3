package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
)

type PasswordResetInput struct {
	Password string `validate:"required,password"`
}

func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	clm, err := s.verifiedEmail(ctx)
	if err != nil {
		return err
	}

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	return s.consumeVerification(ctx, clm, func(ctx context.Context) error {
		hashed, err := s.bcrypt.Hash(in.Password)
		if err != nil {
			slog.ErrorContext(ctx, "failed to hash new password", "error", err)
			return goerror.NewServer(err)
		}

		err = s.repoDB.UpdateUserPassword(ctx, clm.UserEmail, string(hashed))
		if errors.Is(err, goerror.ErrNotFound) {
			slog.WarnContext(ctx, "password reset for unknown account", "email", clm.UserEmail)
			return goerror.NewBusiness("User not found", goerror.CodeNotFound)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo update user password", "email", clm.UserEmail, "error", err)
			return goerror.NewServer(err)
		}

		return nil
	})
}
