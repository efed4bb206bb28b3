package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
)

type OtpVerifyInput struct {
	Email string `validate:"required,email,max=100"`
	OTP   string `validate:"required,otp"`
}

type OtpVerifyOutput struct {
	Token      string
	Registered bool
}

func (s *Usecase) OtpVerify(ctx context.Context, in OtpVerifyInput) (*OtpVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpVerify")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := otp.NormalizeEmail(in.Email)
	outcome, err := s.verifier.Verify(ctx, email, in.OTP)
	if err != nil {
		slog.ErrorContext(ctx, "failed to verify otp", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	switch outcome {
	case otp.OutcomeValid:
	case otp.OutcomeInvalid:
		slog.WarnContext(ctx, "otp does not match", "email", email)
		return nil, goerror.NewBusiness("Invalid OTP", goerror.CodeUnauthorized)
	default:
		slog.WarnContext(ctx, "otp expired or not requested", "email", email)
		return nil, goerror.NewBusiness("OTP expired or not requested", goerror.CodeNotFound)
	}

	registered := true
	if _, err := s.repoDB.GetUserByEmail(ctx, email); errors.Is(err, goerror.ErrNotFound) {
		registered = false
	} else if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.GenerateVerification(email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification token", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &OtpVerifyOutput{Token: token, Registered: registered}, nil
}
