package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
)

type OtpSendInput struct {
	Email string `validate:"required,email,max=100"`
}

type OtpSendOutput struct {
	ExpiresInSeconds int64
}

func (s *Usecase) OtpSend(ctx context.Context, in OtpSendInput) (*OtpSendOutput, error) {
	ctx, span := s.startSpan(ctx, "OtpSend")
	defer span.End()

	in.Email = strings.TrimSpace(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := otp.NormalizeEmail(in.Email)
	res, err := s.issuer.Issue(ctx, email)
	if errors.Is(err, otp.ErrDeliveryFailed) {
		slog.ErrorContext(ctx, "failed to deliver otp", "email", email, "error", err)
		return nil, goerror.NewDependency(err, "Failed to deliver OTP email")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue otp", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if res.Outcome == otp.OutcomeMustWait {
		wait := res.RetryAfterSeconds()
		slog.WarnContext(ctx, "otp still live for email", "email", email, "retry_after_seconds", wait)
		return nil, goerror.NewBusiness(
			fmt.Sprintf("Wait %d seconds for the OTP to expire", wait),
			goerror.CodeTooManyRequest,
			"retry_after_seconds", strconv.FormatInt(wait, 10),
		)
	}

	return &OtpSendOutput{ExpiresInSeconds: int64(s.issuer.TTL().Seconds())}, nil
}
