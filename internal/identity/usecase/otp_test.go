package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shandysiswandi/venture/internal/identity/entity"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOtpSend(t *testing.T) {
	t.Run("sent", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.On("Issue", mock.Anything, "ana@venture.dev").
			Return(otp.IssueResult{Outcome: otp.OutcomeSentCode}, nil).Once()

		out, err := f.uc.OtpSend(context.Background(), OtpSendInput{Email: "  Ana@Venture.dev "})
		require.NoError(t, err)
		assert.Equal(t, int64(300), out.ExpiresInSeconds)
	})

	t.Run("must wait", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.On("Issue", mock.Anything, "ana@venture.dev").
			Return(otp.IssueResult{Outcome: otp.OutcomeMustWait, RetryAfter: 41500 * time.Millisecond}, nil).Once()

		_, err := f.uc.OtpSend(context.Background(), OtpSendInput{Email: "ana@venture.dev"})
		gerr := requireCode(t, err, goerror.CodeTooManyRequest)
		assert.Equal(t, "Wait 42 seconds for the OTP to expire", gerr.Msg())
		assert.Equal(t, map[string]string{"retry_after_seconds": "42"}, gerr.Fields())
	})

	t.Run("delivery failed", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.On("Issue", mock.Anything, "ana@venture.dev").
			Return(otp.IssueResult{}, fmt.Errorf("%w: %w", otp.ErrDeliveryFailed, errors.New("smtp down"))).Once()

		_, err := f.uc.OtpSend(context.Background(), OtpSendInput{Email: "ana@venture.dev"})
		requireCode(t, err, goerror.CodeUnavailable)
		assert.ErrorIs(t, err, otp.ErrDeliveryFailed)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		f.issuer.On("Issue", mock.Anything, "ana@venture.dev").
			Return(otp.IssueResult{}, errors.New("redis down")).Once()

		_, err := f.uc.OtpSend(context.Background(), OtpSendInput{Email: "ana@venture.dev"})
		requireCode(t, err, goerror.CodeInternal)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.OtpSend(context.Background(), OtpSendInput{Email: "not-an-email"})
		requireCode(t, err, goerror.CodeInvalidInput)
	})
}

func TestOtpVerify(t *testing.T) {
	t.Run("valid and registered", func(t *testing.T) {
		f := newFixture(t)
		f.verify.On("Verify", mock.Anything, "ana@venture.dev", "012345").Return(otp.OutcomeValid, nil).Once()
		f.db.On("GetUserByEmail", mock.Anything, "ana@venture.dev").Return(&entity.User{ID: 1}, nil).Once()
		f.jwt.On("GenerateVerification", "ana@venture.dev").Return("vtoken", nil).Once()

		out, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: " Ana@venture.dev\t", OTP: "012345"})
		require.NoError(t, err)
		assert.Equal(t, "vtoken", out.Token)
		assert.True(t, out.Registered)
	})

	t.Run("valid and new", func(t *testing.T) {
		f := newFixture(t)
		f.verify.On("Verify", mock.Anything, "ana@venture.dev", "123456").Return(otp.OutcomeValid, nil).Once()
		f.db.On("GetUserByEmail", mock.Anything, "ana@venture.dev").Return(nil, goerror.ErrNotFound).Once()
		f.jwt.On("GenerateVerification", "ana@venture.dev").Return("vtoken", nil).Once()

		out, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: "ana@venture.dev", OTP: "123456"})
		require.NoError(t, err)
		assert.False(t, out.Registered)
	})

	t.Run("invalid", func(t *testing.T) {
		f := newFixture(t)
		f.verify.On("Verify", mock.Anything, "ana@venture.dev", "111111").Return(otp.OutcomeInvalid, nil).Once()

		_, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: "ana@venture.dev", OTP: "111111"})
		gerr := requireCode(t, err, goerror.CodeUnauthorized)
		assert.Equal(t, "Invalid OTP", gerr.Msg())
	})

	t.Run("expired", func(t *testing.T) {
		f := newFixture(t)
		f.verify.On("Verify", mock.Anything, "ana@venture.dev", "111111").Return(otp.OutcomeExpired, nil).Once()

		_, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: "ana@venture.dev", OTP: "111111"})
		gerr := requireCode(t, err, goerror.CodeNotFound)
		assert.Equal(t, "OTP expired or not requested", gerr.Msg())
	})

	t.Run("store error", func(t *testing.T) {
		f := newFixture(t)
		f.verify.On("Verify", mock.Anything, "ana@venture.dev", "111111").Return(otp.VerifyOutcome(0), errors.New("redis down")).Once()

		_, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: "ana@venture.dev", OTP: "111111"})
		requireCode(t, err, goerror.CodeInternal)
	})

	for _, code := range []string{"12345", "1234567", "12a456", " 12345"} {
		t.Run("rejects malformed code "+code, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.uc.OtpVerify(context.Background(), OtpVerifyInput{Email: "ana@venture.dev", OTP: code})
			gerr := requireCode(t, err, goerror.CodeInvalidInput)
			assert.NotNil(t, gerr)
		})
	}
}
