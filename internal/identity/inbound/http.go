package inbound

import (
	"context"

	"github.com/shandysiswandi/venture/internal/identity/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/router"
)

type uc interface {
	OtpSend(ctx context.Context, in usecase.OtpSendInput) (*usecase.OtpSendOutput, error)
	OtpVerify(ctx context.Context, in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error)

	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP (public)
	r.POST("/api/v1/auth/otp/send", end.OtpSend)
	r.POST("/api/v1/auth/otp/verify", end.OtpVerify)

	// need verification token
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/password/reset", end.PasswordReset)

	r.POST("/api/v1/auth/login", end.Login)
	r.GET("/api/v1/auth/profile", end.Profile) // need authenticated
}
