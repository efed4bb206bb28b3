package inbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/venture/internal/identity/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	otpSend   func(usecase.OtpSendInput) (*usecase.OtpSendOutput, error)
	otpVerify func(usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error)
	register  func(context.Context, usecase.RegisterInput) (*usecase.RegisterOutput, error)
}

func (s *stubUsecase) OtpSend(_ context.Context, in usecase.OtpSendInput) (*usecase.OtpSendOutput, error) {
	return s.otpSend(in)
}

func (s *stubUsecase) OtpVerify(_ context.Context, in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error) {
	return s.otpVerify(in)
}

func (s *stubUsecase) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return s.register(ctx, in)
}

func (s *stubUsecase) Login(context.Context, usecase.LoginInput) (*usecase.LoginOutput, error) {
	return &usecase.LoginOutput{Token: "session"}, nil
}

func (s *stubUsecase) PasswordReset(context.Context, usecase.PasswordResetInput) error {
	return nil
}

func (s *stubUsecase) Profile(context.Context) (*usecase.ProfileOutput, error) {
	return &usecase.ProfileOutput{ID: 7, Name: "Ana", Email: "ana@venture.dev", CreatedAt: time.Unix(0, 0).UTC()}, nil
}

type stubJWT struct{}

func (stubJWT) Generate(int64, string) (string, error) { return "", nil }

func (stubJWT) GenerateVerification(string) (string, error) { return "", nil }

func (stubJWT) Verify(token string) (jwt.Claims, error) {
	switch token {
	case "verify":
		return jwt.Claims{Purpose: jwt.PurposeVerification, UserEmail: "ana@venture.dev"}, nil
	case "session":
		return jwt.Claims{Purpose: jwt.PurposeSession, UserID: 7, UserEmail: "ana@venture.dev"}, nil
	}
	return jwt.Claims{}, jwt.ErrInvalidToken
}

func serve(t *testing.T, uc uc, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := router.NewRouter(router.Config{JWT: stubJWT{}, Instrument: instrument.NewNoop()})
	RegisterHTTPEndpoint(r, uc)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestOtpSendEndpoint(t *testing.T) {
	uc := &stubUsecase{otpSend: func(in usecase.OtpSendInput) (*usecase.OtpSendOutput, error) {
		if in.Email == "busy@venture.dev" {
			return nil, goerror.NewBusiness("Wait 12 seconds for the OTP to expire", goerror.CodeTooManyRequest,
				"retry_after_seconds", "12")
		}
		return &usecase.OtpSendOutput{ExpiresInSeconds: 300}, nil
	}}

	rec, body := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/send", "", `{"email":"ana@venture.dev"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP sent", body["message"])
	assert.Equal(t, map[string]any{"expires_in_seconds": float64(300)}, body["data"])

	rec, body = serve(t, uc, http.MethodPost, "/api/v1/auth/otp/send", "", `{"email":"busy@venture.dev"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
	assert.Equal(t, "Wait 12 seconds for the OTP to expire", body["message"])

	rec, _ = serve(t, uc, http.MethodPost, "/api/v1/auth/otp/send", "", `{"email":"a@x.io","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOtpVerifyEndpoint(t *testing.T) {
	uc := &stubUsecase{otpVerify: func(in usecase.OtpVerifyInput) (*usecase.OtpVerifyOutput, error) {
		assert.Equal(t, "012345", in.OTP)
		return &usecase.OtpVerifyOutput{Token: "vtoken", Registered: true}, nil
	}}

	rec, body := serve(t, uc, http.MethodPost, "/api/v1/auth/otp/verify", "", `{"email":"ana@venture.dev","otp":"012345"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"token": "vtoken", "registered": true}, body["data"])
}

func TestRegisterEndpoint(t *testing.T) {
	uc := &stubUsecase{register: func(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error) {
		clm := jwt.GetAuth(ctx)
		require.NotNil(t, clm)
		assert.Equal(t, "ana@venture.dev", clm.UserEmail)
		return &usecase.RegisterOutput{Token: "session", Created: in.Name == "Ana"}, nil
	}}

	rec, body := serve(t, uc, http.MethodPost, "/api/v1/auth/register", "verify", `{"name":"Ana","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Registration successful", body["message"])
	assert.Equal(t, map[string]any{"token": "session"}, body["data"])

	rec, _ = serve(t, uc, http.MethodPost, "/api/v1/auth/register", "verify", `{"name":"Bob","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, body = serve(t, uc, http.MethodPost, "/api/v1/auth/register", "session", `{"name":"Ana","password":"secret1"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Token not allowed for this action", body["message"])
}

func TestProfileEndpoint(t *testing.T) {
	rec, body := serve(t, &stubUsecase{}, http.MethodGet, "/api/v1/auth/profile", "session", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"id":         "7",
		"name":       "Ana",
		"email":      "ana@venture.dev",
		"created_at": "1970-01-01T00:00:00Z",
	}, body["data"])

	rec, _ = serve(t, &stubUsecase{}, http.MethodGet, "/api/v1/auth/profile", "verify", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
