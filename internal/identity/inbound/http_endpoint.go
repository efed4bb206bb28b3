package inbound

import (
	"github.com/shandysiswandi/venture/internal/identity/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP, account and profile workflows.
type HTTPEndpoint struct {
	uc uc
}

// OtpSend issues a one-time code to the given email.
// @Summary Send OTP
// @Description Stores a 6-digit code and emails it. Refused while a previous code is still live.
// @Tags Identity, OTP
// @Accept json
// @Produce json
// @Param request body OtpSendRequest true "OTP send payload"
// @Success 200 {object} router.successResponse{data=OtpSendResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 429 {object} router.errorResponse "Previous code still live"
// @Failure 503 {object} router.errorResponse "Email delivery failed"
// @Router /api/v1/auth/otp/send [post]
func (h *HTTPEndpoint) OtpSend(r *router.Request) (any, error) {
	var req OtpSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpSend(r.Context(), usecase.OtpSendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return OtpSendResponse{ExpiresInSeconds: resp.ExpiresInSeconds}, nil
}

// OtpVerify checks a one-time code and returns a verification token.
// @Summary Verify OTP
// @Description Consumes a matching code and returns a short-lived verification token.
// @Tags Identity, OTP
// @Accept json
// @Produce json
// @Param request body OtpVerifyRequest true "OTP verify payload"
// @Success 200 {object} router.successResponse{data=OtpVerifyResponse} "Code accepted"
// @Failure 401 {object} router.errorResponse "Invalid OTP"
// @Failure 404 {object} router.errorResponse "OTP expired or not requested"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/auth/otp/verify [post]
func (h *HTTPEndpoint) OtpVerify(r *router.Request) (any, error) {
	var req OtpVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.OtpVerify(r.Context(), usecase.OtpVerifyInput{Email: req.Email, OTP: req.OTP})
	if err != nil {
		return nil, err
	}

	return OtpVerifyResponse{Token: resp.Token, Registered: resp.Registered}, nil
}

// Register creates an account for the verified email.
// @Summary Register user
// @Description Requires a verification token. Returns a session token.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RegisterRequest true "Register payload"
// @Success 201 {object} router.successResponse{data=RegisterResponse} "Account created"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Existing account, password matched"
// @Failure 401 {object} router.errorResponse "Verification token missing or used"
// @Failure 409 {object} router.errorResponse "Email already exists"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/auth/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{Name: req.Name, Password: req.Password})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{Token: resp.Token, created: resp.Created}, nil
}

// Login authenticates with email and password.
// @Summary Authenticate user
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Session token"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/auth/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return nil, err
	}

	return LoginResponse{Token: resp.Token}, nil
}

// PasswordReset sets a new password for the verified email.
// @Summary Reset password
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PasswordResetRequest true "Password reset payload"
// @Success 200 {object} router.successResponse{data=PasswordResetResponse} "Password updated"
// @Failure 401 {object} router.errorResponse "Verification token missing or used"
// @Failure 404 {object} router.errorResponse "User not found"
// @Router /api/v1/auth/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{Password: req.Password}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// Profile returns the signed-in user.
// @Summary Get profile
// @Tags Identity, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/auth/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		CreatedAt: resp.CreatedAt,
	}, nil
}
