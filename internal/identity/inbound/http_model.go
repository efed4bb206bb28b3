package inbound

import (
	"net/http"
	"time"
)

type OtpSendRequest struct {
	Email string `json:"email"`
}

type OtpSendResponse struct {
	ExpiresInSeconds int64 `json:"expires_in_seconds"`
}

func (OtpSendResponse) Message() string {
	return "OTP sent"
}

type OtpVerifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type OtpVerifyResponse struct {
	Token      string `json:"token"`
	Registered bool   `json:"registered"`
}

func (OtpVerifyResponse) Message() string {
	return "User verified"
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Token   string `json:"token"`
	created bool
}

func (r RegisterResponse) StatusCode() int {
	if r.created {
		return http.StatusCreated
	}
	return http.StatusOK
}

func (r RegisterResponse) Message() string {
	if r.created {
		return "Registration successful"
	}
	return "Authentication successful"
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (LoginResponse) Message() string {
	return "Authentication successful"
}

type PasswordResetRequest struct {
	Password string `json:"password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password updated"
}

type ProfileResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
