package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
)

type ConsumeUserRegisteredInput struct {
	UserID int64  `validate:"required,gt=0"`
	Email  string `validate:"required,email"`
	Name   string `validate:"required,max=100"`
}

// ConsumeUserRegistered sends the welcome email. Invalid payloads are dropped.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "user_id", in.UserID, "error", err)
		return nil
	}

	data := s.baseTemplateData()
	data["name"] = in.Name

	html, err := render(welcomeHTML, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome email", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	text, err := render(welcomeText, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render welcome email text", "user_id", in.UserID, "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoMail.Send(ctx, mail.Message{
		To:       []string{in.Email},
		Subject:  "Welcome to " + data["app_name"].(string),
		TextBody: text,
		HTMLBody: html,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send welcome email", "user_id", in.UserID, "error", err)
		return goerror.NewDependency(err, "Failed to send welcome email")
	}

	slog.InfoContext(ctx, "welcome email sent", "user_id", in.UserID)
	return nil
}
