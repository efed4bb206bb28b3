package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

const subjectOTP = "Verification OTP"

var otpHTML = template.Must(template.New("otp").Parse(`<div style="font-family: Arial, sans-serif; padding: 10px;">
  <h2>Hello, User</h2>
  <p>Your OTP is:</p>
  <h1 style="color: #4CAF50;">{{.Code}}</h1>
  <p>This OTP is valid for {{.Validity}}.</p>
</div>`))

// Mail delivers one-time codes by email.
type Mail struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func New(client mail.Mail, ins instrument.Instrumentation) *Mail {
	return &Mail{client: client, ins: ins}
}

func (m *Mail) DeliverCode(ctx context.Context, email, code string, ttl time.Duration) error {
	ctx, span := m.ins.Tracer("identity.outbound.email").Start(ctx, "DeliverCode")
	defer span.End()

	validity := humanDuration(ttl)

	var html bytes.Buffer
	if err := otpHTML.Execute(&html, map[string]string{"Code": code, "Validity": validity}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  subjectOTP,
		TextBody: fmt.Sprintf("Your OTP is: %s\nThis OTP is valid for %s.", code, validity),
		HTMLBody: html.String(),
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Minute && d%time.Minute == 0:
		if d == time.Minute {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", d/time.Minute)
	case d <= time.Second:
		return "1 second"
	default:
		return fmt.Sprintf("%d seconds", (d+time.Second-1)/time.Second)
	}
}
