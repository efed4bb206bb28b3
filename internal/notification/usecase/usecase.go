package usecase

import (
	"bytes"
	"context"
	"io"

	"github.com/shandysiswandi/venture/internal/pkg/clock"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

const defaultAppName = "The Venture"

type repoMail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoMail  repoMail
	cfg       config.Config
	clock     clock.Clocker
	validator validator.Validator
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoMail   repoMail
	Config     config.Config
	Clock      clock.Clocker
	Validator  validator.Validator
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoMail:  dep.RepoMail,
		cfg:       dep.Config,
		clock:     dep.Clock,
		validator: dep.Validator,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

func (s *Usecase) baseTemplateData() map[string]any {
	name := s.cfg.GetString("app.name")
	if name == "" {
		name = defaultAppName
	}

	return map[string]any{
		"app_name": name,
		"web_url":  s.cfg.GetString("app.web"),
		"year":     s.clock.Now().Format("2006"),
	}
}

type renderer interface {
	Execute(w io.Writer, data any) error
}

func render(t renderer, data map[string]any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
