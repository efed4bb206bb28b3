package usecase

import (
	"context"
	"time"

	"github.com/shandysiswandi/venture/internal/identity/entity"
	"github.com/shandysiswandi/venture/internal/pkg/clock"
	"github.com/shandysiswandi/venture/internal/pkg/hash"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID int64
	Email  string
	Name   string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)

	CreateUser(ctx context.Context, in entity.NewUser) (*entity.User, error)
	UpdateUserPassword(ctx context.Context, email, hash string) error
}

type otpIssuer interface {
	Issue(ctx context.Context, email string) (otp.IssueResult, error)
	TTL() time.Duration
}

type otpVerifier interface {
	Verify(ctx context.Context, email, code string) (otp.VerifyOutcome, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	issuer        otpIssuer
	verifier      otpVerifier
	idemp         idempotency.Idempotency
	validator     validator.Validator
	bcrypt        hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Issuer        otpIssuer
	Verifier      otpVerifier
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Bcrypt        hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		issuer:        dep.Issuer,
		verifier:      dep.Verifier,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
