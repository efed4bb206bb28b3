package identity

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/venture/internal/identity/inbound"
	"github.com/shandysiswandi/venture/internal/identity/outbound/db"
	"github.com/shandysiswandi/venture/internal/identity/outbound/email"
	"github.com/shandysiswandi/venture/internal/identity/outbound/mq"
	"github.com/shandysiswandi/venture/internal/identity/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/clock"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/hash"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/pkg/otp"
	"github.com/shandysiswandi/venture/internal/pkg/router"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
)

const defaultOTPTTL = 300 * time.Second

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	CacheConn   *redis.Client              `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Config      config.Config              `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Bcrypt      hash.Hash                  `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	JWT         jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	ttl := dep.Config.GetSecond("otp.ttl_seconds")
	if ttl <= 0 {
		ttl = defaultOTPTTL
	}

	store := otp.NewRedisStore(dep.CacheConn)
	issuer, err := otp.NewIssuer(store, email.New(dep.Mail, dep.Instrument), ttl)
	if err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Issuer:        issuer,
		Verifier:      otp.NewVerifier(store),
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
