package blog

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/venture/internal/blog/inbound"
	"github.com/shandysiswandi/venture/internal/blog/outbound/ai"
	"github.com/shandysiswandi/venture/internal/blog/outbound/db"
	"github.com/shandysiswandi/venture/internal/blog/outbound/mq"
	blogstorage "github.com/shandysiswandi/venture/internal/blog/outbound/storage"
	"github.com/shandysiswandi/venture/internal/blog/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/pkg/router"
	"github.com/shandysiswandi/venture/internal/pkg/storage"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	cover := blogstorage.NewCover(
		dep.Storage,
		dep.Config.GetString("modules.blog.cover_bucket"),
		dep.Config.GetMinute("modules.blog.cover_url_expiry_minutes"),
		dep.Instrument,
	)

	writer := ai.NewOpenAI(ai.Config{
		APIKey:      dep.Config.GetString("ai.api_key"),
		BaseURL:     dep.Config.GetString("ai.base_url"),
		Model:       dep.Config.GetString("ai.model"),
		MaxTokens:   dep.Config.GetInt64("ai.max_tokens"),
		Temperature: dep.Config.GetFloat64("ai.temperature"),
		Timeout:     dep.Config.GetSecond("ai.timeout_seconds"),
	}, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        db.NewDB(dep.DBConn, dep.Instrument),
		RepoStorage:   cover,
		RepoAI:        writer,
		RepoMessaging: mq.NewMessaging(dep.Messaging, dep.Instrument),
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		UID:           dep.UID,
		UUID:          dep.UUID,
		Config:        dep.Config,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
