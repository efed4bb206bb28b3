package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/venture/internal/pkg/clock"
	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/goroutine"
	"github.com/shandysiswandi/venture/internal/pkg/hash"
	"github.com/shandysiswandi/venture/internal/pkg/idempotency"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/jwt"
	"github.com/shandysiswandi/venture/internal/pkg/mail"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/pkg/router"
	"github.com/shandysiswandi/venture/internal/pkg/storage"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/pkg/validator"
	"go.uber.org/atomic"
)

// App owns every process-wide resource and the order they start and stop in.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server
	ready      *atomic.Bool

	closers []closer
}

// closer releases one resource during Stop.
type closer struct {
	name string
	fn   func(context.Context) error
}

// fatal logs err and exits; only used while wiring, before anything serves traffic.
func fatal(msg string, err error, args ...any) {
	slog.Error(msg, append([]any{"error", err}, args...)...)
	os.Exit(1)
}

// New wires the application from config. Any wiring failure exits the process.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
		ready:  atomic.NewBool(false),
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
