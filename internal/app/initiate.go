package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
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
)

const (
	mailDriverSMTP = "smtp"
	mailDriverLog  = "log"
)

var errUnknownMailDriver = errors.New("unknown mail driver")

// configPath resolves CONFIG_PATH, falling back to the container or local default.
func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	if os.Getenv("LOCAL") == "true" {
		return "./config/config.yaml"
	}
	return "/config/config.yaml"
}

// str reads a trimmed string key.
func (a *App) str(key string) string {
	return strings.TrimSpace(a.config.GetString(key))
}

func (a *App) initConfig() {
	cfg, err := config.NewViper(configPath())
	if err != nil {
		fatal("failed to init config", err)
	}

	if tz := cfg.GetString("app.tz"); tz != "" {
		//nolint:errcheck,gosec // TZ is best effort
		os.Setenv("TZ", tz)
	}
	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.str("instrument.service_name"),
		ServiceVersion:   a.str("instrument.service_version"),
		Environment:      a.str("instrument.env"),
		OTLPEndpoint:     a.str("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  a.config.GetSecond("instrument.metric_interval_seconds"),
		MaskFields:       a.config.GetArray("instrument.log_mask_fields"),
		LogLevel:         a.str("instrument.log_level"),
	})
	if err != nil {
		fatal("failed to init instrumentation", err)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	v, err := validator.NewV10Validator()
	if err != nil {
		fatal("failed to init validator", err)
	}

	node, err := uid.NewSnowflakeNode(a.config.GetInt64("app.node_id"))
	if err != nil {
		fatal("failed to init snowflake node", err, "node_id", a.config.GetInt64("app.node_id"))
	}

	a.validator = v
	a.uid = node
	a.uuid = uid.NewUUID()
	a.clock = clock.New()
	a.goroutine = goroutine.NewManager(a.config.GetInt("app.server.max_goroutine"))
	a.bcrypt = hash.NewBcrypt(a.config.GetInt("hash.bcrypt.cost"), a.config.GetString("hash.bcrypt.pepper"))
}

func (a *App) initJWT() {
	signer, err := jwt.NewHS512(jwt.Config{
		Secret:          []byte(a.config.GetString("jwt.secret")),
		Issuer:          a.str("jwt.issuer"),
		Audiences:       a.config.GetArray("jwt.audiences"),
		SessionTTL:      a.config.GetMinute("jwt.ttl_minutes"),
		VerificationTTL: a.config.GetSecond("jwt.verification_ttl_seconds"),
		Clock:           a.clock,
		UUID:            a.uuid,
	})
	if err != nil {
		fatal("failed to init jwt", err)
	}
	a.jwt = signer
}

func (a *App) initDatabase() {
	pc, err := pgxpool.ParseConfig(a.str("database.url"))
	if err != nil {
		fatal("failed to parse database url", err)
	}
	pc.MaxConns = a.config.GetInt32("database.pool.max_conns")
	pc.MinConns = a.config.GetInt32("database.pool.min_conns")
	pc.MaxConnLifetime = a.config.GetSecond("database.pool.max_conn_lifetime_seconds")
	pc.MaxConnIdleTime = a.config.GetSecond("database.pool.max_conn_idle_seconds")
	pc.HealthCheckPeriod = a.config.GetSecond("database.pool.health_check_period_seconds")

	pool, err := pgxpool.NewWithConfig(a.ctx, pc)
	if err != nil {
		fatal("failed to create database pool", err)
	}
	if err := pingWithRetry(a.ctx, "database", a.startupTimeout(), pool.Ping); err != nil {
		fatal("database unreachable", err)
	}
	a.dbConn = pool
}

func (a *App) initCache() {
	opt, err := redis.ParseURL(a.str("redis.url"))
	if err != nil {
		fatal("failed to parse redis url", err)
	}

	rdb := redis.NewClient(opt)
	ping := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	if err := pingWithRetry(a.ctx, "redis", a.startupTimeout(), ping); err != nil {
		fatal("redis unreachable", err)
	}

	a.cacheConn = rdb
	a.idemp = idempotency.New(rdb)
}

func (a *App) initMail() {
	switch driver := a.str("mail.driver"); driver {
	case mailDriverLog:
		a.mail = mail.NewLog()
	case mailDriverSMTP, "":
		m, err := mail.NewSMTP(mail.SMTPConfig{
			Host:     a.str("mail.host"),
			Port:     a.config.GetInt("mail.port"),
			Username: a.config.GetString("mail.username"),
			Password: a.config.GetString("mail.password"),
			From:     a.str("mail.from"),
		})
		if err != nil {
			fatal("failed to init mail", err)
		}
		a.mail = m
	default:
		fatal("failed to init mail", errUnknownMailDriver, "driver", driver)
	}
}

func (a *App) initStorage() {
	stg, err := storage.NewFromDriver(a.ctx, a.str("storage.driver"), storage.FactoryOptions{
		S3: storage.S3Options{
			Region:       a.str("storage.s3.region"),
			Endpoint:     a.str("storage.s3.endpoint"),
			AccessKey:    a.str("storage.s3.access_key"),
			SecretKey:    a.str("storage.s3.secret_key"),
			SessionToken: a.str("storage.s3.session_token"),
			UsePathStyle: a.config.GetBool("storage.s3.use_path_style"),
		},
		MinIO: storage.MinIOOptions{
			Region:       a.str("storage.minio.region"),
			Endpoint:     a.str("storage.minio.endpoint"),
			AccessKey:    a.str("storage.minio.access_key"),
			SecretKey:    a.str("storage.minio.secret_key"),
			SessionToken: a.str("storage.minio.session_token"),
			UseSSL:       a.config.GetBool("storage.minio.use_ssl"),
		},
	})
	if err != nil {
		fatal("failed to init storage", err)
	}
	a.storage = stg
}

func (a *App) initMessaging() {
	client, err := messaging.NewFromDriver(a.str("messaging.driver"), messaging.FactoryOptions{
		Kafka: messaging.KafkaConfig{
			Brokers:                a.config.GetArray("messaging.kafka.brokers"),
			ClientID:               a.str("messaging.kafka.client_id"),
			DialTimeout:            a.config.GetSecond("messaging.kafka.dial_timeout_seconds"),
			AllowAutoTopicCreation: a.config.GetBool("messaging.kafka.allow_auto_topic_creation"),
		},
		NATS: messaging.NATSConfig{
			URL: a.str("messaging.nats.url"),
			Options: []nats.Option{
				nats.Name(a.str("messaging.nats.client_name")),
				nats.Timeout(a.config.GetSecond("messaging.nats.timeout_seconds")),
				nats.MaxReconnects(a.config.GetInt("messaging.nats.max_reconnects")),
			},
		},
	})
	if err != nil {
		fatal("failed to init messaging", err)
	}
	a.messaging = client
}

// corsPolicy exposes Retry-After so browsers can honor OTP cooldowns.
func (a *App) corsPolicy() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: a.config.GetArray("app.server.cors"),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Retry-After", "X-Correlation-ID"},
		AllowCredentials: true,
	})
}

func (a *App) initHTTPServer() {
	a.router = router.NewRouter(router.Config{
		Config:     a.config,
		UUID:       a.uuid,
		JWT:        a.jwt,
		Instrument: a.ins,
	})
	a.router.GETRaw("/health", healthHandler(a.ready))

	a.httpServer = &http.Server{
		Addr:              a.str("app.server.http.address"),
		Handler:           a.corsPolicy().Handler(a.router),
		ReadTimeout:       a.config.GetSecond("app.server.http.read_timeout_seconds"),
		ReadHeaderTimeout: a.config.GetSecond("app.server.http.read_header_timeout_seconds"),
		WriteTimeout:      a.config.GetSecond("app.server.http.write_timeout_seconds"),
		IdleTimeout:       a.config.GetSecond("app.server.http.idle_timeout_seconds"),
	}
}

// ignoreCtx adapts a plain Close to the closer signature.
func ignoreCtx(fn func() error) func(context.Context) error {
	return func(context.Context) error { return fn() }
}

// initClosers orders teardown so producers of work stop before the stores they write to.
func (a *App) initClosers() {
	a.closers = []closer{
		{name: "Instrument", fn: a.ins.Shutdown},
		{name: "Messaging", fn: ignoreCtx(a.messaging.Close)},
		{name: "Mail", fn: ignoreCtx(a.mail.Close)},
		{name: "Redis", fn: ignoreCtx(a.cacheConn.Close)},
		{name: "Database", fn: func(context.Context) error { a.dbConn.Close(); return nil }},
		{name: "Storage", fn: ignoreCtx(a.storage.Close)},
		{name: "Config", fn: ignoreCtx(a.config.Close)},
	}
}
