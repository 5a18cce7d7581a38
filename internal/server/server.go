// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - the persistence gateway (PostgreSQL, SQLite file or in-memory)
//   - upload storage
//   - optional redis client and background job worker (asynq)
//   - Prometheus registry
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/schoolsite/internal/config"
	"github.com/deppfellow/schoolsite/internal/database"
	"github.com/deppfellow/schoolsite/internal/database/sqlite"
	"github.com/deppfellow/schoolsite/internal/lib/email"
	"github.com/deppfellow/schoolsite/internal/lib/job"
	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/storage"
	"github.com/deppfellow/schoolsite/internal/store"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/schoolsite/internal/logger"
)

// Server is the application container that holds shared resources.
// It is built once at startup and read-only afterwards.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// Store is the persistence gateway every repository goes through.
	Store store.Gateway

	// DB is the PostgreSQL pool; nil for the other drivers.
	DB *database.Database

	// Objects holds gallery uploads.
	Objects storage.ObjectStore

	// Redis and Job are nil when no redis address is configured.
	Redis *redis.Client
	Job   *job.JobService

	// Metrics is the registry served at /metrics.
	Metrics *prometheus.Registry

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// Redis is optional: without an address, or when the ping fails, the server
// runs without background notifications.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       NewRegistry(),
	}

	if err := s.openStore(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	objects, err := storage.New(ctx, &cfg.Storage)
	if err != nil {
		s.Store.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	s.Objects = objects

	if cfg.Redis.Enabled() {
		s.startJobs(ctx)
	}

	return s, nil
}

func (s *Server) openStore() error {
	cfg := s.Config

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		db, err := database.New(cfg, s.Logger, s.LoggerService)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		s.DB = db
		s.Store = db.Gateway()

	case config.DriverSQLite:
		gw, err := sqlite.Open(cfg.Database.SQLitePath, cfg.Observability.Logging.SlowQueryThreshold, s.Logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		s.Store = gw

	case config.DriverMemory:
		s.Logger.Warn().Msg("using in-memory store, data is lost on restart")
		s.Store = store.NewMemory(model.UniqueColumns())

	default:
		return fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}

	return nil
}

func (s *Server) startJobs(ctx context.Context) {
	redisClient := redis.NewClient(&redis.Options{
		Addr: s.Config.Redis.Address,
	})

	if app := s.LoggerService.GetApplication(); app != nil {
		redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		s.Logger.Error().Err(err).Msg("Failed to connect to Redis, continuing without background jobs")
		redisClient.Close()
		return
	}
	s.Redis = redisClient

	if !s.Config.Integration.EmailEnabled() {
		s.Logger.Info().Msg("no email provider configured, notifications disabled")
		return
	}

	jobService := job.NewJobService(s.Logger, s.Config, email.NewClient(s.Config, s.Logger))
	if err := jobService.Start(); err != nil {
		s.Logger.Error().Err(err).Msg("Failed to start job server, continuing without background jobs")
		return
	}
	s.Job = jobService
}

// NewRegistry returns a Prometheus registry with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// SetupHTTPServer configures the internal net/http server. Config timeouts are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Str("database", s.Store.Driver()).
		Str("storage", s.Objects.Driver()).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops the HTTP server, then the job worker, then closes the
// store and redis.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	if err := s.Store.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis connection: %w", err)
		}
	}

	return nil
}
