package server

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/preston-bernstein/schedule-api/internal/app/games"
	"github.com/preston-bernstein/schedule-api/internal/app/teams"
	"github.com/preston-bernstein/schedule-api/internal/config"
	httpserver "github.com/preston-bernstein/schedule-api/internal/http"
	"github.com/preston-bernstein/schedule-api/internal/http/handlers"
	"github.com/preston-bernstein/schedule-api/internal/http/middleware"
	"github.com/preston-bernstein/schedule-api/internal/logging"
	"github.com/preston-bernstein/schedule-api/internal/metrics"
	"github.com/preston-bernstein/schedule-api/internal/seed"
	"github.com/preston-bernstein/schedule-api/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	gamesService  *games.Service
	teamsService  *teams.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	ready         atomic.Bool
}

// New constructs a server: store, seed data, services, routes and telemetry.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithMetrics(cfg, logger, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	logger.Info("initializing store")
	memoryStore, gameSvc, teamSvc := buildServices(logger, recorder)
	if cfg.SeedEnabled {
		seed.Seed(memoryStore, logger)
	}

	s := &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		gamesService:  gameSvc,
		teamsService:  teamSvc,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
	s.httpServer = buildHTTPServer(cfg, gameSvc, teamSvc, logger, recorder, s.ready.Load)
	s.ready.Store(true)
	return s
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
	}
}

func buildServices(logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *games.Service, *teams.Service) {
	memoryStore := store.NewMemoryStore()
	return memoryStore, games.NewService(memoryStore, logger, recorder), teams.NewService(memoryStore, recorder)
}

func buildHTTPServer(cfg config.Config, gameSvc *games.Service, teamSvc *teams.Service, logger *slog.Logger, recorder *metrics.Recorder, ready func() bool) httpServer {
	logger.Info("creating routes")
	handler := handlers.NewHandler(gameSvc, teamSvc, logger, ready)
	router := httpserver.NewRouter(handler,
		middleware.Logging(logger, recorder),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return &netHTTPServer{srv: srv}
}

// Run binds the HTTP listener, starts the HTTP and metrics servers, then waits for
// context cancellation or a serve failure and shuts down gracefully. A bind or
// serve failure is returned so the caller can treat it as fatal.
func (s *Server) Run(ctx context.Context) error {
	if err := s.bind(); err != nil {
		s.ready.Store(false)
		return errors.Wrapf(err, "bind http server on %s", s.httpServer.Addr())
	}

	s.startMetrics()
	serveErr := s.startServer()
	logging.Info(s.logger, "successfully started", slog.String("addr", s.httpServer.Addr()))

	var runErr error
	select {
	case <-ctx.Done():
		logging.Info(s.logger, "shutdown signal received")
	case err := <-serveErr:
		runErr = errors.Wrap(err, "serve http")
	}

	s.gracefulShutdown()
	return runErr
}

func (s *Server) bind() error {
	if b, ok := s.httpServer.(binder); ok {
		return b.Bind()
	}
	return nil
}

func (s *Server) startServer() <-chan error {
	return launchServer("http", s.httpServer, s.logger)
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger)
}

func (s *Server) gracefulShutdown() {
	s.ready.Store(false)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return shutdownTimeout
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = &netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// launchServer serves in the background. The returned channel receives the
// error if the server stops for any reason other than shutdown.
func launchServer(name string, srv httpServer, logger *slog.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			errCh <- err
		}
	}()
	return errCh
}
