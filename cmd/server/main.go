package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/preston-bernstein/schedule-api/internal/config"
	httpserver "github.com/preston-bernstein/schedule-api/internal/http"
	"github.com/preston-bernstein/schedule-api/internal/http/handlers"
	"github.com/preston-bernstein/schedule-api/internal/logging"
	"github.com/preston-bernstein/schedule-api/internal/server"
)

const (
	appName    = "schedule-api"
	appVersion = "dev"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
	})

	if err := newApp(logger).Run(os.Args); err != nil {
		logging.Fatal(logger, "application failed", err)
	}
}

func newApp(logger *slog.Logger) *cli.App {
	return &cli.App{
		Name:    appName,
		Usage:   "CRUD API for games and teams",
		Version: appVersion,
		Action:  serve(logger),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API (default)",
				Action: serve(logger),
			},
			{
				Name:   "openapi",
				Usage:  "print the OpenAPI document as YAML",
				Action: printOpenAPI,
			},
		},
	}
}

func serve(logger *slog.Logger) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg := config.Load()
		logger.Info("starting application",
			slog.String("port", cfg.Port),
			slog.Bool("seed_enabled", cfg.SeedEnabled),
		)

		ctx, stop := signal.NotifyContext(contextOrBackground(c), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, logger)
		return srv.Run(ctx)
	}
}

func printOpenAPI(c *cli.Context) error {
	routes := httpserver.Routes(handlers.NewHandler(nil, nil, nil, nil))
	doc, err := httpserver.RenderOpenAPI(routes)
	if err != nil {
		return err
	}
	_, err = c.App.Writer.Write(doc)
	return err
}

func contextOrBackground(c *cli.Context) context.Context {
	if c != nil && c.Context != nil {
		return c.Context
	}
	return context.Background()
}
