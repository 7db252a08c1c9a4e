package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/greeter-api/internal/api/middleware"
	"github.com/phrazzld/greeter-api/internal/config"
	"github.com/phrazzld/greeter-api/internal/platform/postgres"
	"github.com/phrazzld/greeter-api/internal/service"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	greetingService service.GreetingService
	metrics         *middleware.Metrics
}

// newApplication wires the store, service and metrics around an open database.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	greetingStore := postgres.NewPostgresGreetingStore(db, log)
	repo := service.NewGreetingRepositoryAdapter(greetingStore, db)

	greetingService, err := service.NewGreetingService(repo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create greeting service: %w", err)
	}

	app := &application{
		config:          cfg,
		logger:          log,
		db:              db,
		greetingService: greetingService,
		metrics:         newMetrics(),
	}

	log.Info("application initialized")
	return app, nil
}

// newMetrics builds the HTTP metrics on a private registry that also carries
// the runtime collectors.
func newMetrics() *middleware.Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return middleware.NewMetrics(reg)
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
	}
	app.logger.Info("application shutdown completed")
}
