// Package app wires the application together: configuration, logging,
// dataset loading, services, router and graceful shutdown.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"macrolens/internal/config"
	"macrolens/internal/dataset"
	apierrors "macrolens/internal/errors"
	"macrolens/internal/infrastructure"
	"macrolens/internal/middleware"
	"macrolens/internal/services"
	handlers "macrolens/internal/transport/http"
)

// Version identifies the running build.
const Version = "1.0.0"

// Application represents the main application container
type Application struct {
	Config            *config.Config
	Logger            *slog.Logger
	Router            *chi.Mux
	Server            *http.Server
	Store             *dataset.Store
	ChartService      *services.ChartService
	TextMiningService *services.TextMiningService
	Metrics           *infrastructure.Metrics

	startedAt time.Time
}

// NewApplication creates a new application instance with all dependencies
// constructed. The two source tables are loaded here, once: everything that
// serves requests afterwards only reads them.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	logger.InfoContext(ctx, "application starting",
		slog.String("version", Version),
		slog.Int("port", cfg.Server.Port))

	store, err := dataset.Load(ctx, logger, cfg.Paths.EquitiesFile, cfg.Paths.MacrosFile)
	if err != nil {
		return nil, err
	}

	metrics := infrastructure.NewMetrics(prometheus.DefaultRegisterer)
	metrics.DatasetRowsLoaded.WithLabelValues("equities").Set(float64(store.EquityRowCount()))
	metrics.DatasetRowsLoaded.WithLabelValues("macros").Set(float64(store.MacroRowCount()))

	app := &Application{
		startedAt:    time.Now(),
		Config:       cfg,
		Logger:       logger,
		Store:        store,
		Metrics:      metrics,
		ChartService: services.NewChartService(store, logger),
		TextMiningService: services.NewTextMiningService(services.TextMiningConfig{
			FetchTimeout:     cfg.TextMining.FetchTimeout,
			UserAgent:        cfg.TextMining.UserAgent,
			MaxWords:         cfg.TextMining.MaxWords,
			FetchesPerMinute: cfg.TextMining.FetchesPerMinute,
		}, logger),
	}

	app.Router = app.setupRouter()
	app.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return app, nil
}

// setupRouter builds the route tree with the shared middleware chain.
func (app *Application) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(app.Logger))
	r.Use(middleware.Recoverer(app.Logger))
	r.Use(chimiddleware.Timeout(app.Config.Server.RequestTimeout))

	errorHandler := apierrors.NewErrorHandler(app.Logger, false)

	chartHandler := handlers.NewChartHandler(app.ChartService, app.Logger, errorHandler, app.Metrics)
	referenceHandler := handlers.NewReferenceHandler(app.Logger)
	textMiningHandler := handlers.NewTextMiningHandler(app.TextMiningService, app.Logger, errorHandler, app.Metrics)
	exportHandler := handlers.NewExportHandler(app.ChartService, app.Logger, errorHandler)
	healthHandler := handlers.NewHealthHandler(Version)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/charts", chartHandler.Routes())
		r.Mount("/reference", referenceHandler.Routes())
		r.Mount("/textmining", textMiningHandler.Routes())
		r.Mount("/export", exportHandler.Routes())
		r.Mount("/health", healthHandler.Routes())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Run starts the HTTP server and blocks until shutdown. SIGINT/SIGTERM
// trigger a graceful drain bounded by the configured shutdown timeout.
func (app *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.Logger.Info("http server listening", slog.String("addr", app.Server.Addr))
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	app.Logger.Info("shutting down",
		slog.Duration("timeout", app.Config.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	app.Logger.Info("shutdown complete", slog.String("uptime", time.Since(app.startedAt).String()))
	return nil
}
