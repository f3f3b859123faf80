// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/vdtran/stockroom-be/internal/adapters/db"
	"github.com/vdtran/stockroom-be/internal/core/services"
	"github.com/vdtran/stockroom-be/internal/handlers"
	"github.com/vdtran/stockroom-be/internal/handlers/middleware"
	"github.com/vdtran/stockroom-be/internal/pkg/config"
	"github.com/vdtran/stockroom-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GoVersion = "unknown"
)

func main() {
	// Initialize structured logger
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting stockroom backend",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
		slog.String("go_version", GoVersion),
	)

	// Load configuration
	slogger.Info("loading configuration")
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("site_code", cfg.Inventory.SiteCode),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	// Initialize dependencies
	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	// Setup HTTP server
	server := setupHTTPServer(cfg, deps, slogger)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	database      *db.Database
	stockService  *services.StockService
	stockHandler  *handlers.StockHandler
	exportHandler *handlers.ExportHandler
	healthHandler *handlers.HealthHandler
}

func (d *dependencies) cleanup() {
	if d.database != nil {
		d.database.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	logger.Info("connecting to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	database, err := db.NewDatabase(ctx, &db.Config{
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		User:               cfg.Database.User,
		Password:           cfg.Database.Password,
		Database:           cfg.Database.Name,
		SSLMode:            cfg.Database.SSLMode,
		MaxConnections:     cfg.Database.MaxConnections,
		MinConnections:     cfg.Database.MinConnections,
		MaxConnLifetime:    cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:    cfg.Database.MaxConnIdleTime,
		HealthCheckPeriod:  cfg.Database.HealthCheckPeriod,
		ConnectTimeout:     cfg.Database.ConnectTimeout,
		EnableQueryLogging: cfg.Database.EnableQueryLogging,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	deps.database = database

	// Initialize repositories
	stockRepo := db.NewStockRepository(database, cfg.Inventory.SiteCode, logger)

	// Initialize services
	deps.stockService = services.NewStockService(stockRepo, logger, cfg.Inventory.SampleLimit)

	// Initialize handlers
	deps.stockHandler = handlers.NewStockHandler(
		deps.stockService, logger,
		cfg.Inventory.DefaultPageSize, cfg.Inventory.MaxPageSize,
	)
	deps.exportHandler = handlers.NewExportHandler(deps.stockService, logger)
	deps.healthHandler = handlers.NewHealthHandler(database, cfg, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()

	// Setup middleware chain
	var handler http.Handler = mux

	// Apply middleware in reverse order (innermost first)
	if cfg.Server.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.Server.RequestTimeout)(handler)
	}

	if cfg.App.Environment != "test" {
		handler = middleware.Logger(logger)(handler)
		handler = middleware.RequestID(handler)
		handler = middleware.Recovery(logger)(handler)
	}

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	// Register routes using Go 1.22 method-specific routing
	registerRoutes(mux, deps)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies) {
	apiV1 := "/api/v1"

	// Health and readiness endpoints
	mux.HandleFunc("GET /health", deps.healthHandler.Health)
	mux.HandleFunc("GET /ready", deps.healthHandler.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", deps.healthHandler.Health)

	// Stock endpoints
	mux.HandleFunc("GET "+apiV1+"/stock/sample", deps.stockHandler.Sample)
	mux.HandleFunc("GET "+apiV1+"/stock/raw/{id}", deps.stockHandler.RawUnits)
	mux.HandleFunc("GET "+apiV1+"/stock/total-quantity", deps.stockHandler.TotalQuantity)
	mux.HandleFunc("GET "+apiV1+"/stock/status", deps.stockHandler.ListByStatus)
	mux.HandleFunc("GET "+apiV1+"/stock/{id}", deps.stockHandler.GetRecord)
	mux.HandleFunc("GET "+apiV1+"/stock", deps.stockHandler.List)
	mux.HandleFunc("PUT "+apiV1+"/stock/{id}", deps.stockHandler.UpdateUnit)
	mux.HandleFunc("PUT "+apiV1+"/stock/{id}/subtract", deps.stockHandler.Subtract)
	mux.HandleFunc("PUT "+apiV1+"/stock/{id}/add", deps.stockHandler.Add)
	mux.HandleFunc("POST "+apiV1+"/stock", deps.stockHandler.Create)

	// Reference lookup
	mux.HandleFunc("GET "+apiV1+"/refs/{code}", deps.stockHandler.LookupRef)

	// Export endpoints
	mux.HandleFunc("GET "+apiV1+"/stock/export/excel", deps.exportHandler.ExportExcel)
	mux.HandleFunc("GET "+apiV1+"/stock/export/json", deps.exportHandler.ExportJSON)
}
