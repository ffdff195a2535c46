// cmd/library-stats-dashboard/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/Garg-Lavina/library-stats/internal/api/rest/v1"
	"github.com/Garg-Lavina/library-stats/internal/app"
	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/charts"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/dataset"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/spreadsheet"
	"github.com/Garg-Lavina/library-stats/internal/pkg/config"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/dashboard.yaml"
	}

	dashboardConfig, err := config.InitializeDashboardConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&dashboardConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(dashboardConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(dashboardConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	loader  lending.DatasetLoader
	filters lending.FilterService
	metrics lending.MetricsService
	charts  lending.ChartService
	exports lending.ExportService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.DashboardSettings, log logger.Logger) (*appDependencies, error) {
	loader, err := dataset.NewCSVLoader(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset loader: %w", err)
	}

	// Warm the loader cache and fail fast on an unreadable dataset.
	if _, err := loader.Load(context.Background(), cfg.DatasetPath); err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Info("dataset loaded from ", cfg.DatasetPath)

	renderer, err := charts.NewPNGRenderer(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart renderer: %w", err)
	}

	writer, err := spreadsheet.NewXLSXWriter(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet writer: %w", err)
	}

	filterService, err := app.NewFilterService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter service: %w", err)
	}

	metricsService, err := app.NewMetricsService(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics service: %w", err)
	}

	chartService, err := app.NewChartService(renderer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart service: %w", err)
	}

	exportService, err := app.NewExportService(writer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		loader:  loader,
		filters: filterService,
		metrics: metricsService,
		charts:  chartService,
		exports: exportService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.DashboardSettings, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	if err := v1.SetupRoutes(r,
		deps.loader,
		deps.filters,
		deps.metrics,
		deps.charts,
		deps.exports,
		cfg.DatasetPath,
		cfg.PreviewLimit,
		log,
	); err != nil {
		return fmt.Errorf("failed to set up routes: %w", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
