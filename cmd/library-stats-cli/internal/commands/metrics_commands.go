package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Garg-Lavina/library-stats/internal/app"
	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/dataset"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// MetricsCommandHandler encapsulates logic for computing lending metrics via CLI.
type MetricsCommandHandler struct {
	loader  lending.DatasetLoader
	filters lending.FilterService
	metrics lending.MetricsService
	logger  logger.Logger
}

// NewMetricsCommandHandler initializes and returns a MetricsCommandHandler instance with
// configured logger, loader and services.
func NewMetricsCommandHandler() (*MetricsCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	loader, err := dataset.NewCSVLoader(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset loader: %w", err)
	}

	filterService, err := app.NewFilterService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter service: %w", err)
	}

	metricsService, err := app.NewMetricsService(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics service: %w", err)
	}

	return &MetricsCommandHandler{
		loader:  loader,
		filters: filterService,
		metrics: metricsService,
		logger:  loggerInstance,
	}, nil
}

// MetricsCmd computes the summary metrics for the filtered dataset and prints them as JSON
func (commandHandler *MetricsCommandHandler) MetricsCmd(cmd *cobra.Command, _ []string) {
	datasetPath, err := cmd.Flags().GetString("input")
	if err != nil {
		commandHandler.logger.Error("invalid input flag ", err)
		return
	}

	state, err := readFilterState(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ds, err := commandHandler.loader.Load(context.Background(), datasetPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	view := commandHandler.filters.Apply(ds, state)
	metrics := commandHandler.metrics.Compute(view)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(metrics); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// InitMetricsCommands registers metrics-related commands
func InitMetricsCommands(rootCmd *cobra.Command) error {
	handler, err := NewMetricsCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create metrics command handler %w", err)
	}

	var metricsCmd = &cobra.Command{
		Use:   "metrics",
		Short: "Compute lending metrics for a filtered dataset",
		Run:   handler.MetricsCmd,
	}
	addFilterFlags(metricsCmd)
	rootCmd.AddCommand(metricsCmd)

	return nil
}
