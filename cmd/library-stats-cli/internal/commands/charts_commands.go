package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Garg-Lavina/library-stats/internal/app"
	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/charts"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/dataset"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// ChartsCommandHandler encapsulates logic for rendering lending charts via CLI.
type ChartsCommandHandler struct {
	loader  lending.DatasetLoader
	filters lending.FilterService
	charts  lending.ChartService
	logger  logger.Logger
}

// NewChartsCommandHandler initializes and returns a ChartsCommandHandler instance with
// configured logger, loader, renderer and services.
func NewChartsCommandHandler() (*ChartsCommandHandler, error) {
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

	renderer, err := charts.NewPNGRenderer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart renderer: %w", err)
	}

	chartService, err := app.NewChartService(renderer, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart service: %w", err)
	}

	return &ChartsCommandHandler{
		loader:  loader,
		filters: filterService,
		charts:  chartService,
		logger:  loggerInstance,
	}, nil
}

// RenderChartsCmd renders the available charts for the filtered dataset into a directory
func (commandHandler *ChartsCommandHandler) RenderChartsCmd(cmd *cobra.Command, _ []string) {
	datasetPath, err := cmd.Flags().GetString("input")
	if err != nil {
		commandHandler.logger.Error("invalid input flag ", err)
		return
	}

	outputDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		commandHandler.logger.Error("invalid output-dir flag ", err)
		return
	}

	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		commandHandler.logger.Error("invalid kind flag ", err)
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

	kinds := commandHandler.charts.Available(view)
	if kind != "" {
		kinds = []lending.ChartKind{lending.ChartKind(kind)}
	}

	for _, k := range kinds {
		data, err := commandHandler.charts.Render(context.Background(), view, k)
		if err != nil {
			if errors.Is(err, lending.ErrChartUnavailable) || errors.Is(err, lending.ErrEmptyView) {
				commandHandler.logger.Warn("skipping chart ", k, ": ", err)
				continue
			}
			commandHandler.logger.Error(err)
			return
		}

		chartFilePath := filepath.Join(outputDir, fmt.Sprintf("%s.png", k))
		if err := os.WriteFile(chartFilePath, data, 0600); err != nil {
			commandHandler.logger.Error(err)
			return
		}
		commandHandler.logger.Info("Chart saved to ", chartFilePath)
	}
}

// InitChartsCommands registers chart-related commands
func InitChartsCommands(rootCmd *cobra.Command) error {
	handler, err := NewChartsCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create charts command handler %w", err)
	}

	var renderChartsCmd = &cobra.Command{
		Use:   "charts",
		Short: "Render lending charts as PNG files",
		Run:   handler.RenderChartsCmd,
	}
	addFilterFlags(renderChartsCmd)
	renderChartsCmd.Flags().StringP("output-dir", "", ".", "Directory to store the rendered charts")
	renderChartsCmd.Flags().StringP("kind", "", "", "Render only this chart kind (default: all available)")
	rootCmd.AddCommand(renderChartsCmd)

	return nil
}
