package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Garg-Lavina/library-stats/internal/app"
	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/dataset"
	"github.com/Garg-Lavina/library-stats/internal/infrastructure/spreadsheet"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// ExportCommandHandler encapsulates logic for exporting filtered lending data via CLI.
type ExportCommandHandler struct {
	loader  lending.DatasetLoader
	filters lending.FilterService
	exports lending.ExportService
	logger  logger.Logger
}

// NewExportCommandHandler initializes and returns an ExportCommandHandler instance with
// configured logger, loader, writer and services.
func NewExportCommandHandler() (*ExportCommandHandler, error) {
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

	writer, err := spreadsheet.NewXLSXWriter(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet writer: %w", err)
	}

	exportService, err := app.NewExportService(writer, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	return &ExportCommandHandler{
		loader:  loader,
		filters: filterService,
		exports: exportService,
		logger:  loggerInstance,
	}, nil
}

// ExportCmd serializes the filtered dataset to a spreadsheet in a selected directory
func (commandHandler *ExportCommandHandler) ExportCmd(cmd *cobra.Command, _ []string) {
	datasetPath, err := cmd.Flags().GetString("input")
	if err != nil {
		commandHandler.logger.Error("invalid input flag ", err)
		return
	}

	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		commandHandler.logger.Error("invalid output flag ", err)
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

	result, err := commandHandler.exports.Export(context.Background(), view)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if outputPath == "" {
		outputPath = result.FileName
	}

	if err := os.WriteFile(filepath.Clean(outputPath), result.Data, 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Filtered data saved to ", outputPath)
}

// InitExportCommands registers export-related commands
func InitExportCommands(rootCmd *cobra.Command) error {
	handler, err := NewExportCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create export command handler %w", err)
	}

	var exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Export the filtered dataset to a spreadsheet",
		Run:   handler.ExportCmd,
	}
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringP("output", "", "", "Path of the spreadsheet to write (default: the fixed download filename)")
	rootCmd.AddCommand(exportCmd)

	return nil
}
