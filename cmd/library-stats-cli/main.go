// Package main is the entry point for the library-stats-cli application.
// It initializes the root command and registers the metrics, chart and export
// sub-commands for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Garg-Lavina/library-stats/cmd/library-stats-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "library-stats-cli",
		Short: "Library lending analytics CLI tool",
		Long: `library-stats-cli analyzes a library lending CSV from the command line.
It computes summary metrics, renders the dashboard charts as PNG files, and
exports the filtered rows to a spreadsheet. Every command accepts the same
date and categorical filter flags the dashboard sidebar offers.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitMetricsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize metrics commands: %w", err)
	}

	if err := commands.InitChartsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize charts commands: %w", err)
	}

	if err := commands.InitExportCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize export commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
