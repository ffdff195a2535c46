package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/config"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// filterFlags maps each categorical column to its CLI flag name.
var filterFlags = map[string]string{
	lending.ColumnGenre:            "genre",
	lending.ColumnBorrowerType:     "borrower-type",
	lending.ColumnStudentBatch:     "batch",
	lending.ColumnStudentMajor:     "major",
	lending.ColumnBorrowerAgeGroup: "age-group",
}

// addFilterFlags registers the dataset path and filter flags shared by all commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "", "", "Path to the lending CSV file")
	cmd.Flags().StringP("from", "", "", "Keep rows issued on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringP("to", "", "", "Keep rows issued on or before this date (YYYY-MM-DD)")
	cmd.Flags().StringSliceP("genre", "", nil, "Book genres to keep")
	cmd.Flags().StringSliceP("borrower-type", "", nil, "Borrower types to keep")
	cmd.Flags().StringSliceP("batch", "", nil, "Student batches to keep")
	cmd.Flags().StringSliceP("major", "", nil, "Student majors to keep")
	cmd.Flags().StringSliceP("age-group", "", nil, "Borrower age groups to keep")
}

// readFilterState assembles a filter state from the command flags. Flags left
// unset leave the corresponding filter off.
func readFilterState(cmd *cobra.Command) (*lending.FilterState, error) {
	state := lending.NewFilterState()

	if raw, err := cmd.Flags().GetString("from"); err != nil {
		return nil, fmt.Errorf("invalid from flag: %w", err)
	} else if raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", raw)
		}
		state.From = &parsed
	}

	if raw, err := cmd.Flags().GetString("to"); err != nil {
		return nil, fmt.Errorf("invalid to flag: %w", err)
	} else if raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", raw)
		}
		state.To = &parsed
	}

	for column, flag := range filterFlags {
		values, err := cmd.Flags().GetStringSlice(flag)
		if err != nil {
			return nil, fmt.Errorf("invalid %s flag: %w", flag, err)
		}
		if len(values) > 0 {
			state.Select(column, values)
		}
	}

	return state, nil
}
