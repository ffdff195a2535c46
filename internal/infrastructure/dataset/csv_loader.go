package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// Date layouts accepted for issue_date, due_date and return_date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"01/02/2006",
}

var dateColumns = []string{
	lending.ColumnIssueDate,
	lending.ColumnDueDate,
	lending.ColumnReturnDate,
}

// csvLoader implements the DatasetLoader interface for CSV files with a
// header row. Loaded datasets are cached per cleaned path.
type csvLoader struct {
	mu     sync.Mutex
	cache  map[string]*lending.Dataset
	logger logger.Logger
}

// NewCSVLoader creates a new memoizing DatasetLoader for CSV input.
func NewCSVLoader(logger logger.Logger) (lending.DatasetLoader, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &csvLoader{
		cache:  make(map[string]*lending.Dataset),
		logger: logger,
	}, nil
}

// Load reads the CSV file at path into a Dataset, parsing date and numeric
// columns when present. Repeated loads of the same path return the cached
// Dataset.
func (l *csvLoader) Load(ctx context.Context, path string) (*lending.Dataset, error) {
	cleaned := filepath.Clean(path)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ds, ok := l.cache[cleaned]; ok {
		return ds, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ds, err := l.read(cleaned)
	if err != nil {
		return nil, &lending.LoadError{Path: cleaned, Err: err}
	}

	l.cache[cleaned] = ds
	l.logger.Info("lending dataset loaded from ", cleaned, " with ", len(ds.Records), " rows and ", len(ds.Columns), " columns")
	return ds, nil
}

func (l *csvLoader) read(path string) (*lending.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	columns := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		columns[i] = strings.TrimSpace(name)
	}

	ds := &lending.Dataset{
		Path:    path,
		Columns: columns,
		Records: make([]lending.Record, 0, len(rows)-1),
	}

	for _, row := range rows[1:] {
		record := lending.Record{Fields: make(map[string]string, len(columns))}
		for i, column := range columns {
			record.Fields[column] = strings.TrimSpace(row[i])
		}

		for _, column := range dateColumns {
			raw := record.Fields[column]
			if raw == "" {
				continue
			}
			parsed, err := parseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid %s value %q: %w", column, raw, err)
			}
			switch column {
			case lending.ColumnIssueDate:
				record.IssueDate = parsed
			case lending.ColumnDueDate:
				record.DueDate = parsed
			case lending.ColumnReturnDate:
				record.ReturnDate = parsed
			}
		}

		if raw := record.Fields[lending.ColumnDaysOnLoan]; raw != "" {
			if days, err := strconv.ParseFloat(raw, 64); err == nil {
				record.DaysOnLoan = &days
			}
		}

		ds.Records = append(ds.Records, record)
	}

	return ds, nil
}

func parseDate(raw string) (*time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date format")
}
