package lending

import (
	"errors"
	"fmt"
)

// LoadError reports that the lending dataset could not be read or parsed.
// It is fatal for the session: the dashboard cannot start without data.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load lending dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrEmptyView is returned when charts or exports are requested for a view
// with zero rows. It is non-fatal; the caller suppresses the output.
var ErrEmptyView = errors.New("no records match the current filters")

// ErrChartUnavailable is returned when a chart's required columns are absent
// from the dataset.
var ErrChartUnavailable = errors.New("chart unavailable for this dataset")
