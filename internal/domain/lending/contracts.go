package lending

import "context"

// DatasetLoader reads a delimited lending file into an immutable Dataset.
type DatasetLoader interface {
	// Load reads the file at path, parsing date columns when present.
	// Results are memoized per path; repeated loads of the same path return
	// the same Dataset. A missing or unparsable file yields a *LoadError.
	Load(ctx context.Context, path string) (*Dataset, error)
}

// FilterService derives filtered views and describes the available controls.
type FilterService interface {
	// Options returns the observed issue-date bounds and the distinct values
	// of each categorical column present in the dataset.
	Options(dataset *Dataset) *FilterOptions

	// Apply returns the view of rows matching the filter state. It is a pure
	// function of (dataset, state) and never mutates the dataset.
	Apply(dataset *Dataset, state *FilterState) *View
}

// MetricsService computes the dashboard's summary metrics.
type MetricsService interface {
	// Compute derives the four scalar summaries from a filtered view.
	Compute(view *View) Metrics
}

// ChartService renders the dashboard charts from a filtered view.
type ChartService interface {
	// Available lists the chart kinds renderable for the view, in display
	// order. A chart is unavailable when its required columns are missing
	// or the view is empty.
	Available(view *View) []ChartKind

	// Render produces the PNG image for one chart kind. It returns
	// ErrEmptyView for an empty view and ErrChartUnavailable when the
	// required columns are absent.
	Render(ctx context.Context, view *View, kind ChartKind) ([]byte, error)
}

// ExportService serializes a filtered view to a downloadable spreadsheet.
type ExportService interface {
	// Export returns the xlsx blob for the view, memoized per view
	// fingerprint. Exporting an empty view returns ErrEmptyView.
	Export(ctx context.Context, view *View) (*ExportResult, error)
}

// ChartRenderer turns grouped, aggregated chart data into PNG images. Each
// render is a pure function of its inputs.
type ChartRenderer interface {
	// TimeSeries renders a chronological line-and-marker series.
	TimeSeries(points []MonthlyCount, title, xLabel, yLabel string) ([]byte, error)

	// HorizontalBars renders labeled horizontal bars in the given order,
	// first entry on top.
	HorizontalBars(bars []CategoryValue, title, xLabel, yLabel string) ([]byte, error)

	// Pie renders a pie chart with percentage labels per slice.
	Pie(slices []CategoryValue, title string) ([]byte, error)
}

// SpreadsheetWriter serializes a view into spreadsheet bytes: one sheet, a
// header row, one row per record, no index column.
type SpreadsheetWriter interface {
	Write(view *View) ([]byte, error)
}
