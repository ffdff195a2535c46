package lending

import "time"

// Column names recognized by the dashboard. Columns outside this list pass
// through untouched: they show up in the table preview and the export but are
// never filtered or charted.
const (
	ColumnBorrowerID       = "borrower_id"
	ColumnBookTitle        = "book_title"
	ColumnGenre            = "genre"
	ColumnBorrowerType     = "borrower_type"
	ColumnStudentBatch     = "student_batch"
	ColumnStudentMajor     = "student_major"
	ColumnBorrowerAgeGroup = "borrower_age_group"
	ColumnIssueDate        = "issue_date"
	ColumnDueDate          = "due_date"
	ColumnReturnDate       = "return_date"
	ColumnOverdueStatus    = "overdue_status"
	ColumnDaysOnLoan       = "days_on_loan"
)

// Record is a single book-loan event. Raw cell values are preserved by column
// name; date and numeric columns additionally carry parsed shadows. A nil
// ReturnDate means the book has not been returned yet.
type Record struct {
	Fields     map[string]string
	IssueDate  *time.Time
	DueDate    *time.Time
	ReturnDate *time.Time
	DaysOnLoan *float64
}

// Field returns the raw cell value for a column, or the empty string when the
// column is absent.
func (r *Record) Field(column string) string {
	return r.Fields[column]
}

// Dataset is the loaded lending table. It is immutable after load and may be
// shared read-only across concurrent sessions.
type Dataset struct {
	Path    string
	Columns []string
	Records []Record
}

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// View is the subset of a dataset's records matching a filter state. Views
// are derived, never mutated into the source dataset. Fingerprint identifies
// the view content for memoization.
type View struct {
	DatasetPath string
	Columns     []string
	Records     []Record
	Fingerprint string
}

// HasColumn reports whether the view carries the named column.
func (v *View) HasColumn(name string) bool {
	for _, c := range v.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Empty reports whether no records match the current filters.
func (v *View) Empty() bool {
	return len(v.Records) == 0
}

// Metrics are the four scalar summaries shown in the dashboard strip.
type Metrics struct {
	TotalIssued     int `json:"total_issued"`
	UniqueBorrowers int `json:"unique_borrowers"`
	NotReturned     int `json:"not_returned"`
	LateReturns     int `json:"late_returns"`
}

// ChartKind identifies one of the dashboard charts.
type ChartKind string

// Chart kinds in their fixed display order.
const (
	ChartMonthlyIssues     ChartKind = "monthly-issues"
	ChartTopTitles         ChartKind = "top-titles"
	ChartGenreDistribution ChartKind = "genre-distribution"
	ChartBorrowerTypes     ChartKind = "borrower-types"
	ChartLoanDurations     ChartKind = "loan-durations"
)

// AllChartKinds lists every chart kind in display order.
func AllChartKinds() []ChartKind {
	return []ChartKind{
		ChartMonthlyIssues,
		ChartTopTitles,
		ChartGenreDistribution,
		ChartBorrowerTypes,
		ChartLoanDurations,
	}
}

// MonthlyCount is one point of the monthly issue volume series.
type MonthlyCount struct {
	Month time.Time
	Count int
}

// CategoryValue is one labeled bar or pie slice.
type CategoryValue struct {
	Label string
	Value float64
}

// ExportResult is the serialized spreadsheet offered for download.
type ExportResult struct {
	FileName    string
	ContentType string
	Data        []byte
}

// Fixed export filename and MIME type.
const (
	ExportFileName    = "filtered_library_data.xlsx"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
