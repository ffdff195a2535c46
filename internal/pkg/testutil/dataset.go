package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/stretchr/testify/require"
)

// SampleCSV is a small lending dataset covering every recognized column.
const SampleCSV = `borrower_id,book_title,genre,borrower_type,issue_date,due_date,return_date,overdue_status,days_on_loan
B001,Dune,Fiction,Student,2024-01-05,2024-01-19,2024-01-15,On Time,10
B002,Dune,Fiction,Faculty,2024-01-20,2024-02-03,,Late Return,
B001,Hamlet,Drama,Student,2024-03-02,2024-03-16,2024-03-20,Overdue,18
B003,Cosmos,Science,Guest,2024-03-10,2024-03-24,2024-03-18,On Time,8
`

// WriteSampleCSV writes a lending CSV into a temporary directory and returns
// its path.
func WriteSampleCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "library_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// Date builds a UTC midnight timestamp for fixture records.
func Date(t *testing.T, value string) *time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

// RecordSpec describes one fixture row for NewDataset.
type RecordSpec struct {
	BorrowerID string
	Title      string
	Genre      string
	Borrower   string
	Issued     string
	Returned   string
	Overdue    string
	Days       float64
	HasDays    bool
}

// NewDataset builds an in-memory lending dataset from fixture rows.
func NewDataset(t *testing.T, specs ...RecordSpec) *lending.Dataset {
	t.Helper()

	ds := &lending.Dataset{
		Path: "fixture.csv",
		Columns: []string{
			lending.ColumnBorrowerID,
			lending.ColumnBookTitle,
			lending.ColumnGenre,
			lending.ColumnBorrowerType,
			lending.ColumnIssueDate,
			lending.ColumnReturnDate,
			lending.ColumnOverdueStatus,
			lending.ColumnDaysOnLoan,
		},
	}

	for _, spec := range specs {
		record := lending.Record{Fields: map[string]string{
			lending.ColumnBorrowerID:    spec.BorrowerID,
			lending.ColumnBookTitle:     spec.Title,
			lending.ColumnGenre:         spec.Genre,
			lending.ColumnBorrowerType:  spec.Borrower,
			lending.ColumnIssueDate:     spec.Issued,
			lending.ColumnReturnDate:    spec.Returned,
			lending.ColumnOverdueStatus: spec.Overdue,
		}}

		if spec.Issued != "" {
			record.IssueDate = Date(t, spec.Issued)
		}
		if spec.Returned != "" {
			record.ReturnDate = Date(t, spec.Returned)
		}
		if spec.HasDays {
			days := spec.Days
			record.DaysOnLoan = &days
		}

		ds.Records = append(ds.Records, record)
	}

	return ds
}
