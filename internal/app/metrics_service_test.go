//go:build unit
// +build unit

package app

import (
	"testing"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewOf(ds *lending.Dataset) *lending.View {
	return &lending.View{DatasetPath: ds.Path, Columns: ds.Columns, Records: ds.Records}
}

func TestMetricsService_Compute(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	view := viewOf(sampleDataset(t))
	metrics := service.Compute(view)

	assert.Equal(t, 3, metrics.TotalIssued)
	assert.Equal(t, 2, metrics.UniqueBorrowers)
	assert.Equal(t, 1, metrics.NotReturned)
	assert.Equal(t, 2, metrics.LateReturns)
}

func TestMetricsService_Compute_ConsistentWithView(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	view := viewOf(sampleDataset(t))
	metrics := service.Compute(view)

	assert.LessOrEqual(t, metrics.UniqueBorrowers, metrics.TotalIssued)
	assert.LessOrEqual(t, metrics.NotReturned, metrics.TotalIssued)
}

func TestMetricsService_Compute_NotReturnedCountsNilReturnDatesOnly(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ds := testutil.NewDataset(t,
		testutil.RecordSpec{BorrowerID: "B001", Title: "Dune", Issued: "2024-01-05"},
		testutil.RecordSpec{BorrowerID: "B002", Title: "Dune", Issued: "2024-01-06", Returned: "2024-01-10"},
	)

	metrics := service.Compute(viewOf(ds))

	assert.Equal(t, 1, metrics.NotReturned)
}

func TestMetricsService_Compute_LateReturnSubstringMatch(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ds := testutil.NewDataset(t,
		testutil.RecordSpec{BorrowerID: "B001", Title: "A", Issued: "2024-01-01", Overdue: "Returned Late"},
		testutil.RecordSpec{BorrowerID: "B002", Title: "B", Issued: "2024-01-02", Overdue: "Overdue by 3 days"},
		testutil.RecordSpec{BorrowerID: "B003", Title: "C", Issued: "2024-01-03", Overdue: "late"},
		testutil.RecordSpec{BorrowerID: "B004", Title: "D", Issued: "2024-01-04"},
	)

	metrics := service.Compute(viewOf(ds))

	// Case-sensitive substring; lowercase "late" and blank cells never match.
	assert.Equal(t, 2, metrics.LateReturns)
}

func TestMetricsService_Compute_BlankBorrowerIDNotCounted(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ds := testutil.NewDataset(t,
		testutil.RecordSpec{BorrowerID: "B001", Title: "A", Issued: "2024-01-01"},
		testutil.RecordSpec{Title: "B", Issued: "2024-01-02"},
	)

	metrics := service.Compute(viewOf(ds))

	assert.Equal(t, 2, metrics.TotalIssued)
	assert.Equal(t, 1, metrics.UniqueBorrowers)
}

func TestMetricsService_Compute_EmptyView_Zeros(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	view := &lending.View{Columns: []string{lending.ColumnBorrowerID, lending.ColumnReturnDate}}
	metrics := service.Compute(view)

	assert.Equal(t, lending.Metrics{}, metrics)
}

func TestMetricsService_Compute_MissingColumnsOmitted(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	view := &lending.View{
		Columns: []string{lending.ColumnBookTitle},
		Records: []lending.Record{
			{Fields: map[string]string{lending.ColumnBookTitle: "Dune"}},
		},
	}

	metrics := service.Compute(view)

	assert.Equal(t, 1, metrics.TotalIssued)
	assert.Equal(t, 0, metrics.UniqueBorrowers)
	assert.Equal(t, 0, metrics.NotReturned)
	assert.Equal(t, 0, metrics.LateReturns)
}

func TestMetricsService_Compute_Idempotent(t *testing.T) {
	service, err := NewMetricsService(testutil.SetupTestLogger(t))
	require.NoError(t, err)

	view := viewOf(sampleDataset(t))

	assert.Equal(t, service.Compute(view), service.Compute(view))
}
