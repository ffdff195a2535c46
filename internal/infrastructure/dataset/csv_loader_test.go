//go:build unit
// +build unit

package dataset

import (
	"context"
	"testing"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoader_Load_Success(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	path := testutil.WriteSampleCSV(t, testutil.SampleCSV)

	ds, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Len(t, ds.Records, 4)
	assert.True(t, ds.HasColumn(lending.ColumnGenre))
	assert.True(t, ds.HasColumn(lending.ColumnIssueDate))

	first := ds.Records[0]
	require.NotNil(t, first.IssueDate)
	assert.Equal(t, "2024-01-05", first.IssueDate.Format("2006-01-02"))
	require.NotNil(t, first.ReturnDate)
	require.NotNil(t, first.DaysOnLoan)
	assert.Equal(t, 10.0, *first.DaysOnLoan)

	second := ds.Records[1]
	assert.Nil(t, second.ReturnDate, "empty return_date cell must stay nil")
	assert.Nil(t, second.DaysOnLoan, "empty days_on_loan cell must stay nil")
}

func TestCSVLoader_Load_Memoized(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	path := testutil.WriteSampleCSV(t, testutil.SampleCSV)

	first, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	second, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated loads of one path must return the cached dataset")
}

func TestCSVLoader_Load_MissingFile_LoadError(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	_, err = loader.Load(context.Background(), "does-not-exist.csv")
	require.Error(t, err)

	var loadErr *lending.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCSVLoader_Load_RaggedRow_LoadError(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	path := testutil.WriteSampleCSV(t, "book_title,genre\nDune\n")

	_, err = loader.Load(context.Background(), path)

	var loadErr *lending.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCSVLoader_Load_BadDate_LoadError(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	path := testutil.WriteSampleCSV(t, "book_title,issue_date\nDune,not-a-date\n")

	_, err = loader.Load(context.Background(), path)

	var loadErr *lending.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestCSVLoader_Load_UnrecognizedColumnsPassThrough(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	loader, err := NewCSVLoader(log)
	require.NoError(t, err)

	path := testutil.WriteSampleCSV(t, "book_title,shelf_code\nDune,A-12\n")

	ds, err := loader.Load(context.Background(), path)
	require.NoError(t, err)

	assert.True(t, ds.HasColumn("shelf_code"))
	assert.Equal(t, "A-12", ds.Records[0].Field("shelf_code"))
}

func TestNewCSVLoader_NilLogger_Error(t *testing.T) {
	_, err := NewCSVLoader(nil)
	assert.Error(t, err)
}
