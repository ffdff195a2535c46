//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/testutil"
)

type handlerFixture struct {
	loader  *MockDatasetLoader
	filters *MockFilterService
	metrics *MockMetricsService
	charts  *MockChartService
	exports *MockExportService
	router  *gin.Engine
}

func setupHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		loader:  new(MockDatasetLoader),
		filters: new(MockFilterService),
		metrics: new(MockMetricsService),
		charts:  new(MockChartService),
		exports: new(MockExportService),
		router:  gin.New(),
	}

	err := SetupRoutes(f.router, f.loader, f.filters, f.metrics, f.charts, f.exports, "testdata/lending.csv", 25, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return f
}

func (f *handlerFixture) serve(method, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func sampleView(records ...lending.Record) *lending.View {
	return &lending.View{
		DatasetPath: "testdata/lending.csv",
		Columns:     []string{lending.ColumnBorrowerID, lending.ColumnBookTitle},
		Records:     records,
	}
}

// TestSummary_ReturnsOptionsMetricsAndCharts verifies the summary payload
func TestSummary_ReturnsOptionsMetricsAndCharts(t *testing.T) {
	f := setupHandlerFixture(t)

	ds := &lending.Dataset{Path: "testdata/lending.csv"}
	view := sampleView(lending.Record{Fields: map[string]string{lending.ColumnBorrowerID: "B1", lending.ColumnBookTitle: "Dune"}})

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(ds, nil)
	f.filters.On("Apply", ds, mock.Anything).Return(view)
	f.filters.On("Options", ds).Return(&lending.FilterOptions{Categories: []lending.CategoryOptions{}})
	f.metrics.On("Compute", view).Return(lending.Metrics{TotalIssued: 1, UniqueBorrowers: 1})
	f.charts.On("Available", view).Return([]lending.ChartKind{lending.ChartMonthlyIssues})

	w := f.serve(http.MethodGet, BasePath+"/summary")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Metrics.TotalIssued)
	assert.Equal(t, []lending.ChartKind{lending.ChartMonthlyIssues}, resp.Charts)
	assert.False(t, resp.Empty)
}

// TestSummary_ForwardsFilterStateFromQuery verifies query parameters reach the filter service
func TestSummary_ForwardsFilterStateFromQuery(t *testing.T) {
	f := setupHandlerFixture(t)

	ds := &lending.Dataset{Path: "testdata/lending.csv"}
	view := sampleView()

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(ds, nil)
	f.filters.On("Apply", ds, mock.MatchedBy(func(state *lending.FilterState) bool {
		if state.From == nil || !state.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
			return false
		}
		values := state.Selections[lending.ColumnGenre]
		return len(values) == 2 && values[0] == "Fantasy" && values[1] == "Science"
	})).Return(view)
	f.filters.On("Options", ds).Return(&lending.FilterOptions{})
	f.metrics.On("Compute", view).Return(lending.Metrics{})
	f.charts.On("Available", view).Return(nil)

	w := f.serve(http.MethodGet, BasePath+"/summary?from=2024-01-01&genre=Fantasy&genre=Science")

	assert.Equal(t, http.StatusOK, w.Code)
	f.filters.AssertExpectations(t)
}

// TestSummary_InvalidDateReturnsBadRequest verifies malformed dates are rejected
func TestSummary_InvalidDateReturnsBadRequest(t *testing.T) {
	f := setupHandlerFixture(t)

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)

	w := f.serve(http.MethodGet, BasePath+"/summary?from=01-02-2024")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "invalid from date")
}

// TestSummary_LoadFailureReturnsInternalError verifies loader failures surface as 500s
func TestSummary_LoadFailureReturnsInternalError(t *testing.T) {
	f := setupHandlerFixture(t)

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").
		Return(nil, &lending.LoadError{Path: "testdata/lending.csv", Err: assert.AnError})

	w := f.serve(http.MethodGet, BasePath+"/summary")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// TestRecords_AppliesPreviewLimit verifies the table preview truncates to the limit
func TestRecords_AppliesPreviewLimit(t *testing.T) {
	f := setupHandlerFixture(t)

	records := make([]lending.Record, 4)
	for i := range records {
		records[i] = lending.Record{Fields: map[string]string{
			lending.ColumnBorrowerID: "B1",
			lending.ColumnBookTitle:  "Dune",
		}}
	}
	view := sampleView(records...)

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(view)

	w := f.serve(http.MethodGet, BasePath+"/records?limit=2")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp RecordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, view.Columns, resp.Columns)
	assert.Len(t, resp.Rows, 2)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, []string{"B1", "Dune"}, resp.Rows[0])
}

// TestRecords_InvalidLimitReturnsBadRequest verifies limit parsing
func TestRecords_InvalidLimitReturnsBadRequest(t *testing.T) {
	f := setupHandlerFixture(t)

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(sampleView())

	w := f.serve(http.MethodGet, BasePath+"/records?limit=lots")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestChart_ReturnsPNG verifies a rendered chart is served with the image content type
func TestChart_ReturnsPNG(t *testing.T) {
	f := setupHandlerFixture(t)

	view := sampleView(lending.Record{Fields: map[string]string{}})
	png := []byte{0x89, 'P', 'N', 'G'}

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(view)
	f.charts.On("Render", mock.Anything, view, lending.ChartMonthlyIssues).Return(png, nil)

	w := f.serve(http.MethodGet, BasePath+"/charts/monthly-issues")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, png, w.Body.Bytes())
}

// TestChart_UnavailableReturnsNotFound verifies missing charts yield a 404
func TestChart_UnavailableReturnsNotFound(t *testing.T) {
	f := setupHandlerFixture(t)

	view := sampleView()

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(view)
	f.charts.On("Render", mock.Anything, view, lending.ChartKind("loan-durations")).
		Return(nil, lending.ErrChartUnavailable)

	w := f.serve(http.MethodGet, BasePath+"/charts/loan-durations")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestExport_StreamsSpreadsheetDownload verifies the attachment headers and payload
func TestExport_StreamsSpreadsheetDownload(t *testing.T) {
	f := setupHandlerFixture(t)

	view := sampleView(lending.Record{Fields: map[string]string{}})
	result := &lending.ExportResult{
		FileName:    lending.ExportFileName,
		ContentType: lending.ExportContentType,
		Data:        []byte("xlsx-bytes"),
	}

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(view)
	f.exports.On("Export", mock.Anything, view).Return(result, nil)

	w := f.serve(http.MethodGet, BasePath+"/export")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lending.ExportContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), lending.ExportFileName)
	assert.Equal(t, result.Data, w.Body.Bytes())
}

// TestExport_EmptyViewReturnsConflict verifies exporting nothing is refused
func TestExport_EmptyViewReturnsConflict(t *testing.T) {
	f := setupHandlerFixture(t)

	view := sampleView()

	f.loader.On("Load", mock.Anything, "testdata/lending.csv").Return(&lending.Dataset{}, nil)
	f.filters.On("Apply", mock.Anything, mock.Anything).Return(view)
	f.exports.On("Export", mock.Anything, view).Return(nil, lending.ErrEmptyView)

	w := f.serve(http.MethodGet, BasePath+"/export")

	assert.Equal(t, http.StatusConflict, w.Code)
}

// TestPage_ServesDashboardShell verifies the root page renders and sets a session cookie
func TestPage_ServesDashboardShell(t *testing.T) {
	f := setupHandlerFixture(t)

	w := f.serve(http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Library Lending Dashboard")

	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == sessionCookie {
			found = true
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, found, "session cookie should be set")
}

// TestPage_FilterControlsTriggerRefresh verifies every sidebar control re-runs
// the pipeline on change and that multi-selects start with all values selected
func TestPage_FilterControlsTriggerRefresh(t *testing.T) {
	f := setupHandlerFixture(t)

	w := f.serve(http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `document.getElementById("from").addEventListener("change", refresh)`)
	assert.Contains(t, body, `document.getElementById("to").addEventListener("change", refresh)`)
	assert.Contains(t, body, `select.addEventListener("change", refresh)`)
	assert.Contains(t, body, "opt.selected = true")
}
