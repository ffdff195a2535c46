package v1

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

const sessionCookie = "library_stats_session"

// DashboardHandler defines the interface for handling dashboard requests
type DashboardHandler interface {
	Page(ctx *gin.Context)
	Summary(ctx *gin.Context)
	Records(ctx *gin.Context)
	Chart(ctx *gin.Context)
	Export(ctx *gin.Context)
}

// dashboardHandler struct holds the services
type dashboardHandler struct {
	loader       lending.DatasetLoader
	filters      lending.FilterService
	metrics      lending.MetricsService
	charts       lending.ChartService
	exports      lending.ExportService
	datasetPath  string
	previewLimit int
	page         *template.Template
	logger       logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(
	loader lending.DatasetLoader,
	filters lending.FilterService,
	metrics lending.MetricsService,
	charts lending.ChartService,
	exports lending.ExportService,
	datasetPath string,
	previewLimit int,
	logger logger.Logger,
) (DashboardHandler, error) {
	page, err := template.New("dashboard").Parse(dashboardPage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	return &dashboardHandler{
		loader:       loader,
		filters:      filters,
		metrics:      metrics,
		charts:       charts,
		exports:      exports,
		datasetPath:  datasetPath,
		previewLimit: previewLimit,
		page:         page,
		logger:       logger,
	}, nil
}

// Page serves the dashboard shell. Each browser gets a session cookie so log
// lines can be correlated; filter state itself always rides in query
// parameters, never in server state.
func (handler *dashboardHandler) Page(ctx *gin.Context) {
	if _, err := ctx.Cookie(sessionCookie); err != nil {
		sessionID := uuid.New().String()
		ctx.SetCookie(sessionCookie, sessionID, 0, "/", "", false, true)
		handler.logger.Info("new dashboard session ", sessionID)
	}

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := handler.page.Execute(ctx.Writer, gin.H{"BasePath": BasePath}); err != nil {
		handler.logger.Error("failed to render dashboard page: ", err)
	}
}

// Summary returns the filter options, metrics and available charts for the
// filter state carried in the query parameters.
func (handler *dashboardHandler) Summary(ctx *gin.Context) {
	ds, view, ok := handler.filteredView(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, SummaryResponse{
		Options: handler.filters.Options(ds),
		Metrics: handler.metrics.Compute(view),
		Charts:  handler.charts.Available(view),
		Empty:   view.Empty(),
	})
}

// Records returns the table preview of the filtered view.
func (handler *dashboardHandler) Records(ctx *gin.Context) {
	_, view, ok := handler.filteredView(ctx)
	if !ok {
		return
	}

	limit := handler.previewLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid limit: %s", raw)})
			return
		}
		limit = parsed
	}

	rows := make([][]string, 0, limit)
	for i := range view.Records {
		if limit > 0 && len(rows) >= limit {
			break
		}
		row := make([]string, len(view.Columns))
		for j, column := range view.Columns {
			row[j] = view.Records[i].Field(column)
		}
		rows = append(rows, row)
	}

	ctx.JSON(http.StatusOK, RecordsResponse{
		Columns: view.Columns,
		Rows:    rows,
		Total:   len(view.Records),
	})
}

// Chart streams one chart image for the current filter state.
func (handler *dashboardHandler) Chart(ctx *gin.Context) {
	_, view, ok := handler.filteredView(ctx)
	if !ok {
		return
	}

	kind := lending.ChartKind(ctx.Param("kind"))

	data, err := handler.charts.Render(ctx, view, kind)
	if err != nil {
		if errors.Is(err, lending.ErrEmptyView) || errors.Is(err, lending.ErrChartUnavailable) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		handler.logger.Error("chart rendering failed for ", kind, ": ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error rendering chart: %v", err)})
		return
	}

	ctx.Data(http.StatusOK, "image/png", data)
}

// Export streams the filtered view as a spreadsheet download.
func (handler *dashboardHandler) Export(ctx *gin.Context) {
	_, view, ok := handler.filteredView(ctx)
	if !ok {
		return
	}

	result, err := handler.exports.Export(ctx, view)
	if err != nil {
		if errors.Is(err, lending.ErrEmptyView) {
			ctx.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
			return
		}
		handler.logger.Error("export failed: ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error exporting view: %v", err)})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	ctx.Data(http.StatusOK, result.ContentType, result.Data)
}

// filteredView runs the load-and-filter half of the pipeline for a request.
// It writes the error response itself and reports success via ok.
func (handler *dashboardHandler) filteredView(ctx *gin.Context) (*lending.Dataset, *lending.View, bool) {
	ds, err := handler.loader.Load(ctx, handler.datasetPath)
	if err != nil {
		handler.logger.Error("dataset load failed for ", handler.datasetPath, ": ", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Message: fmt.Sprintf("error loading dataset: %v", err)})
		return nil, nil, false
	}

	state, err := parseFilterState(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return nil, nil, false
	}

	return ds, handler.filters.Apply(ds, state), true
}

// parseFilterState reads the date interval and categorical selections out of
// the query string. Absent parameters leave the corresponding filter off.
func parseFilterState(ctx *gin.Context) (*lending.FilterState, error) {
	state := lending.NewFilterState()

	if raw := ctx.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid from date %q: expected YYYY-MM-DD", raw)
		}
		state.From = &parsed
	}

	if raw := ctx.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid to date %q: expected YYYY-MM-DD", raw)
		}
		state.To = &parsed
	}

	for _, categorical := range lending.CategoricalColumns() {
		if values, ok := ctx.GetQueryArray(categorical.Column); ok {
			state.Select(categorical.Column, values)
		}
	}

	return state, nil
}
