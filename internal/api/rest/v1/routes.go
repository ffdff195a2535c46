package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	loader lending.DatasetLoader,
	filterService lending.FilterService,
	metricsService lending.MetricsService,
	chartService lending.ChartService,
	exportService lending.ExportService,
	datasetPath string,
	previewLimit int,
	logger logger.Logger) error {

	dashboardHandler, err := NewDashboardHandler(loader, filterService, metricsService, chartService, exportService, datasetPath, previewLimit, logger)
	if err != nil {
		return err
	}

	r.GET("/", dashboardHandler.Page)

	v1 := r.Group(BasePath) // lookup in version file

	// Dashboard Routes
	v1.GET("/summary", dashboardHandler.Summary)
	v1.GET("/records", dashboardHandler.Records)
	v1.GET("/charts/:kind", dashboardHandler.Chart)
	v1.GET("/export", dashboardHandler.Export)

	return nil
}
