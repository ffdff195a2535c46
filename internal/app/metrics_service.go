package app

import (
	"fmt"
	"strings"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// metricsService implements the MetricsService interface.
type metricsService struct {
	logger logger.Logger
}

// NewMetricsService creates a new instance of MetricsService
func NewMetricsService(logger logger.Logger) (lending.MetricsService, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &metricsService{logger: logger}, nil
}

// Compute derives the four summary metrics from a filtered view. All four
// are plain aggregates recomputed on every call.
func (s *metricsService) Compute(view *lending.View) lending.Metrics {
	metrics := lending.Metrics{TotalIssued: len(view.Records)}

	hasBorrowerID := view.HasColumn(lending.ColumnBorrowerID)
	hasReturnDate := view.HasColumn(lending.ColumnReturnDate)
	hasOverdue := view.HasColumn(lending.ColumnOverdueStatus)

	borrowers := make(map[string]bool)
	for i := range view.Records {
		record := &view.Records[i]

		if hasBorrowerID {
			// Blank ids do not count as a distinct borrower.
			if id := record.Field(lending.ColumnBorrowerID); id != "" {
				borrowers[id] = true
			}
		}

		if hasReturnDate && record.ReturnDate == nil {
			metrics.NotReturned++
		}

		if hasOverdue {
			status := record.Field(lending.ColumnOverdueStatus)
			if strings.Contains(status, "Late") || strings.Contains(status, "Overdue") {
				metrics.LateReturns++
			}
		}
	}

	metrics.UniqueBorrowers = len(borrowers)
	return metrics
}
