package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// exportService implements the ExportService interface. Serialized workbooks
// are memoized per view fingerprint so repeated downloads of the same view
// cost a single serialization.
type exportService struct {
	writer lending.SpreadsheetWriter
	logger logger.Logger

	mu    sync.RWMutex
	cache map[string][]byte
}

// NewExportService creates a new instance of ExportService
func NewExportService(writer lending.SpreadsheetWriter, logger logger.Logger) (lending.ExportService, error) {
	if writer == nil {
		return nil, fmt.Errorf("writer must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &exportService{
		writer: writer,
		logger: logger,
		cache:  make(map[string][]byte),
	}, nil
}

// Export returns the xlsx blob for the view under the fixed download
// filename and MIME type. Exporting an empty view returns ErrEmptyView.
func (s *exportService) Export(ctx context.Context, view *lending.View) (*lending.ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Empty() {
		return nil, lending.ErrEmptyView
	}

	key := cacheKey(view)

	s.mu.RLock()
	data, ok := s.cache[key]
	s.mu.RUnlock()

	if !ok {
		var err error
		data, err = s.writer.Write(view)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize view: %w", err)
		}

		s.mu.Lock()
		s.cache[key] = data
		s.mu.Unlock()

		s.logger.Info("export serialized with ", len(view.Records), " rows for fingerprint ", view.Fingerprint)
	}

	return &lending.ExportResult{
		FileName:    lending.ExportFileName,
		ContentType: lending.ExportContentType,
		Data:        data,
	}, nil
}

func cacheKey(view *lending.View) string {
	return fmt.Sprintf("%s|%s|%d", view.DatasetPath, view.Fingerprint, len(view.Records))
}
