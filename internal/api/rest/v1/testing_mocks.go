//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
)

// MockDatasetLoader is a mock implementation of DatasetLoader
type MockDatasetLoader struct {
	mock.Mock
}

func (m *MockDatasetLoader) Load(ctx context.Context, path string) (*lending.Dataset, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lending.Dataset), args.Error(1)
}

// MockFilterService is a mock implementation of FilterService
type MockFilterService struct {
	mock.Mock
}

func (m *MockFilterService) Options(dataset *lending.Dataset) *lending.FilterOptions {
	args := m.Called(dataset)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*lending.FilterOptions)
}

func (m *MockFilterService) Apply(dataset *lending.Dataset, state *lending.FilterState) *lending.View {
	args := m.Called(dataset, state)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*lending.View)
}

// MockMetricsService is a mock implementation of MetricsService
type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) Compute(view *lending.View) lending.Metrics {
	args := m.Called(view)
	return args.Get(0).(lending.Metrics)
}

// MockChartService is a mock implementation of ChartService
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) Available(view *lending.View) []lending.ChartKind {
	args := m.Called(view)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]lending.ChartKind)
}

func (m *MockChartService) Render(ctx context.Context, view *lending.View, kind lending.ChartKind) ([]byte, error) {
	args := m.Called(ctx, view, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, view *lending.View) (*lending.ExportResult, error) {
	args := m.Called(ctx, view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lending.ExportResult), args.Error(1)
}
