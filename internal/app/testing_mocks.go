//go:build unit
// +build unit

package app

import (
	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/stretchr/testify/mock"
)

// MockChartRenderer is a mock implementation of ChartRenderer
type MockChartRenderer struct {
	mock.Mock
}

func (m *MockChartRenderer) TimeSeries(points []lending.MonthlyCount, title, xLabel, yLabel string) ([]byte, error) {
	args := m.Called(points, title, xLabel, yLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChartRenderer) HorizontalBars(bars []lending.CategoryValue, title, xLabel, yLabel string) ([]byte, error) {
	args := m.Called(bars, title, xLabel, yLabel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockChartRenderer) Pie(slices []lending.CategoryValue, title string) ([]byte, error) {
	args := m.Called(slices, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockSpreadsheetWriter is a mock implementation of SpreadsheetWriter
type MockSpreadsheetWriter struct {
	mock.Mock
}

func (m *MockSpreadsheetWriter) Write(view *lending.View) ([]byte, error) {
	args := m.Called(view)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
