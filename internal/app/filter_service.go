package app

import (
	"fmt"
	"time"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// filterService implements the FilterService interface. Filtering is a pure
// function of (dataset, state); the dataset is never mutated.
type filterService struct {
	logger logger.Logger
}

// NewFilterService creates a new instance of FilterService
func NewFilterService(logger logger.Logger) (lending.FilterService, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &filterService{logger: logger}, nil
}

// Options returns the observed issue-date bounds and the distinct values of
// each categorical column present in the dataset, in encounter order.
func (s *filterService) Options(dataset *lending.Dataset) *lending.FilterOptions {
	options := &lending.FilterOptions{}

	if dataset.HasColumn(lending.ColumnIssueDate) {
		for i := range dataset.Records {
			issued := dataset.Records[i].IssueDate
			if issued == nil {
				continue
			}
			if options.DateMin == nil || issued.Before(*options.DateMin) {
				options.DateMin = issued
			}
			if options.DateMax == nil || issued.After(*options.DateMax) {
				options.DateMax = issued
			}
		}
	}

	for _, categorical := range lending.CategoricalColumns() {
		if !dataset.HasColumn(categorical.Column) {
			continue
		}

		seen := make(map[string]bool)
		var values []string
		for i := range dataset.Records {
			value := dataset.Records[i].Field(categorical.Column)
			if seen[value] {
				continue
			}
			seen[value] = true
			values = append(values, value)
		}

		options.Categories = append(options.Categories, lending.CategoryOptions{
			Column: categorical.Column,
			Label:  categorical.Label,
			Values: values,
		})
	}

	return options
}

// Apply returns the view of rows matching the filter state. A row is kept
// when its issue date falls inside the inclusive [From, To] interval and,
// for every categorical filter with a non-empty selection, its value is one
// of the selected ones. An empty selection matches all rows.
func (s *filterService) Apply(dataset *lending.Dataset, state *lending.FilterState) *lending.View {
	view := &lending.View{
		DatasetPath: dataset.Path,
		Columns:     dataset.Columns,
		Fingerprint: state.Fingerprint(),
	}

	dateFiltered := dataset.HasColumn(lending.ColumnIssueDate) && (state.From != nil || state.To != nil)

	for i := range dataset.Records {
		record := &dataset.Records[i]

		if dateFiltered && !issuedWithin(record, state.From, state.To) {
			continue
		}
		if !matchesSelections(record, dataset, state.Selections) {
			continue
		}

		view.Records = append(view.Records, *record)
	}

	return view
}

// issuedWithin compares calendar days, so a row issued exactly on a bound is
// retained.
func issuedWithin(record *lending.Record, from, to *time.Time) bool {
	if record.IssueDate == nil {
		return false
	}

	day := truncateToDay(*record.IssueDate)
	if from != nil && day.Before(truncateToDay(*from)) {
		return false
	}
	if to != nil && day.After(truncateToDay(*to)) {
		return false
	}
	return true
}

func matchesSelections(record *lending.Record, dataset *lending.Dataset, selections map[string][]string) bool {
	for _, categorical := range lending.CategoricalColumns() {
		selected := selections[categorical.Column]
		// Selecting nothing disables the filter instead of excluding
		// every row.
		if len(selected) == 0 || !dataset.HasColumn(categorical.Column) {
			continue
		}

		value := record.Field(categorical.Column)
		found := false
		for _, candidate := range selected {
			if candidate == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
