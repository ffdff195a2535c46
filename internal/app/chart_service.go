package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// chartService implements the ChartService interface. It owns the grouping
// and aggregation of view data; pixel work is delegated to a ChartRenderer.
type chartService struct {
	renderer lending.ChartRenderer
	logger   logger.Logger
}

// NewChartService creates a new instance of ChartService
func NewChartService(renderer lending.ChartRenderer, logger logger.Logger) (lending.ChartService, error) {
	if renderer == nil {
		return nil, fmt.Errorf("renderer must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &chartService{renderer: renderer, logger: logger}, nil
}

// Available lists the chart kinds renderable for the view in display order.
func (s *chartService) Available(view *lending.View) []lending.ChartKind {
	if view.Empty() {
		return nil
	}

	var kinds []lending.ChartKind
	for _, kind := range lending.AllChartKinds() {
		if s.supported(view, kind) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Render produces the PNG image for one chart kind.
func (s *chartService) Render(ctx context.Context, view *lending.View, kind lending.ChartKind) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Empty() {
		return nil, lending.ErrEmptyView
	}
	if !s.supported(view, kind) {
		return nil, lending.ErrChartUnavailable
	}

	switch kind {
	case lending.ChartMonthlyIssues:
		return s.renderer.TimeSeries(monthlyIssueCounts(view),
			"Books Issued Each Month", "Date", "Number of Books")
	case lending.ChartTopTitles:
		return s.renderer.HorizontalBars(topTitleCounts(view, 10),
			"Top 10 Most Borrowed Books", "Times Borrowed", "Book Title")
	case lending.ChartGenreDistribution:
		return s.renderer.Pie(sortByCountDesc(categoryCounts(view, lending.ColumnGenre)),
			"Book Genre Distribution")
	case lending.ChartBorrowerTypes:
		return s.renderer.HorizontalBars(sortByCountDesc(categoryCounts(view, lending.ColumnBorrowerType)),
			"Books Issued by Borrower Type", "Number of Books", "Borrower Type")
	case lending.ChartLoanDurations:
		return s.renderer.HorizontalBars(averageLoanDurations(view),
			"Average Loan Duration by Genre", "Average Days", "Genre")
	default:
		return nil, lending.ErrChartUnavailable
	}
}

func (s *chartService) supported(view *lending.View, kind lending.ChartKind) bool {
	switch kind {
	case lending.ChartMonthlyIssues:
		return view.HasColumn(lending.ColumnIssueDate)
	case lending.ChartTopTitles:
		return view.HasColumn(lending.ColumnBookTitle)
	case lending.ChartGenreDistribution:
		return view.HasColumn(lending.ColumnGenre)
	case lending.ChartBorrowerTypes:
		return view.HasColumn(lending.ColumnBorrowerType)
	case lending.ChartLoanDurations:
		return view.HasColumn(lending.ColumnDaysOnLoan) && view.HasColumn(lending.ColumnGenre)
	default:
		return false
	}
}

// monthlyIssueCounts buckets records by calendar month of issue_date,
// including zero-count months between the observed bounds, chronologically.
func monthlyIssueCounts(view *lending.View) []lending.MonthlyCount {
	counts := make(map[time.Time]int)
	var first, last time.Time

	for i := range view.Records {
		issued := view.Records[i].IssueDate
		if issued == nil {
			continue
		}
		month := time.Date(issued.Year(), issued.Month(), 1, 0, 0, 0, 0, time.UTC)
		counts[month]++

		if first.IsZero() || month.Before(first) {
			first = month
		}
		if last.IsZero() || month.After(last) {
			last = month
		}
	}

	if first.IsZero() {
		return nil
	}

	var series []lending.MonthlyCount
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		series = append(series, lending.MonthlyCount{Month: month, Count: counts[month]})
	}
	return series
}

// topTitleCounts returns the most borrowed titles, descending by count, ties
// in encounter order.
func topTitleCounts(view *lending.View, limit int) []lending.CategoryValue {
	counts := sortByCountDesc(categoryCounts(view, lending.ColumnBookTitle))

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// sortByCountDesc orders categories by descending count, ties staying in
// encounter order.
func sortByCountDesc(counts []lending.CategoryValue) []lending.CategoryValue {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Value > counts[j].Value
	})
	return counts
}

// categoryCounts tallies records per distinct value of a column, in
// encounter order.
func categoryCounts(view *lending.View, column string) []lending.CategoryValue {
	index := make(map[string]int)
	var counts []lending.CategoryValue

	for i := range view.Records {
		value := view.Records[i].Field(column)
		if pos, ok := index[value]; ok {
			counts[pos].Value++
			continue
		}
		index[value] = len(counts)
		counts = append(counts, lending.CategoryValue{Label: value, Value: 1})
	}
	return counts
}

// averageLoanDurations computes the mean days_on_loan per genre, descending.
// Records without a parsed duration are skipped.
func averageLoanDurations(view *lending.View) []lending.CategoryValue {
	type accumulator struct {
		sum   float64
		count int
	}

	index := make(map[string]int)
	var order []string
	var sums []accumulator

	for i := range view.Records {
		record := &view.Records[i]
		if record.DaysOnLoan == nil {
			continue
		}

		genre := record.Field(lending.ColumnGenre)
		pos, ok := index[genre]
		if !ok {
			pos = len(sums)
			index[genre] = pos
			order = append(order, genre)
			sums = append(sums, accumulator{})
		}
		sums[pos].sum += *record.DaysOnLoan
		sums[pos].count++
	}

	var averages []lending.CategoryValue
	for _, genre := range order {
		acc := sums[index[genre]]
		averages = append(averages, lending.CategoryValue{
			Label: genre,
			Value: acc.sum / float64(acc.count),
		})
	}

	sort.SliceStable(averages, func(i, j int) bool {
		return averages[i].Value > averages[j].Value
	})
	return averages
}
