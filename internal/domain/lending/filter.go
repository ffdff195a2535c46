package lending

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
	"time"
)

// CategoricalColumn couples a filterable column with its sidebar label.
type CategoricalColumn struct {
	Column string
	Label  string
}

// CategoricalColumns lists the multi-select filter columns in sidebar order.
func CategoricalColumns() []CategoricalColumn {
	return []CategoricalColumn{
		{Column: ColumnGenre, Label: "Book Genres"},
		{Column: ColumnBorrowerType, Label: "Borrower Types"},
		{Column: ColumnStudentBatch, Label: "Student Batches"},
		{Column: ColumnStudentMajor, Label: "Student Majors"},
		{Column: ColumnBorrowerAgeGroup, Label: "Age Groups"},
	}
}

// FilterState captures the sidebar controls: an inclusive issue-date interval
// and, per categorical column, the set of selected values. An empty selection
// disables that column's filter rather than excluding every row.
type FilterState struct {
	From       *time.Time
	To         *time.Time
	Selections map[string][]string
}

// NewFilterState returns a state with no date bounds and no selections,
// which matches every row.
func NewFilterState() *FilterState {
	return &FilterState{Selections: make(map[string][]string)}
}

// Select records the chosen values for a categorical column.
func (s *FilterState) Select(column string, values []string) {
	if s.Selections == nil {
		s.Selections = make(map[string][]string)
	}
	s.Selections[column] = values
}

// Fingerprint returns a stable identifier of the filter state, used to key
// memoized derivations of the same view.
func (s *FilterState) Fingerprint() string {
	var b strings.Builder

	if s.From != nil {
		b.WriteString(s.From.Format("2006-01-02"))
	}
	b.WriteByte('|')
	if s.To != nil {
		b.WriteString(s.To.Format("2006-01-02"))
	}

	columns := make([]string, 0, len(s.Selections))
	for column, values := range s.Selections {
		if len(values) > 0 {
			columns = append(columns, column)
		}
	}
	sort.Strings(columns)

	for _, column := range columns {
		values := append([]string(nil), s.Selections[column]...)
		sort.Strings(values)
		b.WriteByte('|')
		b.WriteString(column)
		b.WriteByte('=')
		b.WriteString(strings.Join(values, ","))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// CategoryOptions are the observed distinct values of one categorical column,
// in encounter order.
type CategoryOptions struct {
	Column string   `json:"column"`
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// FilterOptions describe the controls the sidebar should offer for a dataset:
// the observed issue-date bounds and the distinct values of each present
// categorical column.
type FilterOptions struct {
	DateMin    *time.Time        `json:"date_min,omitempty"`
	DateMax    *time.Time        `json:"date_max,omitempty"`
	Categories []CategoryOptions `json:"categories"`
}
