package v1

import "github.com/Garg-Lavina/library-stats/internal/domain/lending"

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Message string `json:"message"`
}

// SummaryResponse describes the dashboard state for one filter combination:
// the sidebar controls to offer, the metrics strip, and the renderable charts.
type SummaryResponse struct {
	Options *lending.FilterOptions `json:"options"`
	Metrics lending.Metrics        `json:"metrics"`
	Charts  []lending.ChartKind    `json:"charts"`
	Empty   bool                   `json:"empty"`
}

// RecordsResponse is the table preview of the filtered view.
type RecordsResponse struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Total   int        `json:"total"`
}
