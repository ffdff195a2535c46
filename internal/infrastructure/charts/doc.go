// Package charts renders grouped lending data into PNG images. Time series
// and bar charts are drawn with gonum/plot; pie charts with go-chart.
package charts
