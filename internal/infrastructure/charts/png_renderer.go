package charts

import (
	"bytes"
	"fmt"
	"image/color"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/Garg-Lavina/library-stats/internal/domain/lending"
	"github.com/Garg-Lavina/library-stats/internal/pkg/logger"
)

// pngRenderer implements the ChartRenderer interface producing PNG bytes.
type pngRenderer struct {
	logger logger.Logger
}

// NewPNGRenderer creates a new ChartRenderer drawing PNG images.
func NewPNGRenderer(logger logger.Logger) (lending.ChartRenderer, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	return &pngRenderer{logger: logger}, nil
}

// TimeSeries renders a chronological line-and-marker series.
func (r *pngRenderer) TimeSeries(points []lending.MonthlyCount, title, xLabel, yLabel string) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Tick.Marker = plot.TimeTicks{Format: "Jan 2006"}
	p.Y.Min = 0

	xys := make(plotter.XYs, len(points))
	for i, point := range points {
		xys[i].X = float64(point.Month.Unix())
		xys[i].Y = float64(point.Count)
	}

	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, fmt.Errorf("failed to build line series: %w", err)
	}
	line.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	line.Width = vg.Points(2)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}

	p.Add(line, scatter, plotter.NewGrid())

	return r.encode(p, 8*vg.Inch, 4*vg.Inch)
}

// HorizontalBars renders labeled horizontal bars, first entry on top.
func (r *pngRenderer) HorizontalBars(bars []lending.CategoryValue, title, xLabel, yLabel string) ([]byte, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Min = 0

	// NominalY places the first label at the bottom, so reverse to keep the
	// caller's first entry on top.
	values := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	for i, bar := range bars {
		j := len(bars) - 1 - i
		values[j] = bar.Value
		labels[j] = bar.Label
	}

	barChart, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	barChart.Horizontal = true
	barChart.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	barChart.LineStyle.Width = vg.Length(0)

	p.Add(barChart)
	p.NominalY(labels...)

	return r.encode(p, 8*vg.Inch, 5*vg.Inch)
}

// Pie renders a pie chart with percentage labels per slice.
func (r *pngRenderer) Pie(slices []lending.CategoryValue, title string) ([]byte, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("no slices to plot")
	}

	var total float64
	for _, slice := range slices {
		total += slice.Value
	}
	if total <= 0 {
		return nil, fmt.Errorf("slice values must sum to a positive total")
	}

	values := make([]chart.Value, len(slices))
	for i, slice := range slices {
		values[i] = chart.Value{
			Value: slice.Value,
			Label: fmt.Sprintf("%s %.1f%%", slice.Label, slice.Value/total*100),
		}
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render pie chart: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *pngRenderer) encode(p *plot.Plot, width, height vg.Length) ([]byte, error) {
	writer, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create png writer: %w", err)
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
