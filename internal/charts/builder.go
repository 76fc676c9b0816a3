// Package charts builds render-ready chart specs plus a natural-language
// interpretation derived from simple descriptive statistics.
package charts

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
)

// Kind identifies one of the supported chart types
type Kind string

const (
	KindHistogram Kind = "histogram"
	KindBox       Kind = "box"
	KindScatter   Kind = "scatter"
	KindPie       Kind = "pie"
)

// histogramBins is fixed: every histogram is bucketed into 20 bins.
const histogramBins = 20

// ParseKind maps a form value onto a chart kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindHistogram, KindBox, KindScatter, KindPie:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownChart, s)
}

// Request selects the chart to build
type Request struct {
	X     string
	Y     string // optional; required for scatter
	Kind  Kind
	Color string
}

// Point is one scatter sample
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoxStats carries the five-number summary for a box plot
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Chart is a renderable chart spec: serialized to JSON and drawn client-side
type Chart struct {
	Kind           Kind      `json:"kind"`
	Title          string    `json:"title"`
	Color          string    `json:"color"`
	XLabel         string    `json:"x_label,omitempty"`
	YLabel         string    `json:"y_label,omitempty"`
	Labels         []string  `json:"labels,omitempty"`
	Values         []float64 `json:"values,omitempty"`
	Points         []Point   `json:"points,omitempty"`
	Box            *BoxStats `json:"box,omitempty"`
	Interpretation string    `json:"interpretation"`
}

// Builder produces charts from the session's dataset
type Builder struct{}

// NewBuilder creates a chart builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build produces the chart and interpretation for a request. Scatter with no
// Y column halts the render with core.ErrMissingY; degenerate inputs produce
// whatever the underlying statistics routines produce, with no extra errors.
func (b *Builder) Build(t *dataset.Table, req Request) (*Chart, error) {
	if t == nil {
		return nil, core.ErrNoDataset
	}

	switch req.Kind {
	case KindHistogram:
		return b.buildHistogram(t, req)
	case KindBox:
		return b.buildBox(t, req)
	case KindScatter:
		return b.buildScatter(t, req)
	case KindPie:
		return b.buildPie(t, req)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownChart, string(req.Kind))
	}
}

func (b *Builder) buildHistogram(t *dataset.Table, req Request) (*Chart, error) {
	values, err := t.NumericColumn(req.X)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: column %s has no numeric values", core.ErrInsufficientData, req.X)
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)

	counts := make([]float64, histogramBins)
	labels := make([]string, histogramBins)
	width := (max - min) / float64(histogramBins)
	if width == 0 {
		// Single-valued column: everything lands in the first bin.
		width = 1
	}
	for i := 0; i < histogramBins; i++ {
		lo := min + float64(i)*width
		labels[i] = fmt.Sprintf("%.4g-%.4g", lo, lo+width)
	}
	for _, v := range values {
		bin := int((v - min) / width)
		if bin >= histogramBins {
			bin = histogramBins - 1
		}
		counts[bin]++
	}

	modal := 0
	for i, c := range counts {
		if c > counts[modal] {
			modal = i
		}
	}

	interpretation := fmt.Sprintf(
		"This shows how **%s** is distributed across the sample. The most frequent values fall in the %s range; a dominant bar means that range is over-represented in the data.",
		req.X, labels[modal])

	return &Chart{
		Kind:           KindHistogram,
		Title:          fmt.Sprintf("Histogram of %s", req.X),
		Color:          req.Color,
		XLabel:         req.X,
		YLabel:         "Count",
		Labels:         labels,
		Values:         counts,
		Interpretation: interpretation,
	}, nil
}

func (b *Builder) buildBox(t *dataset.Table, req Request) (*Chart, error) {
	values, err := t.NumericColumn(req.X)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: column %s has no numeric values", core.ErrInsufficientData, req.X)
	}

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)
	q1, _ := stats.Percentile(values, 25)
	q3, _ := stats.Percentile(values, 75)

	interpretation := fmt.Sprintf(
		"The median of **%s** sits around %.2f. The bulk of the values lie between %.2f and %.2f (the Q1-Q3 span); points far outside that box may be extreme values.",
		req.X, median, q1, q3)

	return &Chart{
		Kind:   KindBox,
		Title:  fmt.Sprintf("Box plot: %s", req.X),
		Color:  req.Color,
		YLabel: req.X,
		Box: &BoxStats{
			Min:    min,
			Q1:     q1,
			Median: median,
			Q3:     q3,
			Max:    max,
		},
		Interpretation: interpretation,
	}, nil
}

func (b *Builder) buildScatter(t *dataset.Table, req Request) (*Chart, error) {
	if req.Y == "" {
		return nil, core.ErrMissingY
	}
	xs, ys, err := t.PairedNumeric(req.X, req.Y)
	if err != nil {
		return nil, err
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	r, _ := stats.Correlation(xs, ys)

	return &Chart{
		Kind:           KindScatter,
		Title:          fmt.Sprintf("Scatter: %s vs %s", req.X, req.Y),
		Color:          req.Color,
		XLabel:         req.X,
		YLabel:         req.Y,
		Points:         points,
		Interpretation: ClassifyCorrelation(r, req.X, req.Y),
	}, nil
}

func (b *Builder) buildPie(t *dataset.Table, req Request) (*Chart, error) {
	counts, err := t.ValueCounts(req.X)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: column %s is empty", core.ErrInsufficientData, req.X)
	}

	labels := make([]string, len(counts))
	values := make([]float64, len(counts))
	for i, vc := range counts {
		labels[i] = vc.Value
		values[i] = float64(vc.Count)
	}

	top := counts[0]
	interpretation := fmt.Sprintf(
		"The category **%s** is the most represented (%d observations), so it dominates the sample for **%s**.",
		top.Value, top.Count, req.X)

	return &Chart{
		Kind:           KindPie,
		Title:          fmt.Sprintf("Breakdown of %s", req.X),
		Color:          req.Color,
		Labels:         labels,
		Values:         values,
		Interpretation: interpretation,
	}, nil
}

// ClassifyCorrelation is a total function of the Pearson coefficient: r above
// 0.5 reads as a positive relation, below -0.5 as a negative one, and
// everything else - boundaries included - as inconclusive.
func ClassifyCorrelation(r float64, x, y string) string {
	switch {
	case r > 0.5:
		return fmt.Sprintf("As **%s** increases, **%s** tends to increase as well: the two variables show a positive correlation (r=%.3f).", x, y, r)
	case r < -0.5:
		return fmt.Sprintf("When **%s** increases, **%s** decreases: the two variables show a marked negative correlation (r=%.3f).", x, y, r)
	default:
		if math.IsNaN(r) {
			return fmt.Sprintf("No clear relation appears between **%s** and **%s**; the points are scattered with no neat trend.", x, y)
		}
		return fmt.Sprintf("No clear relation appears between **%s** and **%s**; the points are scattered with no neat trend (r=%.3f).", x, y, r)
	}
}
