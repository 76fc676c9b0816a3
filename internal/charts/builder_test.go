package charts

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
)

func healthTable() *dataset.Table {
	return &dataset.Table{
		Name:    "health.csv",
		Headers: []string{"Age", "Glucose", "Smoker"},
		Rows: [][]string{
			{"25", "85", "no"},
			{"30", "95", "yes"},
			{"35", "105", "no"},
			{"40", "115", "no"},
		},
	}
}

// TestParseKind tests chart kind parsing and the unknown-kind error
func TestParseKind(t *testing.T) {
	for _, valid := range []string{"histogram", "box", "scatter", "pie"} {
		if _, err := ParseKind(valid); err != nil {
			t.Errorf("ParseKind(%s) failed: %v", valid, err)
		}
	}

	_, err := ParseKind("sunburst")
	if !errors.Is(err, core.ErrUnknownChart) {
		t.Errorf("Expected ErrUnknownChart, got %v", err)
	}
}

// TestBuildHistogram tests the fixed 20-bin histogram
func TestBuildHistogram(t *testing.T) {
	b := NewBuilder()

	chart, err := b.Build(healthTable(), Request{X: "Glucose", Kind: KindHistogram, Color: "#0E6BA8"})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(chart.Values) != 20 || len(chart.Labels) != 20 {
		t.Fatalf("Histogram must have exactly 20 bins, got %d/%d", len(chart.Values), len(chart.Labels))
	}
	total := 0.0
	for _, c := range chart.Values {
		total += c
	}
	if total != 4 {
		t.Errorf("Bin counts should sum to the sample size, got %.0f", total)
	}
	if chart.Interpretation == "" {
		t.Error("Histogram should carry an interpretation")
	}
}

// TestBuildHistogramSingleValue tests the degenerate constant column
func TestBuildHistogramSingleValue(t *testing.T) {
	table := &dataset.Table{
		Headers: []string{"V"},
		Rows:    [][]string{{"7"}, {"7"}, {"7"}},
	}

	chart, err := NewBuilder().Build(table, Request{X: "V", Kind: KindHistogram})
	if err != nil {
		t.Fatalf("Constant column should still build: %v", err)
	}
	if chart.Values[0] != 3 {
		t.Errorf("All values should land in the first bin, got %v", chart.Values)
	}
}

// TestBuildBox tests the five-number summary
func TestBuildBox(t *testing.T) {
	chart, err := NewBuilder().Build(healthTable(), Request{X: "Age", Kind: KindBox})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if chart.Box == nil {
		t.Fatal("Box chart must carry BoxStats")
	}
	if chart.Box.Min != 25 || chart.Box.Max != 40 {
		t.Errorf("Unexpected extremes: %+v", chart.Box)
	}
	if chart.Box.Median != 32.5 {
		t.Errorf("Expected median 32.5, got %.2f", chart.Box.Median)
	}
}

// TestBuildScatterRequiresY tests that scatter halts without a Y column
func TestBuildScatterRequiresY(t *testing.T) {
	_, err := NewBuilder().Build(healthTable(), Request{X: "Age", Kind: KindScatter})
	if !errors.Is(err, core.ErrMissingY) {
		t.Errorf("Expected ErrMissingY, got %v", err)
	}

	// Other kinds never require Y
	if _, err := NewBuilder().Build(healthTable(), Request{X: "Age", Kind: KindHistogram}); err != nil {
		t.Errorf("Histogram must not require Y: %v", err)
	}
}

// TestBuildScatterPerfectCorrelation tests the end-to-end positive reading
func TestBuildScatterPerfectCorrelation(t *testing.T) {
	chart, err := NewBuilder().Build(healthTable(), Request{X: "Age", Y: "Glucose", Kind: KindScatter})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(chart.Points) != 4 {
		t.Fatalf("Expected 4 points, got %d", len(chart.Points))
	}
	// Age and Glucose are perfectly linear in the fixture, so r = 1.0
	if !strings.Contains(chart.Interpretation, "positive correlation") {
		t.Errorf("Expected a positive-correlation reading, got: %s", chart.Interpretation)
	}
	if !strings.Contains(chart.Interpretation, "r=1.000") {
		t.Errorf("Expected r=1.000 in the reading, got: %s", chart.Interpretation)
	}
}

// TestBuildPie tests category frequencies and the dominant-category reading
func TestBuildPie(t *testing.T) {
	chart, err := NewBuilder().Build(healthTable(), Request{X: "Smoker", Kind: KindPie})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(chart.Labels) != 2 || chart.Labels[0] != "no" {
		t.Errorf("Expected [no yes] ordered by frequency, got %v", chart.Labels)
	}
	if chart.Values[0] != 3 {
		t.Errorf("Expected 3 observations of 'no', got %.0f", chart.Values[0])
	}
	if !strings.Contains(chart.Interpretation, "no") {
		t.Errorf("Interpretation should name the dominant category: %s", chart.Interpretation)
	}
}

// TestBuildNoDataset tests the nil-table guard
func TestBuildNoDataset(t *testing.T) {
	_, err := NewBuilder().Build(nil, Request{X: "Age", Kind: KindHistogram})
	if !errors.Is(err, core.ErrNoDataset) {
		t.Errorf("Expected ErrNoDataset, got %v", err)
	}
}

// TestClassifyCorrelation tests the strict 0.5 boundaries
func TestClassifyCorrelation(t *testing.T) {
	tests := []struct {
		r        float64
		expected string
	}{
		{0.9, "positive correlation"},
		{0.51, "positive correlation"},
		{0.5, "No clear relation"},
		{0.0, "No clear relation"},
		{-0.5, "No clear relation"},
		{-0.51, "negative correlation"},
		{-0.9, "negative correlation"},
	}
	for _, tt := range tests {
		got := ClassifyCorrelation(tt.r, "X", "Y")
		if !strings.Contains(got, tt.expected) {
			t.Errorf("ClassifyCorrelation(%.2f): expected %q in %q", tt.r, tt.expected, got)
		}
	}
}

// TestClassifyCorrelationNaN tests the undefined-coefficient reading
func TestClassifyCorrelationNaN(t *testing.T) {
	got := ClassifyCorrelation(math.NaN(), "X", "Y")
	if !strings.Contains(got, "No clear relation") {
		t.Errorf("NaN should read as inconclusive: %s", got)
	}
	if strings.Contains(got, "r=") {
		t.Errorf("NaN reading should omit the coefficient: %s", got)
	}
}
