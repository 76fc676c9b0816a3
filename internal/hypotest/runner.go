// Package hypotest runs the canonical nonparametric tests offered by the
// Test screen and renders a significance verdict at a fixed 0.05 threshold.
package hypotest

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// Alpha is the fixed significance threshold: p < Alpha reads as significant.
const Alpha = 0.05

// Kind identifies one of the supported test selections
type Kind string

const (
	KindMannWhitney   Kind = "mann-whitney"
	KindWilcoxon      Kind = "wilcoxon"
	KindKruskalWallis Kind = "kruskal-wallis"
	KindSpearman      Kind = "spearman"
)

// Kinds lists every supported test in display order
func Kinds() []Kind {
	return []Kind{KindMannWhitney, KindWilcoxon, KindKruskalWallis, KindSpearman}
}

// ParseKind maps a form value onto a test kind
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindMannWhitney, KindWilcoxon, KindKruskalWallis, KindSpearman:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", core.ErrUnknownTest, s)
}

// DisplayName returns the human-readable test name
func (k Kind) DisplayName() string {
	switch k {
	case KindMannWhitney:
		return "Mann-Whitney U"
	case KindWilcoxon:
		return "Wilcoxon signed-rank"
	case KindKruskalWallis:
		return "Kruskal-Wallis H"
	case KindSpearman:
		return "Spearman rank correlation"
	}
	return string(k)
}

// Interpretation returns the fixed sentence attached to a significant result
func (k Kind) Interpretation() string {
	switch k {
	case KindMannWhitney:
		return "The test compares the medians of two independent groups."
	case KindWilcoxon:
		return "This test checks whether two paired measurements differ significantly."
	case KindKruskalWallis:
		return "This test compares the distributions of several groups to see whether they differ."
	case KindSpearman:
		return "It measures the strength of the monotonic relationship between two numeric variables."
	}
	return ""
}

// Result is one test outcome; transient, never persisted
type Result struct {
	Kind           Kind    `json:"kind"`
	Name           string  `json:"name"`
	Statistic      float64 `json:"statistic"`
	PValue         float64 `json:"p_value"`
	Significant    bool    `json:"significant"`
	Interpretation string  `json:"interpretation"`
}

// Runner invokes the statistical routine matching a test selection
type Runner struct{}

// NewRunner creates a test runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes one test over the two samples. Routine errors (mismatched
// sample lengths, degenerate inputs) are returned for the screen to surface
// verbatim; the screen stays interactive.
func (r *Runner) Run(kind Kind, a, b []float64) (*Result, error) {
	var (
		statistic float64
		pValue    float64
		err       error
	)

	switch kind {
	case KindMannWhitney:
		statistic, pValue, err = mannWhitneyU(a, b)
	case KindWilcoxon:
		statistic, pValue, err = wilcoxonSignedRank(a, b)
	case KindKruskalWallis:
		statistic, pValue, err = kruskalWallis(a, b)
	case KindSpearman:
		statistic, pValue, err = spearmanRho(a, b)
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownTest, string(kind))
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Kind:           kind,
		Name:           kind.DisplayName(),
		Statistic:      statistic,
		PValue:         pValue,
		Significant:    pValue < Alpha,
		Interpretation: kind.Interpretation(),
	}, nil
}

// SweepEntry is one row of a run-everything sweep: either a result or the
// routine's error message.
type SweepEntry struct {
	Kind   Kind    `json:"kind"`
	Name   string  `json:"name"`
	Result *Result `json:"result,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// RunAll executes every supported test concurrently over the same two
// samples. Routine failures are recorded per entry instead of aborting the
// sweep.
func (r *Runner) RunAll(ctx context.Context, a, b []float64) []SweepEntry {
	kinds := Kinds()
	entries := make([]SweepEntry, len(kinds))

	g, _ := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		i, kind := i, kind
		g.Go(func() error {
			entry := SweepEntry{Kind: kind, Name: kind.DisplayName()}
			result, err := r.Run(kind, a, b)
			if err != nil {
				entry.Error = err.Error()
			} else {
				entry.Result = result
			}
			entries[i] = entry
			return nil
		})
	}
	// Workers never return errors; failures live on the entries.
	_ = g.Wait()

	return entries
}
