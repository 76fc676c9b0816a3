package hypotest

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// kruskalWallis computes the tie-corrected Kruskal-Wallis H statistic over
// the given groups; the p-value comes from the chi-squared distribution with
// k-1 degrees of freedom.
func kruskalWallis(groups ...[]float64) (statistic, pValue float64, err error) {
	if len(groups) < 2 {
		return 0, 0, fmt.Errorf("%w: need at least two groups", core.ErrInsufficientData)
	}

	total := 0
	for _, g := range groups {
		if len(g) == 0 {
			return 0, 0, fmt.Errorf("%w: every group must be non-empty", core.ErrInsufficientData)
		}
		total += len(g)
	}

	combined := make([]float64, 0, total)
	for _, g := range groups {
		combined = append(combined, g...)
	}
	ranks := rankAverage(combined)

	n := float64(total)
	h := 0.0
	offset := 0
	for _, g := range groups {
		rankSum := 0.0
		for i := range g {
			rankSum += ranks[offset+i]
		}
		h += rankSum * rankSum / float64(len(g))
		offset += len(g)
	}
	h = 12/(n*(n+1))*h - 3*(n+1)

	// Tie correction
	correction := 1 - tieCorrection(combined)/(n*n*n-n)
	if correction <= 0 {
		// Every value tied; no distributional difference is detectable.
		return 0, 1.0, nil
	}
	h /= correction

	chi := distuv.ChiSquared{K: float64(len(groups) - 1)}
	p := chi.Survival(h)
	if p > 1 {
		p = 1
	}
	return h, p, nil
}
