package hypotest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// wilcoxonSignedRank computes the two-sided Wilcoxon signed-rank test for
// paired samples using the normal approximation with tie correction. Zero
// differences are dropped; the statistic is the smaller signed-rank sum.
func wilcoxonSignedRank(a, b []float64) (statistic, pValue float64, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("%w: got %d and %d values", core.ErrSampleMismatch, len(a), len(b))
	}

	diffs := make([]float64, 0, len(a))
	for i := range a {
		if d := a[i] - b[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	n := float64(len(diffs))
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: all paired differences are zero", core.ErrInsufficientData)
	}

	absDiffs := make([]float64, len(diffs))
	for i, d := range diffs {
		absDiffs[i] = math.Abs(d)
	}
	ranks := rankAverage(absDiffs)

	var wPlus, wMinus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		} else {
			wMinus += ranks[i]
		}
	}
	statistic = math.Min(wPlus, wMinus)

	mean := n * (n + 1) / 4
	variance := n*(n+1)*(2*n+1)/24 - tieCorrection(absDiffs)/48
	if variance <= 0 {
		return statistic, 1.0, nil
	}

	z := statistic - mean
	switch {
	case z > 0:
		z -= 0.5
	case z < 0:
		z += 0.5
	}
	z /= math.Sqrt(variance)

	normal := distuv.Normal{Mu: 0, Sigma: 1}
	p := 2 * normal.Survival(math.Abs(z))
	if p > 1 {
		p = 1
	}
	return statistic, p, nil
}
