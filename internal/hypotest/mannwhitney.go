package hypotest

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// mannWhitneyU computes the two-sided Mann-Whitney U test using the normal
// approximation with tie and continuity corrections. The statistic is U for
// the first sample.
func mannWhitneyU(a, b []float64) (statistic, pValue float64, err error) {
	n1 := float64(len(a))
	n2 := float64(len(b))
	if n1 == 0 || n2 == 0 {
		return 0, 0, fmt.Errorf("%w: both samples must be non-empty", core.ErrInsufficientData)
	}

	combined := make([]float64, 0, len(a)+len(b))
	combined = append(combined, a...)
	combined = append(combined, b...)
	ranks := rankAverage(combined)

	r1 := 0.0
	for i := range a {
		r1 += ranks[i]
	}
	u1 := r1 - n1*(n1+1)/2

	n := n1 + n2
	mean := n1 * n2 / 2
	tieTerm := tieCorrection(combined)
	variance := n1 * n2 / 12 * ((n + 1) - tieTerm/(n*(n-1)))
	if variance <= 0 {
		// All values tied across both samples
		return u1, 1.0, nil
	}

	// Continuity correction pulls the statistic half a unit toward the mean
	z := u1 - mean
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
	return u1, p, nil
}
