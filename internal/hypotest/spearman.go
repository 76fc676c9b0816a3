package hypotest

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
)

// spearmanRho computes Spearman's rank correlation with tie-aware ranks; the
// two-tailed p-value uses the t-distribution approximation on n-2 degrees of
// freedom.
func spearmanRho(a, b []float64) (statistic, pValue float64, err error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("%w: got %d and %d values", core.ErrSampleMismatch, len(a), len(b))
	}
	n := len(a)
	if n < 3 {
		return 0, 0, fmt.Errorf("%w: need at least 3 paired values", core.ErrInsufficientData)
	}

	rho, err := stats.Correlation(rankAverage(a), rankAverage(b))
	if err != nil {
		return 0, 0, fmt.Errorf("spearman correlation: %w", err)
	}
	if math.IsNaN(rho) {
		return 0, 1.0, nil
	}

	// Perfect monotonic relation: the t statistic diverges.
	if rho >= 1 || rho <= -1 {
		return rho, 0.0, nil
	}

	t := rho * math.Sqrt(float64(n-2)/(1-rho*rho))
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	p := 2 * tDist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}
	return rho, p, nil
}
