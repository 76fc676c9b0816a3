package hypotest

import "sort"

// rankAverage converts values to 1-based ranks, averaging ties
func rankAverage(data []float64) []float64 {
	n := len(data)
	ranks := make([]float64, n)
	if n == 0 {
		return ranks
	}

	type pair struct {
		value float64
		index int
	}
	pairs := make([]pair, n)
	for i, v := range data {
		pairs[i] = pair{value: v, index: i}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	i := 0
	for i < n {
		j := i + 1
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}
		// Average rank across the tie group
		avgRank := float64(i+1) + float64(j-i-1)/2.0
		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avgRank
		}
		i = j
	}
	return ranks
}

// tieCorrection returns sum(t^3 - t) over tie groups, the shared term of the
// variance corrections used by the rank tests.
func tieCorrection(data []float64) float64 {
	counts := make(map[float64]float64)
	for _, v := range data {
		counts[v]++
	}
	sum := 0.0
	for _, t := range counts {
		sum += t*t*t - t
	}
	return sum
}
