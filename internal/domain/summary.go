package domain

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of scores in one map.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes summary statistics, rounded like the scores
// themselves. An empty input yields the zero Summary.
func Summarize(scores []float64) Summary {
	if len(scores) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	s := Summary{
		Count:  len(sorted),
		Mean:   round3(stat.Mean(sorted, nil)),
		Median: round3(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = round3(stat.StdDev(sorted, nil))
	}
	return s
}
