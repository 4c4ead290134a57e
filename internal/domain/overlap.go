package domain

import (
	"fmt"
	"math"
)

// OverlapScore returns the fraction of the reference (plant tolerance) range
// validated by the observed range, in [0, 1].
//
// Disjoint intervals score 0 and an observed interval fully inside the
// reference scores exactly 1. Partial overlaps are divided by the reference
// width, never the observed width. A zero-width reference has no meaningful
// fraction and always returns ErrDegenerateRange; NaN or infinite observed
// bounds return ErrBadObservation.
func OverlapScore(ref ToleranceRange, obs ObservedRange) (float64, error) {
	width := ref.Width()
	if width == 0 {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, ref.Min, ref.Max)
	}
	if !finite(obs.Min) || !finite(obs.Max) {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrBadObservation, obs.Min, obs.Max)
	}

	if obs.Max < ref.Min || obs.Min > ref.Max {
		return 0, nil
	}
	if ref.Min <= obs.Min && obs.Max <= ref.Max {
		return 1, nil
	}

	start := math.Max(ref.Min, obs.Min)
	end := math.Min(ref.Max, obs.Max)
	return math.Max(0, (end-start)/width), nil
}
