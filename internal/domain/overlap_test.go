package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func obs(lo, hi float64) ObservedRange {
	return ObservedRange{Min: lo, Max: hi, Year: 2025, Country: "Brazil"}
}

func TestOverlapScore(t *testing.T) {
	ref := ToleranceRange{Min: 10, Max: 30}

	tests := []struct {
		name string
		obs  ObservedRange
		want float64
	}{
		{"contained", obs(15, 25), 1.0},
		{"identical", obs(10, 30), 1.0},
		{"disjoint above", obs(35, 40), 0.0},
		{"disjoint below", obs(-5, 9.9), 0.0},
		{"partial upper", obs(20, 40), 0.5},
		{"partial lower", obs(0, 15), 0.25},
		{"observed wider than reference", obs(0, 40), 1.0},
		{"touching upper edge", obs(30, 45), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OverlapScore(ref, tt.obs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverlapScore_DenominatorIsReferenceWidth(t *testing.T) {
	// Overlap of 5 over a reference width of 10, observed width 100.
	got, err := OverlapScore(ToleranceRange{Min: 0, Max: 10}, obs(5, 105))
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestOverlapScore_DegenerateReference(t *testing.T) {
	ref := ToleranceRange{Min: 20, Max: 20}

	for _, o := range []ObservedRange{obs(10, 30), obs(20, 20), obs(40, 50)} {
		_, err := OverlapScore(ref, o)
		require.ErrorIs(t, err, ErrDegenerateRange)
	}
}

func TestOverlapScore_Bounded(t *testing.T) {
	ref := ToleranceRange{Min: -3, Max: 17}
	for lo := -20.0; lo <= 30; lo += 2.5 {
		for hi := lo; hi <= 40; hi += 3.5 {
			got, err := OverlapScore(ref, obs(lo, hi))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}
}

func TestOverlapScore_NonFiniteObservation(t *testing.T) {
	ref := ToleranceRange{Min: 10, Max: 30}

	for _, o := range []ObservedRange{
		obs(math.NaN(), 20),
		obs(15, math.NaN()),
		obs(math.Inf(-1), 20),
		obs(15, math.Inf(1)),
	} {
		got, err := OverlapScore(ref, o)
		require.ErrorIs(t, err, ErrBadObservation)
		assert.Zero(t, got)
	}
}

func TestToleranceRange_Validate(t *testing.T) {
	require.NoError(t, ToleranceRange{Min: 1, Max: 2}.Validate())
	require.NoError(t, ToleranceRange{Min: 2, Max: 2}.Validate())
	require.ErrorIs(t, ToleranceRange{Min: 3, Max: 2}.Validate(), ErrInvalidRange)
	require.ErrorIs(t, ToleranceRange{Min: math.NaN(), Max: 2}.Validate(), ErrInvalidRange)
	require.ErrorIs(t, ToleranceRange{Min: math.Inf(1), Max: math.Inf(1)}.Validate(), ErrInvalidRange)
	require.ErrorIs(t, ToleranceRange{Min: math.Inf(-1), Max: 2}.Validate(), ErrInvalidRange)
}

func TestPlantRanges_ValidateInfiniteRange(t *testing.T) {
	p := kale()
	p.Temperature = ToleranceRange{Min: math.Inf(1), Max: math.Inf(1)}
	require.ErrorIs(t, p.Validate(), ErrInvalidRange)
}
