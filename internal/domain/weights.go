package domain

import (
	"fmt"
	"math"
)

// weightTolerance bounds the floating error allowed in T + P == 1.
const weightTolerance = 1e-9

// WeightVector splits a survivability score between temperature and
// precipitation. Both weights lie in [0, 1] and sum to 1.
type WeightVector struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
}

// NewWeightVector validates an explicit pair of weights.
func NewWeightVector(temperature, precipitation float64) (WeightVector, error) {
	w := WeightVector{Temperature: temperature, Precipitation: precipitation}
	if err := w.Validate(); err != nil {
		return WeightVector{}, err
	}
	return w, nil
}

// WeightsFromPercent builds the vector from the temperature slider value
// (0-100); precipitation receives the complement. Values outside [0, 100]
// are rejected rather than clamped.
func WeightsFromPercent(temperaturePercent int) (WeightVector, error) {
	if temperaturePercent < 0 || temperaturePercent > 100 {
		return WeightVector{}, fmt.Errorf("%w: temperature weight %d%% outside [0, 100]",
			ErrInvalidWeightVector, temperaturePercent)
	}
	t := float64(temperaturePercent) / 100
	return WeightVector{Temperature: t, Precipitation: 1 - t}, nil
}

// Validate reports ErrInvalidWeightVector when a weight falls outside [0, 1]
// or the pair does not sum to 1.
func (w WeightVector) Validate() error {
	for _, v := range []float64{w.Temperature, w.Precipitation} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: weight %g outside [0, 1]", ErrInvalidWeightVector, v)
		}
	}
	if math.Abs(w.Temperature+w.Precipitation-1) > weightTolerance {
		return fmt.Errorf("%w: weights sum to %g", ErrInvalidWeightVector, w.Temperature+w.Precipitation)
	}
	return nil
}

// TemperaturePercent returns the temperature weight as a rounded percent.
func (w WeightVector) TemperaturePercent() int {
	return int(math.Round(w.Temperature * 100))
}
