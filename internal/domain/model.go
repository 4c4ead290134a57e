package domain

import (
	"fmt"
	"math"
	"strings"
)

// Dimension names a climate variable a plant is scored against.
type Dimension string

const (
	Temperature   Dimension = "temperature"
	Precipitation Dimension = "precipitation"
)

// ToleranceRange is the [Min, Max] interval of one climate variable within
// which a plant variety is viable.
type ToleranceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Validate reports ErrInvalidRange when the bounds are not finite or are
// inverted.
func (r ToleranceRange) Validate() error {
	if !finite(r.Min) || !finite(r.Max) {
		return fmt.Errorf("%w: non-finite bound [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %g > max %g", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Width returns Max - Min.
func (r ToleranceRange) Width() float64 {
	return r.Max - r.Min
}

// ObservedRange is one observed climate interval for a country and year.
type ObservedRange struct {
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
	Year    int           `json:"year"`
	Country CanonicalName `json:"country"`
}

// CanonicalName is the normalized short-form identity of a country. Two
// source names denote the same country iff their canonical names are equal.
type CanonicalName string

// PlantRanges holds a plant's tolerance per climate dimension.
type PlantRanges struct {
	Temperature   ToleranceRange `json:"temperature"`
	Precipitation ToleranceRange `json:"precipitation"`
}

// Validate checks both ranges are well formed and have non-zero width.
func (p PlantRanges) Validate() error {
	for _, d := range []struct {
		dim Dimension
		r   ToleranceRange
	}{{Temperature, p.Temperature}, {Precipitation, p.Precipitation}} {
		if err := d.r.Validate(); err != nil {
			return fmt.Errorf("%s: %w", d.dim, err)
		}
		if d.r.Width() == 0 {
			return fmt.Errorf("%s: %w: [%g, %g]", d.dim, ErrDegenerateRange, d.r.Min, d.r.Max)
		}
	}
	return nil
}

// Observation holds one country's observed ranges for a single year.
type Observation struct {
	Temperature   ObservedRange `json:"temperature"`
	Precipitation ObservedRange `json:"precipitation"`
}

// Plant is one row of the plant table.
type Plant struct {
	Species string      `json:"species"`
	Variety string      `json:"variety"`
	Protein float64     `json:"protein"`
	Ranges  PlantRanges `json:"ranges"`

	// Origins is the free-text place list from the plant table's country
	// column; granularity varies (country, region or city).
	Origins []string `json:"origins,omitempty"`
}

// ID returns the display identifier "species - variety".
func (p Plant) ID() string {
	return PlantID(p.Species, p.Variety)
}

// PlantID joins species and variety the way the plant selector shows them.
func PlantID(species, variety string) string {
	return species + " - " + variety
}

// SplitOrigins splits a comma-separated place list, trimming blanks.
func SplitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ClimateRecord is one row of the climate table, with the country name as it
// appears in the source.
type ClimateRecord struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	MinTemp float64 `json:"min_temp"`
	MaxTemp float64 `json:"max_temp"`
	MinPrec float64 `json:"min_prec"`
	MaxPrec float64 `json:"max_prec"`
}

// Validate reports ErrBadObservation when any climate value is NaN or
// infinite.
func (r ClimateRecord) Validate() error {
	for _, v := range [...]float64{r.MinTemp, r.MaxTemp, r.MinPrec, r.MaxPrec} {
		if !finite(v) {
			return fmt.Errorf("%w: %s %d", ErrBadObservation, r.Country, r.Year)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Observation converts the record into per-dimension observed ranges
// attributed to the given canonical country.
func (r ClimateRecord) Observation(country CanonicalName) Observation {
	return Observation{
		Temperature:   ObservedRange{Min: r.MinTemp, Max: r.MaxTemp, Year: r.Year, Country: country},
		Precipitation: ObservedRange{Min: r.MinPrec, Max: r.MaxPrec, Year: r.Year, Country: country},
	}
}

// Feature is one geometry feature reduced to what the engine needs: its
// position in the collection and its display name.
type Feature struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
