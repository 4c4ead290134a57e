package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Score combines the per-dimension overlap scores of one country into a
// survivability score rounded to three decimals.
func Score(plant PlantRanges, obs Observation, w WeightVector) (float64, error) {
	temp, prec, err := dimensionScores(plant, obs)
	if err != nil {
		return 0, err
	}
	return combine(temp, prec, w), nil
}

func dimensionScores(plant PlantRanges, obs Observation) (temp, prec float64, err error) {
	temp, err = OverlapScore(plant.Temperature, obs.Temperature)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Temperature, err)
	}
	prec, err = OverlapScore(plant.Precipitation, obs.Precipitation)
	if err != nil {
		return 0, 0, fmt.Errorf("%s: %w", Precipitation, err)
	}
	return temp, prec, nil
}

func combine(temp, prec float64, w WeightVector) float64 {
	return round3(w.Temperature*temp + w.Precipitation*prec)
}

// round3 rounds half away from zero at the third decimal.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// CountryScore is the scored result for one canonical country. It carries
// the climate row it was computed from so tooltips read the same values the
// score was derived from.
type CountryScore struct {
	Country       CanonicalName `json:"country"`
	Record        ClimateRecord `json:"record"`
	Temperature   float64       `json:"temperature_overlap"`
	Precipitation float64       `json:"precipitation_overlap"`
	Score         float64       `json:"survivability_score"`
}

// SkippedRow records a climate row excluded from scoring.
type SkippedRow struct {
	Record ClimateRecord
	Err    error
}

// ScoreTable maps each canonical country in the year-filtered climate table
// to its score. It is computed once per request and shared by every
// consumer (map colouring, tooltips, export, snapshots).
type ScoreTable struct {
	Year    int
	Weights WeightVector
	Scores  map[CanonicalName]CountryScore
	Skipped []SkippedRow
}

// Lookup returns the score for a canonical country.
func (t ScoreTable) Lookup(c CanonicalName) (CountryScore, bool) {
	s, ok := t.Scores[c]
	return s, ok
}

// Countries returns the scored countries in sorted order.
func (t ScoreTable) Countries() []CanonicalName {
	out := make([]CanonicalName, 0, len(t.Scores))
	for c := range t.Scores {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Values returns the scores ordered by country.
func (t ScoreTable) Values() []float64 {
	countries := t.Countries()
	out := make([]float64, len(countries))
	for i, c := range countries {
		out[i] = t.Scores[c].Score
	}
	return out
}

// ScoreAll scores every distinct canonical country observed in year.
//
// Rows whose names do not reconcile, or whose values are not finite, are
// recorded in Skipped. When several
// rows reconcile to the same country, the first in table order is used.
// Weight, plant range and year problems fail the call before any row is
// scored. With workers > 1 countries are scored concurrently; the result is
// identical to the sequential pass.
func ScoreAll(ctx context.Context, plant PlantRanges, year int, w WeightVector, table *ClimateTable, rec *Reconciler, workers int) (ScoreTable, error) {
	if err := w.Validate(); err != nil {
		return ScoreTable{}, err
	}
	if err := plant.Validate(); err != nil {
		return ScoreTable{}, err
	}
	if err := table.CheckYear(year); err != nil {
		return ScoreTable{}, err
	}

	out := ScoreTable{Year: year, Weights: w}
	jobs := make([]CountryScore, 0)
	seen := make(map[CanonicalName]struct{})

	for _, r := range table.ForYear(year) {
		if err := r.Validate(); err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Record: r, Err: err})
			continue
		}
		country, err := rec.Canonicalize(r.Country)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedRow{Record: r, Err: err})
			continue
		}
		if _, dup := seen[country]; dup {
			continue
		}
		seen[country] = struct{}{}
		jobs = append(jobs, CountryScore{Country: country, Record: r})
	}

	if err := scoreJobs(ctx, plant, w, jobs, workers); err != nil {
		return ScoreTable{}, err
	}

	out.Scores = make(map[CanonicalName]CountryScore, len(jobs))
	for _, j := range jobs {
		out.Scores[j.Country] = j
	}
	return out, nil
}

// scoreJobs fills in each job's scores in place. Every job writes only its
// own slot, so no locking is needed.
func scoreJobs(ctx context.Context, plant PlantRanges, w WeightVector, jobs []CountryScore, workers int) error {
	one := func(i int) error {
		j := &jobs[i]
		temp, prec, err := dimensionScores(plant, j.Record.Observation(j.Country))
		if err != nil {
			return fmt.Errorf("score %s: %w", j.Country, err)
		}
		j.Temperature, j.Precipitation = temp, prec
		j.Score = combine(temp, prec, w)
		return nil
	}

	if workers <= 1 {
		for i := range jobs {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := one(i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return one(i)
		})
	}
	return g.Wait()
}

// IsRequestError reports whether err rejects a whole request rather than a
// single country.
func IsRequestError(err error) bool {
	for _, target := range []error{
		ErrInvalidWeightVector, ErrYearOutOfBounds, ErrUnknownPlant,
		ErrDegenerateRange, ErrInvalidRange, ErrEmptyClimateTable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
