package main

import (
	"flag"
	"io"
	"testing"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&scoreYear, "year", 0, "")
	fs.IntVar(&scoreWeight, "weight", 0, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestScoreRequest(t *testing.T) {
	defaults := domain.Request{Year: 2025, TemperatureWeight: 50}

	tests := []struct {
		name       string
		args       []string
		wantYear   int
		wantWeight int
	}{
		{"no flags keeps defaults", nil, 2025, 50},
		{"explicit values", []string{"--year", "2024", "--weight", "70"}, 2024, 70},
		{"zero weight is a choice", []string{"--weight", "0"}, 2025, 0},
		{"negative weight passes through", []string{"--weight", "-5"}, 2025, -5},
		{"zero year passes through", []string{"--year", "0"}, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := scoreFlagSet(t, tt.args...)
			req := scoreRequest(fs, defaults, "Kale - Lacinato")

			assert.Equal(t, "Kale - Lacinato", req.PlantID)
			assert.Equal(t, tt.wantYear, req.Year)
			assert.Equal(t, tt.wantWeight, req.TemperatureWeight)
		})
	}
}

func TestScoreRequest_BadValuesAreRejected(t *testing.T) {
	plants, err := domain.NewPlantCatalog([]domain.Plant{{
		Species: "Kale", Variety: "Lacinato",
		Ranges: domain.PlantRanges{
			Temperature:   domain.ToleranceRange{Min: 10, Max: 30},
			Precipitation: domain.ToleranceRange{Min: 400, Max: 1200},
		},
	}})
	require.NoError(t, err)
	climate := domain.NewClimateTable([]domain.ClimateRecord{
		{Country: "Kenya", Year: 2025, MinTemp: 15, MaxTemp: 25, MinPrec: 500, MaxPrec: 1000},
	})
	defaults := domain.Request{Year: 2025, TemperatureWeight: 50}

	_, err = domain.Resolve(scoreRequest(scoreFlagSet(t, "--weight", "-5"), defaults, "Kale - Lacinato"), plants, climate)
	require.ErrorIs(t, err, domain.ErrInvalidWeightVector)

	_, err = domain.Resolve(scoreRequest(scoreFlagSet(t, "--year", "0"), defaults, "Kale - Lacinato"), plants, climate)
	require.ErrorIs(t, err, domain.ErrYearOutOfBounds)
}

func TestYearOr(t *testing.T) {
	var year int
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.IntVar(&year, "year", 0, "")
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, 2025, yearOr(fs, year, 2025))

	fs = flag.NewFlagSet("export", flag.ContinueOnError)
	fs.IntVar(&year, "year", 0, "")
	require.NoError(t, fs.Parse([]string{"--year", "0"}))
	assert.Equal(t, 0, yearOr(fs, year, 2025))
}
