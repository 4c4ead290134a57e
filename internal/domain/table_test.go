package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimateTable_YearBounds(t *testing.T) {
	table := testTable()

	lo, hi, err := table.YearBounds()
	require.NoError(t, err)
	assert.Equal(t, 2024, lo)
	assert.Equal(t, 2026, hi)

	require.NoError(t, table.CheckYear(2024))
	require.ErrorIs(t, table.CheckYear(2023), ErrYearOutOfBounds)
	require.ErrorIs(t, table.CheckYear(2027), ErrYearOutOfBounds)

	assert.Equal(t, 2024, table.ClampYear(1990))
	assert.Equal(t, 2026, table.ClampYear(2100))
	assert.Equal(t, 2025, table.ClampYear(2025))
}

func TestClimateTable_Empty(t *testing.T) {
	table := NewClimateTable(nil)

	_, _, err := table.YearBounds()
	require.ErrorIs(t, err, ErrEmptyClimateTable)
	require.ErrorIs(t, table.CheckYear(2025), ErrEmptyClimateTable)
	assert.Equal(t, 2025, table.ClampYear(2025))
}

func TestClimateTable_ForYearKeepsSourceOrder(t *testing.T) {
	rows := testTable().ForYear(2025)

	require.Len(t, rows, 5)
	assert.Equal(t, "Brazil", rows[0].Country)
	assert.Equal(t, "Federative Republic of Brazil", rows[4].Country)
}

func TestClimateTable_IsolatedFromCaller(t *testing.T) {
	rows := []ClimateRecord{{Country: "Kenya", Year: 2025}}
	table := NewClimateTable(rows)
	rows[0].Country = "Mutated"

	assert.Equal(t, "Kenya", table.Rows()[0].Country)
}

func testPlants(t *testing.T) *PlantCatalog {
	t.Helper()
	c, err := NewPlantCatalog([]Plant{
		{Species: "Kale", Variety: "Lacinato", Protein: 4.3, Ranges: kale()},
		{Species: "Bean", Variety: "Pinto", Protein: 21, Ranges: PlantRanges{
			Temperature:   ToleranceRange{Min: 18, Max: 30},
			Precipitation: ToleranceRange{Min: 300, Max: 300},
		}},
		{Species: "Kale", Variety: "Lacinato", Protein: 99, Ranges: kale()},
	})
	require.NoError(t, err)
	return c
}

func TestPlantCatalog(t *testing.T) {
	c := testPlants(t)

	assert.Equal(t, []string{"Bean - Pinto", "Kale - Lacinato"}, c.IDs())

	p, err := c.Lookup("Kale - Lacinato")
	require.NoError(t, err)
	assert.Equal(t, 4.3, p.Protein, "first duplicate wins")

	_, err = c.Lookup("Kale")
	require.ErrorIs(t, err, ErrUnknownPlant)
}

func TestPlantCatalog_RejectsInvertedRange(t *testing.T) {
	_, err := NewPlantCatalog([]Plant{{
		Species: "Rice",
		Ranges: PlantRanges{
			Temperature:   ToleranceRange{Min: 30, Max: 20},
			Precipitation: ToleranceRange{Min: 1000, Max: 2000},
		},
	}})
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestPlantCatalog_RejectsNonFinite(t *testing.T) {
	_, err := NewPlantCatalog([]Plant{{
		Species: "Rice",
		Ranges: PlantRanges{
			Temperature:   ToleranceRange{Min: 20, Max: math.Inf(1)},
			Precipitation: ToleranceRange{Min: 1000, Max: 2000},
		},
	}})
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewPlantCatalog([]Plant{{
		Species: "Rice",
		Protein: math.NaN(),
		Ranges:  kale(),
	}})
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	plants := testPlants(t)
	climate := testTable()

	t.Run("valid", func(t *testing.T) {
		r, err := Resolve(Request{PlantID: "Kale - Lacinato", Year: 2025, TemperatureWeight: 70}, plants, climate)
		require.NoError(t, err)
		assert.Equal(t, "Kale - Lacinato", r.Plant.ID())
		assert.Equal(t, 2025, r.Year)
		assert.InDelta(t, 0.7, r.Weights.Temperature, 1e-12)
	})

	t.Run("weight checked first", func(t *testing.T) {
		_, err := Resolve(Request{PlantID: "nope", Year: 1900, TemperatureWeight: 150}, plants, climate)
		require.ErrorIs(t, err, ErrInvalidWeightVector)
	})

	t.Run("year before plant", func(t *testing.T) {
		_, err := Resolve(Request{PlantID: "nope", Year: 1900, TemperatureWeight: 50}, plants, climate)
		require.ErrorIs(t, err, ErrYearOutOfBounds)
	})

	t.Run("unknown plant", func(t *testing.T) {
		_, err := Resolve(Request{PlantID: "nope", Year: 2025, TemperatureWeight: 50}, plants, climate)
		require.ErrorIs(t, err, ErrUnknownPlant)
	})

	t.Run("degenerate plant", func(t *testing.T) {
		_, err := Resolve(Request{PlantID: "Bean - Pinto", Year: 2025, TemperatureWeight: 50}, plants, climate)
		require.ErrorIs(t, err, ErrDegenerateRange)
	})
}

func TestBuildExport(t *testing.T) {
	rows, skipped, err := BuildExport(testTable(), 2025, testReconciler())
	require.NoError(t, err)

	require.Len(t, rows, 4)
	assert.Equal(t, CanonicalName("Brazil"), rows[0].Country)
	assert.Equal(t, CanonicalName("United States"), rows[2].Country)
	assert.Equal(t, "United States of America", rows[2].SourceCountry)
	assert.Equal(t, "Federative Republic of Brazil", rows[3].SourceCountry)

	require.Len(t, skipped, 1)
	assert.Equal(t, "Atlantis", skipped[0].Record.Country)

	bad := NewClimateTable([]ClimateRecord{
		{Country: "Germany", Year: 2025, MinTemp: math.NaN(), MaxTemp: 5, MinPrec: 600, MaxPrec: 800},
	})
	rows, skipped, err = BuildExport(bad, 2025, testReconciler())
	require.NoError(t, err)
	assert.Empty(t, rows)
	require.Len(t, skipped, 1)
	assert.ErrorIs(t, skipped[0].Err, ErrBadObservation)

	_, _, err = BuildExport(testTable(), 1999, testReconciler())
	require.ErrorIs(t, err, ErrYearOutOfBounds)
}
