package domain

import (
	"fmt"
	"slices"
	"sort"
)

// ClimateTable is the immutable, already-parsed climate dataset.
type ClimateTable struct {
	rows    []ClimateRecord
	minYear int
	maxYear int
}

// NewClimateTable copies rows into a table and records its year bounds.
func NewClimateTable(rows []ClimateRecord) *ClimateTable {
	t := &ClimateTable{rows: slices.Clone(rows)}
	for i, r := range t.rows {
		if i == 0 || r.Year < t.minYear {
			t.minYear = r.Year
		}
		if i == 0 || r.Year > t.maxYear {
			t.maxYear = r.Year
		}
	}
	return t
}

// Len returns the number of rows.
func (t *ClimateTable) Len() int { return len(t.rows) }

// Rows returns a copy of every row in source order.
func (t *ClimateTable) Rows() []ClimateRecord { return slices.Clone(t.rows) }

// YearBounds returns the inclusive [min, max] year range. It fails on an
// empty table, which has no valid year.
func (t *ClimateTable) YearBounds() (minYear, maxYear int, err error) {
	if len(t.rows) == 0 {
		return 0, 0, ErrEmptyClimateTable
	}
	return t.minYear, t.maxYear, nil
}

// CheckYear reports ErrYearOutOfBounds unless year lies within YearBounds.
func (t *ClimateTable) CheckYear(year int) error {
	lo, hi, err := t.YearBounds()
	if err != nil {
		return err
	}
	if year < lo || year > hi {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfBounds, year, lo, hi)
	}
	return nil
}

// ClampYear returns year limited to the table's bounds. It is used only for
// choosing a default selection, never to repair a request.
func (t *ClimateTable) ClampYear(year int) int {
	lo, hi, err := t.YearBounds()
	if err != nil {
		return year
	}
	return min(max(year, lo), hi)
}

// ForYear returns the rows observed in year, in source order.
func (t *ClimateTable) ForYear(year int) []ClimateRecord {
	var out []ClimateRecord
	for _, r := range t.rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// PlantCatalog indexes plants by their "species - variety" identifier.
type PlantCatalog struct {
	byID map[string]Plant
	ids  []string
}

// NewPlantCatalog validates and indexes plants. Later duplicates of an
// identifier are ignored so the first row wins.
func NewPlantCatalog(plants []Plant) (*PlantCatalog, error) {
	c := &PlantCatalog{byID: make(map[string]Plant, len(plants))}
	for _, p := range plants {
		if err := p.Ranges.Temperature.Validate(); err != nil {
			return nil, fmt.Errorf("plant %q temperature: %w", p.ID(), err)
		}
		if err := p.Ranges.Precipitation.Validate(); err != nil {
			return nil, fmt.Errorf("plant %q precipitation: %w", p.ID(), err)
		}
		if !finite(p.Protein) {
			return nil, fmt.Errorf("plant %q protein: non-finite value", p.ID())
		}
		id := p.ID()
		if _, dup := c.byID[id]; dup {
			continue
		}
		c.byID[id] = p
		c.ids = append(c.ids, id)
	}
	sort.Strings(c.ids)
	return c, nil
}

// IDs returns every plant identifier in sorted order.
func (c *PlantCatalog) IDs() []string { return slices.Clone(c.ids) }

// Plants returns every plant ordered by identifier.
func (c *PlantCatalog) Plants() []Plant {
	out := make([]Plant, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.byID[id])
	}
	return out
}

// Lookup returns the plant for id or ErrUnknownPlant.
func (c *PlantCatalog) Lookup(id string) (Plant, error) {
	p, ok := c.byID[id]
	if !ok {
		return Plant{}, fmt.Errorf("%w: %q", ErrUnknownPlant, id)
	}
	return p, nil
}
