package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
)

// DefaultClimateDelimiter is the separator used by the climate dataset.
const DefaultClimateDelimiter = ';'

var climateColumns = []string{"country", "year", "min_temp", "max_temp", "min_prec", "max_prec"}

// ReadClimate parses a climate table. Column order is taken from the header;
// extra columns are ignored. Any malformed row fails the whole read with its
// line number, since a partially loaded table would silently shift year
// bounds.
func ReadClimate(r io.Reader, delim rune) ([]domain.ClimateRecord, error) {
	cr := newReader(r, delim)
	h, err := readHeader(cr, climateColumns...)
	if err != nil {
		return nil, fmt.Errorf("climate table: %w", err)
	}

	var rows []domain.ClimateRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("climate table: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := parseClimateRow(h, row)
		if err != nil {
			return nil, fmt.Errorf("climate table line %d: %w", line, err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func parseClimateRow(h header, row []string) (domain.ClimateRecord, error) {
	rec := domain.ClimateRecord{Country: h.str(row, "country")}
	if rec.Country == "" {
		return rec, errors.New("empty country")
	}
	var err error
	if rec.Year, err = h.integer(row, "year"); err != nil {
		return rec, err
	}
	if rec.MinTemp, err = h.float(row, "min_temp"); err != nil {
		return rec, err
	}
	if rec.MaxTemp, err = h.float(row, "max_temp"); err != nil {
		return rec, err
	}
	if rec.MinPrec, err = h.float(row, "min_prec"); err != nil {
		return rec, err
	}
	if rec.MaxPrec, err = h.float(row, "max_prec"); err != nil {
		return rec, err
	}
	return rec, nil
}

// LoadClimateFile reads the climate table at path into a ClimateTable.
func LoadClimateFile(path string, delim rune) (*domain.ClimateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadClimate(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return domain.NewClimateTable(rows), nil
}
