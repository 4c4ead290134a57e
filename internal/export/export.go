// Package export writes flat climate exports and the colour legend.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Formats accepted by Write.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ContentType returns the MIME type for a format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// Write writes rows in the given format.
func Write(w io.Writer, format string, year int, rows []domain.ExportRow) error {
	switch format {
	case FormatCSV, "":
		return WriteCSV(w, rows)
	case FormatXLSX:
		return WriteXLSX(w, year, rows)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

func values(r domain.ExportRow) []any {
	return []any{string(r.Country), r.SourceCountry, r.Year, r.MinTemp, r.MaxTemp, r.MinPrec, r.MaxPrec}
}

// WriteCSV writes rows as comma-separated values with a header line.
func WriteCSV(w io.Writer, rows []domain.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(domain.ExportHeader); err != nil {
		return err
	}
	record := make([]string, len(domain.ExportHeader))
	for _, r := range rows {
		for i, v := range values(r) {
			switch v := v.(type) {
			case string:
				record[i] = v
			case int:
				record[i] = strconv.Itoa(v)
			case float64:
				record[i] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes rows to a single-sheet workbook named after the year.
func WriteXLSX(w io.Writer, year int, rows []domain.ExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("climate_%d", year)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	for i, h := range domain.ExportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range rows {
		for c, v := range values(row) {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.Write(w)
}
