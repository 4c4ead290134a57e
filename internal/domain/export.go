package domain

// ExportRow is one year-filtered climate row with its canonical country.
type ExportRow struct {
	Country       CanonicalName `json:"country"`
	SourceCountry string        `json:"source_country"`
	Year          int           `json:"year"`
	MinTemp       float64       `json:"min_temp"`
	MaxTemp       float64       `json:"max_temp"`
	MinPrec       float64       `json:"min_prec"`
	MaxPrec       float64       `json:"max_prec"`
}

// ExportHeader is the column order used by flat exports.
var ExportHeader = []string{"country", "source_country", "year", "min_temp", "max_temp", "min_prec", "max_prec"}

// BuildExport returns the rows of year with canonical country names, in
// table order. Rows whose names do not reconcile or whose values are not
// finite are returned separately.
func BuildExport(table *ClimateTable, year int, rec *Reconciler) ([]ExportRow, []SkippedRow, error) {
	if err := table.CheckYear(year); err != nil {
		return nil, nil, err
	}
	var rows []ExportRow
	var skipped []SkippedRow
	for _, r := range table.ForYear(year) {
		if err := r.Validate(); err != nil {
			skipped = append(skipped, SkippedRow{Record: r, Err: err})
			continue
		}
		country, err := rec.Canonicalize(r.Country)
		if err != nil {
			skipped = append(skipped, SkippedRow{Record: r, Err: err})
			continue
		}
		rows = append(rows, ExportRow{
			Country:       country,
			SourceCountry: r.Country,
			Year:          r.Year,
			MinTemp:       r.MinTemp,
			MaxTemp:       r.MaxTemp,
			MinPrec:       r.MinPrec,
			MaxPrec:       r.MaxPrec,
		})
	}
	return rows, skipped, nil
}
