package main

import (
	"github.com/couchcryptid/plant-survivability-service/internal/export"
	"github.com/js-arias/command"
)

var exportCommand = &command.Command{
	Usage: "export [--year <year>] [--format csv|xlsx] [-o|--output <file>]",
	Short: "export the climate rows of a year",
	Long: `
Command export writes the climate rows of one year with canonical country
names. Rows whose country name is unknown are left out.

The flag --year selects the year; by default DEFAULT_YEAR clamped to the
table. The flag --format is "csv" (default) or "xlsx". The output goes to the
standard output unless --output, or -o, names a file.
	`,
	SetFlags: setExportFlags,
	Run:      runExport,
}

var (
	exportYear   int
	exportFormat string
	exportOutput string
)

func setExportFlags(c *command.Command) {
	c.Flags().IntVar(&exportYear, "year", 0, "")
	c.Flags().StringVar(&exportFormat, "format", export.FormatCSV, "")
	c.Flags().StringVar(&exportOutput, "output", "", "")
	c.Flags().StringVar(&exportOutput, "o", "", "")
}

func runExport(c *command.Command, args []string) error {
	if exportFormat != export.FormatCSV && exportFormat != export.FormatXLSX {
		return c.UsageError("flag --format must be csv or xlsx")
	}

	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	year := yearOr(c.Flags(), exportYear, s.svc.Defaults().Year)
	rows, err := s.svc.Export(year)
	if err != nil {
		return err
	}

	w, err := createOutput(c, exportOutput)
	if err != nil {
		return err
	}
	if err := export.Write(w, exportFormat, year, rows); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
