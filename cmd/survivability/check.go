package main

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
)

var checkCommand = &command.Command{
	Usage: "check [--year <year>]",
	Short: "report country names that do not join",
	Long: `
Command check reports the climate country names that cannot be reconciled
(across all years), and for each geometry layer the feature names that cannot
be reconciled and the countries without a climate row in the selected year.

The flag --year selects the year; by default DEFAULT_YEAR clamped to the
table. The command fails when any problem is found, so it can guard a data
update. Unknown names can be fixed with an alias file (COUNTRY_ALIASES_FILE).
	`,
	SetFlags: setCheckFlags,
	Run:      runCheck,
}

var checkYear int

func setCheckFlags(c *command.Command) {
	c.Flags().IntVar(&checkYear, "year", 0, "")
}

func runCheck(c *command.Command, args []string) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	year := yearOr(c.Flags(), checkYear, s.svc.Defaults().Year)
	report, err := s.svc.Check(year)
	if err != nil {
		return err
	}

	out := c.Stdout()
	fmt.Fprintf(out, "climate rows: %d, year %d\n", report.ClimateRows, report.Year)
	fmt.Fprintf(out, "unmatched climate names (%d): %s\n", len(report.UnmatchedClimate), strings.Join(report.UnmatchedClimate, "; "))
	problems := len(report.UnmatchedClimate)
	for _, l := range report.Layers {
		noData := make([]string, len(l.NoData))
		for i, n := range l.NoData {
			noData[i] = string(n)
		}
		fmt.Fprintf(out, "layer %s\n", l.Layer)
		fmt.Fprintf(out, "  unmatched features (%d): %s\n", len(l.Unmatched), strings.Join(l.Unmatched, "; "))
		fmt.Fprintf(out, "  no data in %d (%d): %s\n", report.Year, len(l.NoData), strings.Join(noData, "; "))
		problems += len(l.Unmatched) + len(l.NoData)
	}

	if !report.Clean() {
		return fmt.Errorf("integrity check found %d problems", problems)
	}
	fmt.Fprintln(out, "ok")
	return nil
}
