package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/js-arias/command"
)

var scoreCommand = &command.Command{
	Usage: `score [--year <year>] [--weight <percent>]
	[--geometry <layer>] [--json] <plant>`,
	Short: "score every country for a plant",
	Long: `
Command score computes the survivability of a plant in every country of a
geometry layer for one year.

The argument is the plant identifier, as printed by the plants command
("species - variety").

The flag --year selects the climate year; by default DEFAULT_YEAR clamped to
the years in the climate table. The flag --weight sets the temperature weight
as an integer percent (0-100); precipitation receives the rest. The flag
--geometry selects the layer, by default GEOJSON_DEFAULT.

The output is a tab-delimited table with the following columns:

	feature  the feature name in the geometry layer
	country  the canonical country name, empty if the name is unknown
	score    the survivability score, or N/A
	color    the fill colour

followed by a summary of the scores. With --json the whole map result,
including the styled GeoJSON layer, is printed instead.
	`,
	SetFlags: setScoreFlags,
	Run:      runScore,
}

var (
	scoreYear     int
	scoreWeight   int
	scoreGeometry string
	scoreJSON     bool
)

func setScoreFlags(c *command.Command) {
	c.Flags().IntVar(&scoreYear, "year", 0, "")
	c.Flags().IntVar(&scoreWeight, "weight", 0, "")
	c.Flags().StringVar(&scoreGeometry, "geometry", "", "")
	c.Flags().BoolVar(&scoreJSON, "json", false, "")
}

func runScore(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting plant identifier")
	}

	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	req := scoreRequest(c.Flags(), s.svc.Defaults(), args[0])

	res, err := s.svc.Map(context.Background(), req, scoreGeometry)
	if err != nil {
		return err
	}

	if scoreJSON {
		enc := json.NewEncoder(c.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	tw := tabwriter.NewWriter(c.Stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "feature\tcountry\tscore\tcolor")
	for _, f := range res.Features {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Country, f.Tooltip.SurvivabilityScore, f.Style.FillColor)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printSummary(c, res.Plant, res.Year, res.Weights, res.Summary)
	return nil
}

// scoreRequest overrides the defaults with the flags that were given. Given
// values are passed through unchanged so the service rejects bad ones.
func scoreRequest(fs *flag.FlagSet, defaults domain.Request, plant string) domain.Request {
	req := defaults
	req.PlantID = plant
	req.Year = yearOr(fs, scoreYear, defaults.Year)
	if isSet(fs, "weight") {
		req.TemperatureWeight = scoreWeight
	}
	return req
}

func printSummary(c *command.Command, p domain.Plant, year int, w domain.WeightVector, sum domain.Summary) {
	fmt.Fprintf(c.Stdout(), "\n# %s, %d, temperature %d%%\n", p.ID(), year, w.TemperaturePercent())
	fmt.Fprintf(c.Stdout(), "# countries %d  mean %.3f  median %.3f  sd %.3f  min %.3f  max %.3f\n",
		sum.Count, sum.Mean, sum.Median, sum.StdDev, sum.Min, sum.Max)
}
