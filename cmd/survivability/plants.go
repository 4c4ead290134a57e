package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/js-arias/command"
)

var plantsCommand = &command.Command{
	Usage: "plants",
	Short: "list the plant catalogue",
	Long: `
Command plants prints every plant in the catalogue as a tab-delimited table
with the following columns:

	plant     the identifier, "species - variety"
	protein   protein content
	min-temp  lower temperature tolerance
	max-temp  upper temperature tolerance
	min-prec  lower precipitation tolerance
	max-prec  upper precipitation tolerance
	origins   comma-separated origin places
	`,
	Run: runPlants,
}

func runPlants(c *command.Command, args []string) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.close()

	tw := tabwriter.NewWriter(c.Stdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "plant\tprotein\tmin-temp\tmax-temp\tmin-prec\tmax-prec\torigins")
	for _, p := range s.svc.Plants() {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\t%g\t%s\n",
			p.ID(), p.Protein,
			p.Ranges.Temperature.Min, p.Ranges.Temperature.Max,
			p.Ranges.Precipitation.Min, p.Ranges.Precipitation.Max,
			strings.Join(p.Origins, ", "))
	}
	return tw.Flush()
}
