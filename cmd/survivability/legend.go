package main

import (
	"os"

	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/export"
	"github.com/js-arias/command"
)

var legendCommand = &command.Command{
	Usage: "legend [--scale <color-scale>] -o|--output <file>",
	Short: "draw the colour legend as PNG",
	Long: `
Command legend draws the score colour bar, from 0 to 1, with the caption
"Survivability Score".

The flag --output, or -o, is required and names the PNG file. The flag
--scale selects the colour scale; by default COLOR_SCALE. Valid scales are:

	- rdylgn      red (low) through yellow to green (high)
	- iridescent  Paul Tol's colour-blind safe sequential scale
	`,
	SetFlags: setLegendFlags,
	Run:      runLegend,
}

var (
	legendOutput string
	legendScale  string
)

func setLegendFlags(c *command.Command) {
	c.Flags().StringVar(&legendOutput, "output", "", "")
	c.Flags().StringVar(&legendOutput, "o", "", "")
	c.Flags().StringVar(&legendScale, "scale", "", "")
}

func runLegend(c *command.Command, args []string) error {
	if legendOutput == "" {
		return c.UsageError("expecting output file, flag --output")
	}

	scale := legendScale
	if scale == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		scale = cfg.ColorScale
	}
	gradient, err := domain.GradientByName(scale)
	if err != nil {
		return err
	}

	f, err := os.Create(legendOutput)
	if err != nil {
		return err
	}
	if err := export.WriteLegendPNG(f, domain.NewColorMapper(gradient), export.LegendWidth, export.LegendHeight); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
