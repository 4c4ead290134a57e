package main

import (
	"context"
	"fmt"

	"github.com/couchcryptid/plant-survivability-service/internal/app"
	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/dataset"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/js-arias/command"
)

var importCommand = &command.Command{
	Usage: "import [--climate <file>] [--plants <file>]",
	Short: "load the CSV tables into the database",
	Long: `
Command import reads the climate and plant CSV tables and appends them to the
database selected by DATA_SOURCE (sqlite or postgres) and DATABASE_DSN. The
schema is created when missing.

The flags --climate and --plants name the input files; by default
CLIMATE_FILE and PLANTS_FILE. The climate file is read with
CLIMATE_DELIMITER.
	`,
	SetFlags: setImportFlags,
	Run:      runImport,
}

var (
	importClimate string
	importPlants  string
)

func setImportFlags(c *command.Command) {
	c.Flags().StringVar(&importClimate, "climate", "", "")
	c.Flags().StringVar(&importPlants, "plants", "", "")
}

func runImport(c *command.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DataSource == config.SourceCSV {
		return c.UsageError("DATA_SOURCE must be sqlite or postgres")
	}
	if importClimate == "" {
		importClimate = cfg.ClimateFile
	}
	if importPlants == "" {
		importPlants = cfg.PlantsFile
	}

	climate, err := dataset.LoadClimateFile(importClimate, cfg.ClimateDelimiter)
	if err != nil {
		return err
	}
	plants, err := dataset.LoadPlantsFile(importPlants)
	if err != nil {
		return err
	}

	ctx := context.Background()
	logger := observability.NewLoggerTo(c.Stderr(), cfg)
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ImportClimate(ctx, climate.Rows()); err != nil {
		return err
	}
	if err := store.ImportPlants(ctx, plants.Plants()); err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "imported %d climate rows and %d plants\n", climate.Len(), len(plants.IDs()))
	return nil
}
