// Package app loads the input tables and wires the scoring service for the
// server and command-line entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/plant-survivability-service/internal/adapter/sqlstore"
	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/countryname"
	"github.com/couchcryptid/plant-survivability-service/internal/dataset"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/couchcryptid/plant-survivability-service/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// Tables holds everything loaded once at startup and shared read-only by
// every request.
type Tables struct {
	Plants     *domain.PlantCatalog
	Climate    *domain.ClimateTable
	Reconciler *domain.Reconciler
	Layers     *dataset.Layers
	Mapper     *domain.ColorMapper

	// Store is set when the tables came from a database.
	Store *sqlstore.Store
}

// LoadTables reads the plant and climate tables from the configured source,
// the country-name table with optional aliases, and the geometry layers.
func LoadTables(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Tables, error) {
	t := &Tables{}

	var err error
	switch cfg.DataSource {
	case config.SourceCSV:
		if t.Climate, err = dataset.LoadClimateFile(cfg.ClimateFile, cfg.ClimateDelimiter); err != nil {
			return nil, err
		}
		if t.Plants, err = dataset.LoadPlantsFile(cfg.PlantsFile); err != nil {
			return nil, err
		}
	case config.SourceSQLite, config.SourcePostgres:
		if t.Store, err = OpenStore(ctx, cfg, logger); err != nil {
			return nil, err
		}
		if t.Climate, err = t.Store.LoadClimate(ctx); err != nil {
			_ = t.Close()
			return nil, err
		}
		if t.Plants, err = t.Store.LoadPlants(ctx); err != nil {
			_ = t.Close()
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
	}

	names, err := LoadCountryNames(cfg.CountryAliasesFile)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	t.Reconciler = domain.NewReconciler(names)

	if t.Layers, err = dataset.LoadDir(cfg.GeoJSONDir); err != nil {
		_ = t.Close()
		return nil, err
	}

	gradient, err := domain.GradientByName(cfg.ColorScale)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	t.Mapper = domain.NewColorMapper(gradient)

	lo, hi, _ := t.Climate.YearBounds()
	logger.Info("tables loaded",
		"source", cfg.DataSource,
		"climate_rows", t.Climate.Len(),
		"min_year", lo,
		"max_year", hi,
		"plants", len(t.Plants.IDs()),
		"countries", names.Len(),
		"layers", t.Layers.Names(),
	)
	return t, nil
}

// OpenStore connects to the configured database and creates the schema.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sqlstore.Store, error) {
	driver := sqlstore.DriverSQLite
	if cfg.DataSource == config.SourcePostgres {
		driver = sqlstore.DriverPostgres
	}
	store, err := sqlstore.Open(ctx, driver, cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// LoadCountryNames returns the built-in country table, extended by the
// alias file at path when path is not empty.
func LoadCountryNames(path string) (*countryname.Table, error) {
	names := countryname.New()
	if path == "" {
		return names, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open country aliases: %w", err)
	}
	defer f.Close()
	return names.WithAliases(f)
}

// Close releases the database handle, if any.
func (t *Tables) Close() error {
	if t.Store == nil {
		return nil
	}
	return t.Store.Close()
}

// NewService wires a pipeline.Service over the loaded tables.
func NewService(cfg *config.Config, t *Tables, geocoder domain.Geocoder, publisher *pipeline.Publisher, logger *slog.Logger, metrics *observability.Metrics) *pipeline.Service {
	return pipeline.NewService(pipeline.Deps{
		Plants:        t.Plants,
		Climate:       t.Climate,
		Reconciler:    t.Reconciler,
		Layers:        t.Layers,
		Mapper:        t.Mapper,
		Scale:         cfg.ColorScale,
		Geocoder:      geocoder,
		Publisher:     publisher,
		Logger:        logger,
		Metrics:       metrics,
		Workers:       cfg.ScoreWorkers,
		DefaultYear:   cfg.DefaultYear,
		DefaultWeight: cfg.DefaultTempWeight,
		DefaultLayer:  cfg.GeoJSONDefault,
	})
}

// Readiness combines several readiness checks and reports every failure.
type Readiness []sharedobs.ReadinessChecker

// CheckReadiness runs every check in order.
func (r Readiness) CheckReadiness(ctx context.Context) error {
	var errs []error
	for _, c := range r {
		if c == nil {
			continue
		}
		if err := c.CheckReadiness(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
