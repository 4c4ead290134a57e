// Survivability scores how well plants tolerate each country's climate and
// exports the underlying tables.
package main

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/couchcryptid/plant-survivability-service/internal/app"
	"github.com/couchcryptid/plant-survivability-service/internal/config"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
	"github.com/couchcryptid/plant-survivability-service/internal/pipeline"
	"github.com/js-arias/command"
)

var cli = &command.Command{
	Usage: "survivability <command> [<argument>...]",
	Short: "plant survivability scoring from climate tolerance ranges",
	Long: `
Command survivability reads the same environment configuration as the
survivability server (DATA_SOURCE, CLIMATE_FILE, PLANTS_FILE, GEOJSON_DIR,
COUNTRY_ALIASES_FILE, COLOR_SCALE, ...) and runs one operation against the
loaded tables. Logs go to the standard error.
	`,
}

func init() {
	cli.Add(plantsCommand)
	cli.Add(scoreCommand)
	cli.Add(exportCommand)
	cli.Add(legendCommand)
	cli.Add(checkCommand)
	cli.Add(importCommand)
}

func main() {
	cli.Main()
}

// session is the loaded configuration, tables and service for one command.
type session struct {
	cfg    *config.Config
	tables *app.Tables
	svc    *pipeline.Service
}

func openSession(c *command.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := observability.NewLoggerTo(c.Stderr(), cfg)
	metrics := observability.NewMetrics()

	tables, err := app.LoadTables(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		tables: tables,
		svc:    app.NewService(cfg, tables, nil, nil, logger, metrics),
	}, nil
}

func (s *session) close() {
	_ = s.tables.Close()
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// yearOr returns the --year value when the flag was given, else def.
func yearOr(fs *flag.FlagSet, year, def int) int {
	if isSet(fs, "year") {
		return year
	}
	return def
}

// createOutput returns stdout when name is empty, else creates name.
func createOutput(c *command.Command, name string) (io.WriteCloser, error) {
	if name == "" {
		return nopCloser{c.Stdout()}, nil
	}
	return os.Create(name)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
