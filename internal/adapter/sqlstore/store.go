// Package sqlstore loads the climate and plant tables from a SQL database.
// Both SQLite (mattn/go-sqlite3) and PostgreSQL (lib/pq) are supported.
package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed sql/schema.sql
var schemaSQL string

//go:embed sql/select-climate.sql
var selectClimateSQL string

//go:embed sql/select-plants.sql
var selectPlantsSQL string

//go:embed sql/insert-climate.sql
var insertClimateSQL string

//go:embed sql/insert-plant.sql
var insertPlantSQL string

// Drivers accepted by Open.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Store reads and writes the input tables.
type Store struct {
	db     *sql.DB
	driver string
	logger *slog.Logger
}

// Open connects to the database and verifies connectivity.
func Open(ctx context.Context, driver, dsn string, logger *slog.Logger) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return New(db, driver, logger), nil
}

// New wraps an open database handle.
func New(db *sql.DB, driver string, logger *slog.Logger) *Store {
	return &Store{db: db, driver: driver, logger: logger}
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// CheckReadiness pings the database.
func (s *Store) CheckReadiness(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// LoadClimate returns the climate table in insertion order.
func (s *Store) LoadClimate(ctx context.Context) (*domain.ClimateTable, error) {
	rows, err := s.db.QueryContext(ctx, selectClimateSQL)
	if err != nil {
		return nil, fmt.Errorf("query climate: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("close climate rows", "error", err)
		}
	}()

	var out []domain.ClimateRecord
	for rows.Next() {
		var r domain.ClimateRecord
		if err := rows.Scan(&r.Country, &r.Year, &r.MinTemp, &r.MaxTemp, &r.MinPrec, &r.MaxPrec); err != nil {
			return nil, fmt.Errorf("scan climate: %w", err)
		}
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("load climate: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewClimateTable(out), nil
}

// LoadPlants returns the plant catalogue.
func (s *Store) LoadPlants(ctx context.Context) (*domain.PlantCatalog, error) {
	rows, err := s.db.QueryContext(ctx, selectPlantsSQL)
	if err != nil {
		return nil, fmt.Errorf("query plants: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			s.logger.Error("close plant rows", "error", err)
		}
	}()

	var out []domain.Plant
	for rows.Next() {
		var (
			p       domain.Plant
			origins string
		)
		if err := rows.Scan(&p.Species, &p.Variety, &p.Protein,
			&p.Ranges.Temperature.Min, &p.Ranges.Temperature.Max,
			&p.Ranges.Precipitation.Min, &p.Ranges.Precipitation.Max,
			&origins); err != nil {
			return nil, fmt.Errorf("scan plant: %w", err)
		}
		p.Origins = domain.SplitOrigins(origins)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewPlantCatalog(out)
}

// ImportClimate appends rows in one transaction, preserving their order.
func (s *Store) ImportClimate(ctx context.Context, records []domain.ClimateRecord) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) FROM climate").Scan(&next); err != nil {
			return fmt.Errorf("climate sequence: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, s.rebind(insertClimateSQL))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, r := range records {
			if _, err := stmt.ExecContext(ctx, r.Country, r.Year, r.MinTemp, r.MaxTemp, r.MinPrec, r.MaxPrec, next+i+1); err != nil {
				return fmt.Errorf("insert climate %s/%d: %w", r.Country, r.Year, err)
			}
		}
		return nil
	})
}

// ImportPlants inserts plants in one transaction.
func (s *Store) ImportPlants(ctx context.Context, plants []domain.Plant) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, s.rebind(insertPlantSQL))
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, p := range plants {
			if _, err := stmt.ExecContext(ctx, p.Species, p.Variety, p.Protein,
				p.Ranges.Temperature.Min, p.Ranges.Temperature.Max,
				p.Ranges.Precipitation.Min, p.Ranges.Precipitation.Max,
				strings.Join(p.Origins, ", ")); err != nil {
				return fmt.Errorf("insert plant %q: %w", p.ID(), err)
			}
		}
		return nil
	})
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.logger.Error("rollback failed", "error", rbErr)
		}
		return err
	}
	return tx.Commit()
}

// rebind rewrites "?" placeholders to "$n" for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
