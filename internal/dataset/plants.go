package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
)

var plantColumns = []string{"species", "variety", "min_temp", "max_temp", "min_prec", "max_prec"}

// ReadPlants parses the comma-separated plant table. The protein and country
// columns are optional; country holds a comma-separated list of origin
// places.
func ReadPlants(r io.Reader) ([]domain.Plant, error) {
	cr := newReader(r, ',')
	h, err := readHeader(cr, plantColumns...)
	if err != nil {
		return nil, fmt.Errorf("plant table: %w", err)
	}

	var plants []domain.Plant
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("plant table: %w", err)
		}
		line, _ := cr.FieldPos(0)
		p, err := parsePlantRow(h, row)
		if err != nil {
			return nil, fmt.Errorf("plant table line %d: %w", line, err)
		}
		plants = append(plants, p)
	}
	return plants, nil
}

func parsePlantRow(h header, row []string) (domain.Plant, error) {
	p := domain.Plant{
		Species: h.str(row, "species"),
		Variety: h.str(row, "variety"),
	}
	if p.Species == "" {
		return p, errors.New("empty species")
	}

	var err error
	if p.Ranges.Temperature.Min, err = h.float(row, "min_temp"); err != nil {
		return p, err
	}
	if p.Ranges.Temperature.Max, err = h.float(row, "max_temp"); err != nil {
		return p, err
	}
	if p.Ranges.Precipitation.Min, err = h.float(row, "min_prec"); err != nil {
		return p, err
	}
	if p.Ranges.Precipitation.Max, err = h.float(row, "max_prec"); err != nil {
		return p, err
	}
	if h.has("protein") && h.str(row, "protein") != "" {
		if p.Protein, err = h.float(row, "protein"); err != nil {
			return p, err
		}
	}
	if h.has("country") {
		p.Origins = domain.SplitOrigins(h.str(row, "country"))
	}
	return p, nil
}

// LoadPlantsFile reads the plant table at path into a PlantCatalog.
func LoadPlantsFile(path string) (*domain.PlantCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	plants, err := ReadPlants(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return domain.NewPlantCatalog(plants)
}
