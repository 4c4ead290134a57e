// Package pipeline orchestrates one map computation: validate the request,
// score every country, style the geometry layer and publish a snapshot.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/plant-survivability-service/internal/dataset"
	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"github.com/couchcryptid/plant-survivability-service/internal/observability"
)

// LegendCaption labels the colour scale.
const LegendCaption = "Survivability Score"

const legendStops = 11

// Deps are the loaded tables and collaborators a Service works with.
// Geocoder and Publisher are optional.
type Deps struct {
	Plants     *domain.PlantCatalog
	Climate    *domain.ClimateTable
	Reconciler *domain.Reconciler
	Layers     *dataset.Layers
	Mapper     *domain.ColorMapper
	Scale      string
	Geocoder   domain.Geocoder
	Publisher  *Publisher
	Logger     *slog.Logger
	Metrics    *observability.Metrics

	Workers       int
	DefaultYear   int
	DefaultWeight int
	DefaultLayer  string
}

// Service answers plant, year, geometry, map, export and marker queries
// against immutable tables. It is safe for concurrent use.
type Service struct {
	plants     *domain.PlantCatalog
	climate    *domain.ClimateTable
	reconciler *domain.Reconciler
	layers     *dataset.Layers
	mapper     *domain.ColorMapper
	scale      string
	geocoder   domain.Geocoder
	publisher  *Publisher
	logger     *slog.Logger
	metrics    *observability.Metrics

	workers       int
	defaultYear   int
	defaultWeight int
	defaultLayer  string
}

// NewService creates a Service from d.
func NewService(d Deps) *Service {
	workers := d.Workers
	if workers < 1 {
		workers = 1
	}
	return &Service{
		plants:        d.Plants,
		climate:       d.Climate,
		reconciler:    d.Reconciler,
		layers:        d.Layers,
		mapper:        d.Mapper,
		scale:         d.Scale,
		geocoder:      d.Geocoder,
		publisher:     d.Publisher,
		logger:        d.Logger,
		metrics:       d.Metrics,
		workers:       workers,
		defaultYear:   d.DefaultYear,
		defaultWeight: d.DefaultWeight,
		defaultLayer:  d.Layers.Default(d.DefaultLayer),
	}
}

// Mapper returns the colour mapper used for every layer.
func (s *Service) Mapper() *domain.ColorMapper { return s.mapper }

// Plants returns the plant catalogue sorted by identifier.
func (s *Service) Plants() []domain.Plant { return s.plants.Plants() }

// YearRange describes the year selector.
type YearRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Default int `json:"default"`
}

// Years returns the climate table's year bounds and the default year
// clamped into them.
func (s *Service) Years() (YearRange, error) {
	lo, hi, err := s.climate.YearBounds()
	if err != nil {
		return YearRange{}, err
	}
	return YearRange{Min: lo, Max: hi, Default: s.climate.ClampYear(s.defaultYear)}, nil
}

// Defaults returns the initial request for the selectors.
func (s *Service) Defaults() domain.Request {
	req := domain.Request{Year: s.climate.ClampYear(s.defaultYear), TemperatureWeight: s.defaultWeight}
	if ids := s.plants.IDs(); len(ids) > 0 {
		req.PlantID = ids[0]
	}
	return req
}

// GeometryList describes the available geometry layers.
type GeometryList struct {
	Names   []string `json:"names"`
	Default string   `json:"default"`
}

// Geometries returns the loaded layer names.
func (s *Service) Geometries() GeometryList {
	return GeometryList{Names: s.layers.Names(), Default: s.defaultLayer}
}

// Legend is the colour scale shown next to the map.
type Legend struct {
	Caption string   `json:"caption"`
	Scale   string   `json:"scale"`
	Min     float64  `json:"min"`
	Max     float64  `json:"max"`
	Colors  []string `json:"colors"`
	NoData  string   `json:"no_data"`
}

// Legend returns evenly spaced colours from 0 to 1.
func (s *Service) Legend() Legend {
	colors := s.mapper.Colors(legendStops)
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = c.Hex()
	}
	return Legend{
		Caption: LegendCaption,
		Scale:   s.scale,
		Min:     0,
		Max:     1,
		Colors:  hex,
		NoData:  domain.NoDataColor.Hex(),
	}
}

// MapResult is everything the renderer needs for one request.
type MapResult struct {
	Plant     domain.Plant          `json:"plant"`
	Year      int                   `json:"year"`
	Weights   domain.WeightVector   `json:"weights"`
	Geometry  string                `json:"geometry"`
	Layer     *dataset.Collection   `json:"layer"`
	Features  []domain.FeatureLayer `json:"features"`
	Legend    Legend                `json:"legend"`
	Summary   domain.Summary        `json:"summary"`
	Unmatched []string              `json:"unmatched,omitempty"`
	Snapshot  string                `json:"snapshot_id"`
}

// Map validates req, scores every country for the selected year and styles
// the named geometry layer (the default layer when geometry is empty).
// Request errors are returned before any scoring work.
func (s *Service) Map(ctx context.Context, req domain.Request, geometry string) (MapResult, error) {
	start := time.Now()
	res, err := s.computeMap(ctx, req, geometry)
	s.metrics.Requests.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		s.logger.Warn("map request rejected",
			"plant", req.PlantID,
			"year", req.Year,
			"temp_weight", req.TemperatureWeight,
			"geometry", geometry,
			"error", err,
		)
		return MapResult{}, err
	}
	s.metrics.RequestDuration.Observe(time.Since(start).Seconds())
	return res, nil
}

func (s *Service) computeMap(ctx context.Context, req domain.Request, geometry string) (MapResult, error) {
	resolved, err := domain.Resolve(req, s.plants, s.climate)
	if err != nil {
		return MapResult{}, err
	}
	if geometry == "" {
		geometry = s.defaultLayer
	}
	coll, err := s.layers.Get(geometry)
	if err != nil {
		return MapResult{}, err
	}

	scores, err := domain.ScoreAll(ctx, resolved.Plant.Ranges, resolved.Year, resolved.Weights, s.climate, s.reconciler, s.workers)
	if err != nil {
		return MapResult{}, err
	}
	for _, sk := range scores.Skipped {
		s.logger.Debug("climate row not scored", "country", sk.Record.Country, "year", sk.Record.Year, "error", sk.Err)
	}
	s.metrics.UnmatchedNames.WithLabelValues("climate").Add(float64(len(scores.Skipped)))
	s.metrics.CountriesScored.Observe(float64(len(scores.Scores)))

	layer := domain.BuildLayer(coll.DomainFeatures(), scores, s.reconciler, s.mapper)
	unmatched := make([]string, 0, len(layer.Misses))
	for _, m := range layer.Misses {
		s.logger.Debug("feature rendered without data", "country", m.Feature.Name, "geometry", geometry, "error", m.Err)
		if errors.Is(m.Err, domain.ErrUnknownCountry) {
			s.metrics.UnmatchedNames.WithLabelValues("geometry").Inc()
		}
		unmatched = append(unmatched, m.Feature.Name)
	}

	snap := domain.NewSnapshot(resolved.Plant.ID(), s.scale, scores)
	if s.publisher != nil {
		s.publisher.Enqueue(snap)
	}

	return MapResult{
		Plant:     resolved.Plant,
		Year:      resolved.Year,
		Weights:   resolved.Weights,
		Geometry:  geometry,
		Layer:     coll.Styled(layer),
		Features:  layer.Features,
		Legend:    s.Legend(),
		Summary:   snap.Summary,
		Unmatched: unmatched,
		Snapshot:  snap.ID,
	}, nil
}

// Export returns the year's climate rows with canonical country names.
func (s *Service) Export(year int) ([]domain.ExportRow, error) {
	rows, skipped, err := domain.BuildExport(s.climate, year, s.reconciler)
	if err != nil {
		return nil, err
	}
	for _, sk := range skipped {
		s.logger.Debug("climate row not exported", "country", sk.Record.Country, "year", year, "error", sk.Err)
	}
	s.metrics.UnmatchedNames.WithLabelValues("climate").Add(float64(len(skipped)))
	return rows, nil
}

// Markers geocodes the origin places of a plant. Geocoding failures leave
// places unresolved; only an unknown plant is an error.
func (s *Service) Markers(ctx context.Context, plantID string) (domain.MarkerSet, error) {
	plant, err := s.plants.Lookup(plantID)
	if err != nil {
		return domain.MarkerSet{}, err
	}
	return domain.PlaceMarkers(ctx, plant, s.geocoder, s.logger), nil
}

// CheckReadiness reports the snapshot publisher's state; a service without
// a publisher is always ready once constructed.
func (s *Service) CheckReadiness(ctx context.Context) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.CheckReadiness(ctx)
}

// Outcome classifies a map request error for metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrUnknownPlant), errors.Is(err, dataset.ErrUnknownLayer):
		return "not_found"
	case errors.Is(err, domain.ErrDegenerateRange):
		return "unprocessable"
	case errors.Is(err, domain.ErrInvalidWeightVector), errors.Is(err, domain.ErrYearOutOfBounds), errors.Is(err, domain.ErrInvalidRange):
		return "invalid"
	default:
		return "error"
	}
}
