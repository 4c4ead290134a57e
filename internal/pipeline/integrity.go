package pipeline

import (
	"sort"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
)

// LayerReport lists the problems found in one geometry layer.
type LayerReport struct {
	Layer string `json:"layer"`
	// Unmatched holds feature names that do not reconcile.
	Unmatched []string `json:"unmatched"`
	// NoData holds reconciled countries with no climate row in the year.
	NoData []domain.CanonicalName `json:"no_data"`
}

// IntegrityReport summarises how well the loaded tables join for one year.
type IntegrityReport struct {
	Year             int           `json:"year"`
	ClimateRows      int           `json:"climate_rows"`
	UnmatchedClimate []string      `json:"unmatched_climate"`
	Layers           []LayerReport `json:"layers"`
}

// Clean reports whether every name reconciled and every feature has data.
func (r IntegrityReport) Clean() bool {
	if len(r.UnmatchedClimate) > 0 {
		return false
	}
	for _, l := range r.Layers {
		if len(l.Unmatched) > 0 || len(l.NoData) > 0 {
			return false
		}
	}
	return true
}

// Check reports climate names (across all years) and geometry names that
// fail to reconcile, and geometry countries without a climate row in year.
func (s *Service) Check(year int) (IntegrityReport, error) {
	if err := s.climate.CheckYear(year); err != nil {
		return IntegrityReport{}, err
	}
	report := IntegrityReport{
		Year:             year,
		ClimateRows:      s.climate.Len(),
		UnmatchedClimate: []string{},
	}

	seen := make(map[string]struct{})
	for _, r := range s.climate.Rows() {
		if _, dup := seen[r.Country]; dup {
			continue
		}
		seen[r.Country] = struct{}{}
		if _, err := s.reconciler.Canonicalize(r.Country); err != nil {
			report.UnmatchedClimate = append(report.UnmatchedClimate, r.Country)
		}
	}
	sort.Strings(report.UnmatchedClimate)

	observed := make(map[domain.CanonicalName]struct{})
	for _, r := range s.climate.ForYear(year) {
		if c, err := s.reconciler.Canonicalize(r.Country); err == nil {
			observed[c] = struct{}{}
		}
	}

	for _, name := range s.layers.Names() {
		coll, err := s.layers.Get(name)
		if err != nil {
			return IntegrityReport{}, err
		}
		lr := LayerReport{Layer: name, Unmatched: []string{}, NoData: []domain.CanonicalName{}}
		for _, f := range coll.DomainFeatures() {
			c, err := s.reconciler.Canonicalize(f.Name)
			if err != nil {
				lr.Unmatched = append(lr.Unmatched, f.Name)
				continue
			}
			if _, ok := observed[c]; !ok {
				lr.NoData = append(lr.NoData, c)
			}
		}
		report.Layers = append(report.Layers, lr)
	}
	return report, nil
}
