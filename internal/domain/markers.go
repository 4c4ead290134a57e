package domain

import (
	"context"
	"log/slog"
)

// Marker is a map pin for one of a plant's origin places.
type Marker struct {
	Place      string  `json:"place"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Label      string  `json:"label"`
	Popup      string  `json:"popup"`
	Confidence float64 `json:"confidence"`
}

// MarkerSet holds the markers for a plant and the places that could not be
// placed.
type MarkerSet struct {
	Plant      string   `json:"plant"`
	Markers    []Marker `json:"markers"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// PlaceMarkers geocodes every origin place of plant. A nil geocoder leaves
// all places unresolved; a failed lookup is logged and the place skipped
// (graceful degradation). Places are looked up in order, duplicates once.
func PlaceMarkers(ctx context.Context, plant Plant, geocoder Geocoder, logger *slog.Logger) MarkerSet {
	set := MarkerSet{Plant: plant.ID(), Markers: []Marker{}}
	seen := make(map[string]struct{}, len(plant.Origins))

	for _, place := range plant.Origins {
		if _, dup := seen[place]; dup {
			continue
		}
		seen[place] = struct{}{}

		if geocoder == nil {
			set.Unresolved = append(set.Unresolved, place)
			continue
		}

		result, err := geocoder.ForwardGeocode(ctx, place)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"plant", plant.ID(),
				"place", place,
				"error", err,
			)
			set.Unresolved = append(set.Unresolved, place)
			continue
		}
		if !result.Found() {
			set.Unresolved = append(set.Unresolved, place)
			continue
		}

		label := result.PlaceName
		if label == "" {
			label = place
		}
		set.Markers = append(set.Markers, Marker{
			Place:      place,
			Lat:        result.Lat,
			Lon:        result.Lon,
			Label:      label,
			Popup:      plant.ID() + ": " + label,
			Confidence: result.Confidence,
		})
	}
	return set
}
