package domain

import "context"

// GeocodingResult contains location data returned by a geocoding provider.
type GeocodingResult struct {
	Lat              float64
	Lon              float64
	FormattedAddress string
	PlaceName        string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Found reports whether the provider returned a location.
func (r GeocodingResult) Found() bool {
	return r.Lat != 0 || r.Lon != 0
}

// Geocoder resolves free-text place names to coordinates for map markers.
type Geocoder interface {
	// ForwardGeocode converts a place name to coordinates.
	ForwardGeocode(ctx context.Context, place string) (GeocodingResult, error)
}
