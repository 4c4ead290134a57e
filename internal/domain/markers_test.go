package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockGeocoder struct {
	results map[string]GeocodingResult
	errs    map[string]error
	calls   []string
}

func (m *mockGeocoder) ForwardGeocode(_ context.Context, place string) (GeocodingResult, error) {
	m.calls = append(m.calls, place)
	if err, ok := m.errs[place]; ok {
		return GeocodingResult{}, err
	}
	return m.results[place], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPlaceMarkers(t *testing.T) {
	geo := &mockGeocoder{
		results: map[string]GeocodingResult{
			"Italy":  {Lat: 41.9, Lon: 12.5, PlaceName: "Italy", Confidence: 1},
			"Greece": {Lat: 39.0, Lon: 22.0, Confidence: 0.8},
		},
		errs: map[string]error{"Tuscany": errors.New("timeout")},
	}
	plant := Plant{
		Species: "Kale",
		Variety: "Lacinato",
		Origins: []string{"Italy", "Greece", "Tuscany", "Italy", "Lemuria"},
	}

	set := PlaceMarkers(context.Background(), plant, geo, discardLogger())

	assert.Equal(t, "Kale - Lacinato", set.Plant)
	assert.Equal(t, []string{"Italy", "Greece", "Tuscany", "Lemuria"}, geo.calls, "duplicates looked up once")

	require.Len(t, set.Markers, 2)
	assert.Equal(t, Marker{
		Place: "Italy", Lat: 41.9, Lon: 12.5, Label: "Italy",
		Popup: "Kale - Lacinato: Italy", Confidence: 1,
	}, set.Markers[0])
	assert.Equal(t, "Greece", set.Markers[1].Label, "falls back to the place text")

	assert.Equal(t, []string{"Tuscany", "Lemuria"}, set.Unresolved)
}

func TestPlaceMarkers_NilGeocoder(t *testing.T) {
	plant := Plant{Species: "Bean", Origins: []string{"Mexico", "Peru"}}

	set := PlaceMarkers(context.Background(), plant, nil, discardLogger())

	assert.Empty(t, set.Markers)
	assert.NotNil(t, set.Markers)
	assert.Equal(t, []string{"Mexico", "Peru"}, set.Unresolved)
}
