package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// NotAvailable is the tooltip value shown for unmatched countries.
const NotAvailable = "N/A"

// Style is the per-feature style record handed to the map renderer.
type Style struct {
	FillColor   string  `json:"fillColor"`
	Color       string  `json:"color"`
	Weight      float64 `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// HighlightStyle is applied by the renderer on hover.
var HighlightStyle = Style{Color: "black", Weight: 2, FillOpacity: 1}

func baseStyle(fill ColorValue) Style {
	return Style{FillColor: fill.Hex(), Color: "black", Weight: 1, FillOpacity: 0.7}
}

// OptionalFloat is a tooltip number that may be absent.
type OptionalFloat struct {
	Value float64
	Valid bool
}

// Some wraps a present value.
func Some(v float64) OptionalFloat { return OptionalFloat{Value: v, Valid: true} }

// String formats the value, or NotAvailable when absent.
func (o OptionalFloat) String() string {
	if !o.Valid {
		return NotAvailable
	}
	return strconv.FormatFloat(o.Value, 'f', -1, 64)
}

// MarshalJSON emits a number, or the string "N/A" when absent.
func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return json.Marshal(NotAvailable)
	}
	return json.Marshal(o.Value)
}

// UnmarshalJSON accepts a number or "N/A".
func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != NotAvailable {
			return fmt.Errorf("unexpected tooltip value %q", s)
		}
		*o = OptionalFloat{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

// Tooltip is the attribute bag shown when hovering a country.
type Tooltip struct {
	Country            string        `json:"country"`
	MinTemp            OptionalFloat `json:"min_temp"`
	MaxTemp            OptionalFloat `json:"max_temp"`
	MinPrec            OptionalFloat `json:"min_prec"`
	MaxPrec            OptionalFloat `json:"max_prec"`
	SurvivabilityScore OptionalFloat `json:"survivability_score"`
}

// FeatureLayer is the render output for one geometry feature.
type FeatureLayer struct {
	Index     int           `json:"index"`
	Name      string        `json:"name"`
	Country   CanonicalName `json:"country,omitempty"`
	Matched   bool          `json:"matched"`
	Style     Style         `json:"style"`
	Highlight Style         `json:"highlight"`
	Tooltip   Tooltip       `json:"tooltip"`
}

// Miss explains why a feature was rendered as "no data".
type Miss struct {
	Feature Feature
	Err     error
}

// Layer is the styled geometry collection for one request.
type Layer struct {
	Features []FeatureLayer
	Misses   []Miss
}

// BuildLayer styles every feature from the precomputed score table. Both the
// fill colour and the tooltip score read the same ScoreTable entry.
//
// Features whose names do not reconcile (ErrUnknownCountry) or whose country
// has no observation (ErrNoObservation) get NoDataColor and N/A tooltips.
func BuildLayer(features []Feature, scores ScoreTable, rec *Reconciler, mapper *ColorMapper) Layer {
	layer := Layer{Features: make([]FeatureLayer, 0, len(features))}
	for _, f := range features {
		fl := FeatureLayer{
			Index:     f.Index,
			Name:      f.Name,
			Style:     baseStyle(NoDataColor),
			Highlight: HighlightStyle,
			Tooltip:   Tooltip{Country: f.Name},
		}

		country, err := rec.Canonicalize(f.Name)
		if err != nil {
			layer.Misses = append(layer.Misses, Miss{Feature: f, Err: err})
			layer.Features = append(layer.Features, fl)
			continue
		}
		fl.Country = country

		cs, ok := scores.Lookup(country)
		if !ok {
			layer.Misses = append(layer.Misses, Miss{
				Feature: f,
				Err:     fmt.Errorf("%w: %s in %d", ErrNoObservation, country, scores.Year),
			})
			layer.Features = append(layer.Features, fl)
			continue
		}

		fl.Matched = true
		fl.Style = baseStyle(mapper.ToColor(cs.Score))
		fl.Tooltip = Tooltip{
			Country:            f.Name,
			MinTemp:            Some(cs.Record.MinTemp),
			MaxTemp:            Some(cs.Record.MaxTemp),
			MinPrec:            Some(cs.Record.MinPrec),
			MaxPrec:            Some(cs.Record.MaxPrec),
			SurvivabilityScore: Some(cs.Score),
		}
		layer.Features = append(layer.Features, fl)
	}
	return layer
}
