package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
)

// GeoFeature is one GeoJSON feature. Geometry is kept as raw JSON; the
// service never inspects coordinates.
type GeoFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// Collection is a named GeoJSON FeatureCollection.
type Collection struct {
	Name      string       `json:"-"`
	Type      string       `json:"type"`
	Features  []GeoFeature `json:"features"`
	nameField string
}

// ReadCollection decodes a FeatureCollection and picks its name field:
// "NAME" when any feature carries it, otherwise "name".
func ReadCollection(r io.Reader, name string) (*Collection, error) {
	var c Collection
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode geojson %s: %w", name, err)
	}
	if c.Type != "FeatureCollection" {
		return nil, fmt.Errorf("geojson %s: expected FeatureCollection, got %q", name, c.Type)
	}
	c.Name = name
	c.nameField = "name"
	for _, f := range c.Features {
		if _, ok := f.Properties["NAME"]; ok {
			c.nameField = "NAME"
			break
		}
	}
	return &c, nil
}

// NameField returns the property used as the feature's country name.
func (c *Collection) NameField() string { return c.nameField }

// DomainFeatures reduces the collection to what the scoring engine needs.
func (c *Collection) DomainFeatures() []domain.Feature {
	out := make([]domain.Feature, len(c.Features))
	for i, f := range c.Features {
		name, _ := f.Properties[c.nameField].(string)
		out[i] = domain.Feature{Index: i, Name: name}
	}
	return out
}

// Styled returns a copy of the collection whose feature properties carry the
// render layer: "style", "highlight" and "tooltip" alongside the original
// properties. Features are matched by index.
func (c *Collection) Styled(layer domain.Layer) *Collection {
	out := &Collection{
		Name:      c.Name,
		Type:      c.Type,
		Features:  make([]GeoFeature, len(c.Features)),
		nameField: c.nameField,
	}
	byIndex := make(map[int]domain.FeatureLayer, len(layer.Features))
	for _, fl := range layer.Features {
		byIndex[fl.Index] = fl
	}
	for i, f := range c.Features {
		props := make(map[string]any, len(f.Properties)+3)
		for k, v := range f.Properties {
			props[k] = v
		}
		if fl, ok := byIndex[i]; ok {
			props["style"] = fl.Style
			props["highlight"] = fl.Highlight
			props["tooltip"] = fl.Tooltip
		}
		out.Features[i] = GeoFeature{Type: f.Type, Properties: props, Geometry: f.Geometry}
	}
	return out
}

// Layers holds the geometry collections found in a directory, by name.
type Layers struct {
	byName map[string]*Collection
	names  []string
}

// LoadDir reads every *.geojson file in dir. A layer's name is its file name
// without the extension.
func LoadDir(dir string) (*Layers, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.geojson"))
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no .geojson files in %s", dir)
	}
	l := &Layers{byName: make(map[string]*Collection, len(paths))}
	for _, p := range paths {
		c, err := loadCollection(p)
		if err != nil {
			return nil, err
		}
		l.byName[c.Name] = c
		l.names = append(l.names, c.Name)
	}
	sort.Strings(l.names)
	return l, nil
}

func loadCollection(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return ReadCollection(f, name)
}

// NewLayers indexes already-loaded collections.
func NewLayers(collections ...*Collection) *Layers {
	l := &Layers{byName: make(map[string]*Collection, len(collections))}
	for _, c := range collections {
		if _, dup := l.byName[c.Name]; dup {
			continue
		}
		l.byName[c.Name] = c
		l.names = append(l.names, c.Name)
	}
	sort.Strings(l.names)
	return l
}

// ErrUnknownLayer is returned for a geometry name that was not loaded.
var ErrUnknownLayer = errors.New("unknown geometry layer")

// Names returns the layer names in sorted order.
func (l *Layers) Names() []string { return append([]string(nil), l.names...) }

// Get returns the named layer.
func (l *Layers) Get(name string) (*Collection, error) {
	c, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	return c, nil
}

// Default returns preferred when it was loaded, else the first layer by name.
func (l *Layers) Default(preferred string) string {
	if _, ok := l.byName[preferred]; ok {
		return preferred
	}
	if len(l.names) == 0 {
		return ""
	}
	return l.names[0]
}
