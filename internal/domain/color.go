package domain

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/blind"
)

// lutSize is the number of discrete colours in a ColorMapper, matching the
// resolution of the dashboard's original colormap.
const lutSize = 256

// ColorValue is an 8-bit RGBA colour.
type ColorValue struct {
	R, G, B, A uint8
}

// NoDataColor marks countries without a matched observation. It is never
// produced by a scale, so "no data" cannot be mistaken for a low score.
var NoDataColor = ColorValue{R: 128, G: 128, B: 128, A: 255}

// Hex returns the colour as "#rrggbb".
func (c ColorValue) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS returns the colour as "rgba(r, g, b, a)" with alpha in [0, 1].
func (c ColorValue) CSS() string {
	a := strconv.FormatFloat(math.Round(float64(c.A)/255*1000)/1000, 'f', -1, 64)
	if !strings.Contains(a, ".") {
		a += ".0"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

// RGBA implements color.Color.
func (c ColorValue) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func toColorValue(c color.Color) ColorValue {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ColorValue{R: n.R, G: n.G, B: n.B, A: n.A}
}

// A Gradient maps a value in [0, 1] to a colour.
type Gradient interface {
	Gradient(v float64) color.Color
}

// RdYlGn is the ColorBrewer red-yellow-green diverging scheme: 0 is dark
// red, 0.5 pale yellow and 1 dark green.
type RdYlGn struct{}

var rdYlGnAnchors = [...][3]float64{
	{0.6470588235294118, 0.0, 0.14901960784313725},
	{0.8431372549019608, 0.18823529411764706, 0.15294117647058825},
	{0.9568627450980393, 0.42745098039215684, 0.2627450980392157},
	{0.9921568627450981, 0.6823529411764706, 0.3803921568627451},
	{0.996078431372549, 0.8784313725490196, 0.5450980392156862},
	{1.0, 1.0, 0.7490196078431373},
	{0.8509803921568627, 0.9372549019607843, 0.5450980392156862},
	{0.6509803921568628, 0.8509803921568627, 0.41568627450980394},
	{0.4, 0.7411764705882353, 0.38823529411764707},
	{0.10196078431372549, 0.596078431372549, 0.3137254901960784},
	{0.0, 0.40784313725490196, 0.21568627450980393},
}

func (RdYlGn) Gradient(v float64) color.Color {
	v = clamp01(v)
	segments := float64(len(rdYlGnAnchors) - 1)
	pos := v * segments
	i := int(math.Floor(pos))
	if i >= len(rdYlGnAnchors)-1 {
		i = len(rdYlGnAnchors) - 2
	}
	f := pos - float64(i)

	var ch [3]uint8
	for k := range ch {
		lo, hi := rdYlGnAnchors[i][k], rdYlGnAnchors[i+1][k]
		ch[k] = uint8(math.Round((lo + (hi-lo)*f) * 255))
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
}

// Iridescent is Paul Tol's colour-blind-safe sequential scheme.
type Iridescent struct{}

func (Iridescent) Gradient(v float64) color.Color {
	return blind.Sequential(blind.Iridescent, clamp01(v))
}

// GradientByName returns the named scale: "rdylgn" (default) or "iridescent".
func GradientByName(name string) (Gradient, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rdylgn":
		return RdYlGn{}, nil
	case "iridescent":
		return Iridescent{}, nil
	}
	return nil, fmt.Errorf("unknown colour scale %q", name)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorMapper converts survivability scores to colours through a fixed
// lookup table over the domain [0, 1].
type ColorMapper struct {
	lut [lutSize]ColorValue
}

// NewColorMapper samples g at lutSize evenly spaced points.
func NewColorMapper(g Gradient) *ColorMapper {
	m := &ColorMapper{}
	for i := range m.lut {
		m.lut[i] = toColorValue(g.Gradient(float64(i) / (lutSize - 1)))
	}
	return m
}

// Position returns the lookup-table index for score. It is non-decreasing
// in score; NaN maps to 0.
func (m *ColorMapper) Position(score float64) int {
	i := int(math.Floor(clamp01(score) * lutSize))
	return min(i, lutSize-1)
}

// ToColor returns the colour for score.
func (m *ColorMapper) ToColor(score float64) ColorValue {
	return m.lut[m.Position(score)]
}

// Colors returns n colours evenly spread over the scale, low to high.
func (m *ColorMapper) Colors(n int) []ColorValue {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []ColorValue{m.ToColor(1)}
	}
	out := make([]ColorValue, n)
	for i := range out {
		out[i] = m.ToColor(float64(i) / float64(n-1))
	}
	return out
}
