package export

import (
	"io"

	"github.com/couchcryptid/plant-survivability-service/internal/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LegendCaption is the label under the colour bar.
const LegendCaption = "Survivability Score"

const legendSteps = 256

// Default legend size.
const (
	LegendWidth  = 5 * vg.Inch
	LegendHeight = 1.2 * vg.Inch
)

// colorBar draws the mapper's colours as adjacent vertical strips over [0, 1].
type colorBar struct {
	colors []domain.ColorValue
}

// DataRange implements the plot.DataRanger interface.
func (b *colorBar) DataRange() (xMin, xMax, yMin, yMax float64) {
	return 0, 1, 0, 1
}

// Plot implements the plot.Plotter interface.
func (b *colorBar) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	step := 1 / float64(len(b.colors))
	for i, col := range b.colors {
		x0 := trX(float64(i) * step)
		x1 := trX(float64(i+1) * step)
		pts := []vg.Point{
			{X: x0, Y: trY(0)},
			{X: x1, Y: trY(0)},
			{X: x1, Y: trY(1)},
			{X: x0, Y: trY(1)},
		}
		c.FillPolygon(col, pts)
	}
}

// WriteLegendPNG renders a horizontal colour bar for mapper with the score
// axis from 0 to 1 and writes it as PNG.
func WriteLegendPNG(w io.Writer, mapper *domain.ColorMapper, width, height vg.Length) error {
	p := plot.New()
	p.X.Label.Text = LegendCaption
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.HideY()
	p.Add(&colorBar{colors: mapper.Colors(legendSteps)})

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
