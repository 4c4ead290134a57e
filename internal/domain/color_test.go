package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorMapper_RdYlGnEndpoints(t *testing.T) {
	m := NewColorMapper(RdYlGn{})

	assert.Equal(t, "#a50026", m.ToColor(0).Hex(), "lowest score is dark red")
	assert.Equal(t, "#006837", m.ToColor(1).Hex(), "highest score is dark green")
	assert.Equal(t, "rgba(165, 0, 38, 1.0)", m.ToColor(0).CSS())
}

func TestColorMapper_Deterministic(t *testing.T) {
	a := NewColorMapper(RdYlGn{})
	b := NewColorMapper(RdYlGn{})

	for _, s := range []float64{0, 0.125, 0.333, 0.5, 0.65, 0.999, 1} {
		assert.Equal(t, a.ToColor(s), a.ToColor(s))
		assert.Equal(t, a.ToColor(s), b.ToColor(s))
	}
}

func TestColorMapper_PositionMonotonic(t *testing.T) {
	m := NewColorMapper(RdYlGn{})

	prev := -1
	for i := 0; i <= 1000; i++ {
		pos := m.Position(float64(i) / 1000)
		require.GreaterOrEqual(t, pos, prev)
		prev = pos
	}
	assert.Equal(t, 0, m.Position(0))
	assert.Equal(t, lutSize-1, m.Position(1))
}

func TestColorMapper_ClampsOutOfDomain(t *testing.T) {
	m := NewColorMapper(RdYlGn{})

	assert.Equal(t, m.ToColor(0), m.ToColor(-0.5))
	assert.Equal(t, m.ToColor(1), m.ToColor(7))
}

func TestColorMapper_RedToGreen(t *testing.T) {
	m := NewColorMapper(RdYlGn{})
	low, high := m.ToColor(0.05), m.ToColor(0.95)

	assert.Greater(t, low.R, low.G, "low scores are red dominated")
	assert.Greater(t, high.G, high.R, "high scores are green dominated")
}

func TestColorMapper_NoDataIsNotOnScale(t *testing.T) {
	for _, g := range []Gradient{RdYlGn{}, Iridescent{}} {
		m := NewColorMapper(g)
		for i := 0; i < lutSize; i++ {
			assert.NotEqual(t, NoDataColor, m.lut[i])
		}
	}
}

func TestColorMapper_Colors(t *testing.T) {
	m := NewColorMapper(RdYlGn{})
	colors := m.Colors(3)

	require.Len(t, colors, 3)
	assert.Equal(t, m.ToColor(0), colors[0])
	assert.Equal(t, m.ToColor(0.5), colors[1])
	assert.Equal(t, m.ToColor(1), colors[2])
	assert.Nil(t, m.Colors(0))
}

func TestGradientByName(t *testing.T) {
	g, err := GradientByName("")
	require.NoError(t, err)
	assert.IsType(t, RdYlGn{}, g)

	g, err = GradientByName("Iridescent")
	require.NoError(t, err)
	assert.IsType(t, Iridescent{}, g)

	_, err = GradientByName("viridis")
	require.Error(t, err)
}
