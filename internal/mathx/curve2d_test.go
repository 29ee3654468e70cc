package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine2DEndpoints(t *testing.T) {
	t.Parallel()

	l := Line2D{Len: 10, Eps: 1e-9}
	start, err := l.CalculatePointLocalCS(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, start.X, 1e-9)
	assert.InDelta(t, 0, start.Y, 1e-9)

	end, err := l.CalculatePointLocalCS(10)
	require.NoError(t, err)
	assert.InDelta(t, 10, end.X, 1e-9)
	assert.InDelta(t, 0, end.Y, 1e-9)

	_, err = l.CalculatePointLocalCS(10.1)
	assert.Error(t, err)
}

func TestArc2DQuarterCircle(t *testing.T) {
	t.Parallel()

	// Quarter circle of radius 10, length = pi*10/2.
	radius := 10.0
	length := radius * (3.14159265358979 / 2)
	a := Arc2D{Len: length, Curvature: 1 / radius, Eps: 1e-9}

	end, heading, err := a.CalculatePoseLocalCS(length)
	require.NoError(t, err)
	assert.InDelta(t, radius, end.X, 1e-6)
	assert.InDelta(t, radius, end.Y, 1e-6)
	assert.InDelta(t, 3.14159265358979/2, heading, 1e-6)
}

func TestSpiral2DDegeneratesToArcWhenConstantCurvature(t *testing.T) {
	t.Parallel()

	radius := 20.0
	length := 5.0
	spiral := Spiral2D{Len: length, CurvStart: 1 / radius, CurvEnd: 1 / radius, Eps: 1e-9}
	arc := Arc2D{Len: length, Curvature: 1 / radius, Eps: 1e-9}

	sp, sHeading, err := spiral.CalculatePoseLocalCS(length)
	require.NoError(t, err)
	ap, aHeading, err := arc.CalculatePoseLocalCS(length)
	require.NoError(t, err)

	assert.InDelta(t, ap.X, sp.X, 1e-4)
	assert.InDelta(t, ap.Y, sp.Y, 1e-4)
	assert.InDelta(t, aHeading, sHeading, 1e-6)
}

func TestCubicCurve2DWidthToZero(t *testing.T) {
	t.Parallel()

	// Scenario 3 from spec §8: width a=3.5, b=0, c=-0.035, d=0 over length 10.
	c := CubicCurve2D{Len: 10, A: 3.5, B: 0, C: -0.035, D: 0, Eps: 1e-9}

	atZero, err := c.CalculatePointLocalCS(0)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, atZero.Y, 1e-9)

	atTen, err := c.CalculatePointLocalCS(10)
	require.NoError(t, err)
	assert.InDelta(t, 0, atTen.Y, 1e-9)

	atFive, err := c.CalculatePointLocalCS(5)
	require.NoError(t, err)
	assert.InDelta(t, 2.625, atFive.Y, 1e-9)
}

func TestDiscretizePointsIncludesEndpoint(t *testing.T) {
	t.Parallel()

	samples := DiscretizePoints(10, 3)
	require.NotEmpty(t, samples)
	assert.InDelta(t, 0, samples[0], 1e-9)
	assert.InDelta(t, 10, samples[len(samples)-1], 1e-9)
}
