package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeCurve2D_TwoLines(t *testing.T) {
	composite := CompositeCurve2D{
		Eps: MinTolerance,
		Segments: []CompositeSegment{
			{
				Curve:     Line2D{Len: 10, Eps: MinTolerance},
				StartS:    0,
				Placement: AffineSequence2D{Transforms: []Affine2D{{}}},
			},
			{
				Curve:     Line2D{Len: 10, Eps: MinTolerance},
				StartS:    10,
				Placement: AffineSequence2D{Transforms: []Affine2D{{Translation: Vector2D{X: 10}}}},
			},
		},
	}

	assert.InDelta(t, 20, composite.Length(), 1e-9)

	p0, err := composite.CalculatePointLocalCS(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, p0.X, 1e-9)

	p10, err := composite.CalculatePointLocalCS(10)
	require.NoError(t, err)
	assert.InDelta(t, 10, p10.X, 1e-9)

	p20, err := composite.CalculatePointLocalCS(20)
	require.NoError(t, err)
	assert.InDelta(t, 20, p20.X, 1e-9)
}
