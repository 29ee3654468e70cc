package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurve3DElevationRamp(t *testing.T) {
	t.Parallel()

	// Scenario 2 from spec §8: straight line length 10, elevation a=0,b=0.1,c=0,d=0.
	line := Line2D{Len: 10, Eps: 1e-9}
	defaultZero := 0.0
	height := NewStackedFunction([]StackedFunctionEntry{
		{SubDomain: Range{Min: 0, Max: 10}, Func: LinearFunction{DomainRange: Range{Min: 0, Max: 10}, Slope: 0.1, Intercept: 0}},
	})
	height.DefaultValue = &defaultZero
	torsion := NewStackedFunction(nil)
	zero := 0.0
	torsion.DefaultValue = &zero

	curve, err := NewCurve3D(line, height, torsion, AffineSequence2D{Transforms: []Affine2D{{}}})
	require.NoError(t, err)

	p0, err := curve.CalculatePoint(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, p0.Z, 1e-9)

	p10, err := curve.CalculatePoint(10)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p10.Z, 1e-9)
}

func TestCurve3DRejectsNonEnclosingHeightDomain(t *testing.T) {
	t.Parallel()

	line := Line2D{Len: 10, Eps: 1e-9}
	height := NewStackedFunction([]StackedFunctionEntry{
		{SubDomain: Range{Min: 0, Max: 5}, Func: LinearFunction{DomainRange: Range{Min: 0, Max: 5}, Slope: 0, Intercept: 0}},
	})
	torsion := NewStackedFunction(nil)
	zero := 0.0
	torsion.DefaultValue = &zero

	_, err := NewCurve3D(line, height, torsion, AffineSequence2D{Transforms: []Affine2D{{}}})
	assert.Error(t, err)
}
