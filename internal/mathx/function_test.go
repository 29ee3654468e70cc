package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackedFunctionFirstWinsOnOverlap(t *testing.T) {
	t.Parallel()

	a := LinearFunction{DomainRange: Range{Min: 0, Max: 5}, Slope: 0, Intercept: 1}
	b := LinearFunction{DomainRange: Range{Min: 3, Max: 8}, Slope: 0, Intercept: 2}

	sf := NewStackedFunction([]StackedFunctionEntry{
		{SubDomain: a.DomainRange, Func: a},
		{SubDomain: b.DomainRange, Func: b},
	})

	v, err := sf.Value(4)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "overlap region should resolve to the first-registered sub-function")
}

func TestStackedFunctionGapReturnsOutOfDomainWithoutDefault(t *testing.T) {
	t.Parallel()

	a := LinearFunction{DomainRange: Range{Min: 0, Max: 2}, Slope: 0, Intercept: 1}
	b := LinearFunction{DomainRange: Range{Min: 5, Max: 8}, Slope: 0, Intercept: 2}
	sf := NewStackedFunction([]StackedFunctionEntry{
		{SubDomain: a.DomainRange, Func: a},
		{SubDomain: b.DomainRange, Func: b},
	})

	_, err := sf.Value(3.5)
	assert.Error(t, err)
}

func TestStackedFunctionValueOrNearestEndpoint(t *testing.T) {
	t.Parallel()

	a := LinearFunction{DomainRange: Range{Min: 2, Max: 5}, Slope: 1, Intercept: 0}
	sf := NewStackedFunction([]StackedFunctionEntry{{SubDomain: a.DomainRange, Func: a}})

	before, err := sf.ValueOrNearestEndpoint(0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, before)

	after, err := sf.ValueOrNearestEndpoint(10)
	require.NoError(t, err)
	assert.Equal(t, 5.0, after)
}

func TestCubicFunctionHorner(t *testing.T) {
	t.Parallel()

	f := CubicFunction{DomainRange: Range{Min: 0, Max: 10}, A: 1, B: -2, C: 3, D: 4}
	v, err := f.Value(2)
	require.NoError(t, err)
	assert.InDelta(t, 1*8-2*4+3*2+4, v, 1e-9)
}
