package mathx

import (
	"math"
	"sort"
)

// UnivariateFunction is the contract shared by every scalar function of one
// variable over a finite domain (§4.1).
type UnivariateFunction interface {
	// Domain returns the function's domain [a, b].
	Domain() Range
	// Value evaluates the function at x, failing with ErrOutOfDomain if x
	// falls outside Domain().
	Value(x float64) (float64, error)
	// ValueInFuzzy widens the domain check by tol before evaluating.
	ValueInFuzzy(x, tol float64) (float64, error)
}

// LinearFunction is slope*x + intercept over domain.
type LinearFunction struct {
	DomainRange       Range
	Slope, Intercept  float64
}

// IdentityLinearFunction is the axis-x identity: slope=1, intercept=0, domain=(-inf,+inf).
func IdentityLinearFunction() LinearFunction {
	return LinearFunction{
		Slope:       1,
		Intercept:   0,
		DomainRange: Range{Min: math.Inf(-1), Max: math.Inf(1)},
	}
}

func (f LinearFunction) Domain() Range { return f.DomainRange }

func (f LinearFunction) Value(x float64) (float64, error) {
	if !f.DomainRange.Contains(x) {
		return 0, &ErrOutOfDomain{X: x, Range: f.DomainRange}
	}
	return f.Slope*x + f.Intercept, nil
}

func (f LinearFunction) ValueInFuzzy(x, tol float64) (float64, error) {
	if !f.DomainRange.FuzzyContains(x, tol) {
		return 0, &ErrOutOfDomain{X: x, Range: f.DomainRange}
	}
	return f.Slope*x + f.Intercept, nil
}

// CubicFunction is a*x^3 + b*x^2 + c*x + d over domain, evaluated by Horner.
type CubicFunction struct {
	DomainRange    Range
	A, B, C, D     float64
}

func (f CubicFunction) Domain() Range { return f.DomainRange }

func hornerCubic(a, b, c, d, x float64) float64 {
	return ((a*x+b)*x+c)*x + d
}

func (f CubicFunction) Value(x float64) (float64, error) {
	if !f.DomainRange.Contains(x) {
		return 0, &ErrOutOfDomain{X: x, Range: f.DomainRange}
	}
	return hornerCubic(f.A, f.B, f.C, f.D, x), nil
}

func (f CubicFunction) ValueInFuzzy(x, tol float64) (float64, error) {
	if !f.DomainRange.FuzzyContains(x, tol) {
		return 0, &ErrOutOfDomain{X: x, Range: f.DomainRange}
	}
	return hornerCubic(f.A, f.B, f.C, f.D, x), nil
}

// ValueAndDerivative returns the function value and its first derivative at x.
func (f CubicFunction) ValueAndDerivative(x float64) (value, deriv float64) {
	value = hornerCubic(f.A, f.B, f.C, f.D, x)
	deriv = 3*f.A*x*x + 2*f.B*x + f.C
	return
}

// ParametricCubicFunction2D is a pair of cubics in an independent parameter
// p in pRange: U(p) = aU + bU*p + cU*p^2 + dU*p^3, likewise V(p).
type ParametricCubicFunction2D struct {
	PRange                 Range
	AU, BU, CU, DU         float64
	AV, BV, CV, DV         float64
}

func (f ParametricCubicFunction2D) Domain() Range { return f.PRange }

// Value evaluates (U(p), V(p)) as a Vector2D.
func (f ParametricCubicFunction2D) Value(p float64) (Vector2D, error) {
	if !f.PRange.Contains(p) {
		return Vector2D{}, &ErrOutOfDomain{X: p, Range: f.PRange}
	}
	return Vector2D{
		X: hornerCubic(f.DU, f.CU, f.BU, f.AU, p),
		Y: hornerCubic(f.DV, f.CV, f.BV, f.AV, p),
	}, nil
}

// StackedFunctionEntry is one sub-domain/sub-function pair of a StackedFunction.
type StackedFunctionEntry struct {
	SubDomain Range
	Func      UnivariateFunction
}

// StackedFunction dispatches value(x) to the sub-function whose domain
// contains x; overlaps are broken first-wins; gaps return ErrOutOfDomain
// unless DefaultValue is set. With DefaultValue set the function is
// defined everywhere and Domain reports (-inf, +inf).
type StackedFunction struct {
	Entries      []StackedFunctionEntry
	DefaultValue *float64
}

// NewStackedFunction builds a StackedFunction, stably sorting entries by
// sub-domain start, so on overlap the entry with the smaller start wins
// (and source order decides between entries with equal starts).
func NewStackedFunction(entries []StackedFunctionEntry) StackedFunction {
	out := make([]StackedFunctionEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubDomain.Min < out[j].SubDomain.Min })
	return StackedFunction{Entries: out}
}

func (f StackedFunction) Domain() Range {
	if f.DefaultValue != nil {
		return Range{Min: math.Inf(-1), Max: math.Inf(1)}
	}
	if len(f.Entries) == 0 {
		return Range{}
	}
	min := f.Entries[0].SubDomain.Min
	max := f.Entries[0].SubDomain.Max
	for _, e := range f.Entries[1:] {
		if e.SubDomain.Min < min {
			min = e.SubDomain.Min
		}
		if e.SubDomain.Max > max {
			max = e.SubDomain.Max
		}
	}
	return Range{Min: min, Max: max}
}

func (f StackedFunction) Value(x float64) (float64, error) {
	return f.ValueInFuzzy(x, MinTolerance)
}

func (f StackedFunction) ValueInFuzzy(x, tol float64) (float64, error) {
	for _, e := range f.Entries {
		if e.SubDomain.FuzzyContains(x, tol) {
			return e.Func.ValueInFuzzy(x, tol)
		}
	}
	if f.DefaultValue != nil {
		return *f.DefaultValue, nil
	}
	return 0, &ErrOutOfDomain{X: x, Range: f.Domain()}
}

// ValueOrNearestEndpoint evaluates x if it's covered by some sub-domain, and
// otherwise returns the value at the nearest defined sub-domain endpoint.
// This implements the "default outside defined sub-ranges is the value at
// the nearest defined endpoint" rule used when building heightFn/torsionFn
// (§4.3 steps 2-3).
func (f StackedFunction) ValueOrNearestEndpoint(x float64) (float64, error) {
	if v, err := f.ValueInFuzzy(x, MinTolerance); err == nil {
		return v, nil
	}
	if len(f.Entries) == 0 {
		return 0, &ErrOutOfDomain{X: x, Range: f.Domain()}
	}
	if x < f.Entries[0].SubDomain.Min {
		return f.Entries[0].Func.ValueInFuzzy(f.Entries[0].SubDomain.Min, MinTolerance)
	}
	last := f.Entries[len(f.Entries)-1]
	return last.Func.ValueInFuzzy(last.SubDomain.Max, MinTolerance)
}

// ExtrapolatingStackedFunction adapts a StackedFunction to a wider declared
// domain, evaluating via ValueOrNearestEndpoint so callers outside the
// union of sub-domains get the nearest endpoint's value rather than
// ErrOutOfDomain. This is what NewCurve3D's heightFn/torsionFn arguments
// are built from (§4.3 steps 2-3): the road's full [0, length] domain
// rarely matches the union of elevation/superelevation sub-ranges exactly.
type ExtrapolatingStackedFunction struct {
	Stacked     StackedFunction
	TotalDomain Range
}

func (f ExtrapolatingStackedFunction) Domain() Range { return f.TotalDomain }

func (f ExtrapolatingStackedFunction) ValueInFuzzy(x, _ float64) (float64, error) {
	return f.Stacked.ValueOrNearestEndpoint(x)
}
