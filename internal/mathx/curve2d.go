package mathx

import "math"

// Curve2D is the contract shared by every planar curve segment (§4.1):
// domain [0, length], tolerance eps. Points and poses are available in the
// curve's own local frame and, pre-multiplied by a placement, in a global
// frame.
type Curve2D interface {
	// Length returns the arc length of the curve, i.e. Domain().Max.
	Length() float64
	// Tolerance returns the curve's fuzzy-comparison tolerance.
	Tolerance() float64
	// CalculatePointLocalCS evaluates the curve point at arc-length s.
	CalculatePointLocalCS(s float64) (Vector2D, error)
	// CalculatePoseLocalCS evaluates point and tangent heading at s.
	CalculatePoseLocalCS(s float64) (Vector2D, float64, error)
}

// Domain returns [0, Length()] for any Curve2D, the shared domain shape.
func Domain(c Curve2D) Range {
	return Range{Min: 0, Max: c.Length()}
}

// CalculatePointGlobalCS evaluates the curve point at s and pre-multiplies
// it by placement.
func CalculatePointGlobalCS(c Curve2D, s float64, placement AffineSequence2D) (Vector2D, error) {
	p, err := c.CalculatePointLocalCS(s)
	if err != nil {
		return Vector2D{}, err
	}
	return placement.Apply(p), nil
}

// CalculatePoseGlobalCS evaluates point+heading at s and pre-multiplies by placement.
func CalculatePoseGlobalCS(c Curve2D, s float64, placement AffineSequence2D) (Vector2D, float64, error) {
	p, heading, err := c.CalculatePoseLocalCS(s)
	if err != nil {
		return Vector2D{}, 0, err
	}
	solved := placement.Solve()
	return solved.Apply(p), solved.ApplyDirection(heading), nil
}

// DiscretizePoints samples s at step intervals over [0, length], always
// including the domain endpoint as the final sample (§4.1 discretisation
// rules: "the last sample is placed at the domain endpoint").
func DiscretizePoints(length, step float64) []float64 {
	if length <= 0 {
		return []float64{0}
	}
	if step <= 0 {
		step = length
	}
	var out []float64
	for s := 0.0; s < length; s += math.Min(step, length-s) {
		out = append(out, s)
		if length-s <= MinTolerance {
			break
		}
	}
	if len(out) == 0 || out[len(out)-1] < length-MinTolerance {
		out = append(out, length)
	}
	return out
}

// identityPlacement returns the identity placement, used by curves built without an
// explicit map-frame origin.
func identityPlacement() AffineSequence2D {
	return AffineSequence2D{Transforms: []Affine2D{{}}}
}

// Line2D is a straight segment of the given length, starting at the local
// origin heading along +X.
type Line2D struct {
	Len float64
	Eps float64
}

func (l Line2D) Length() float64    { return l.Len }
func (l Line2D) Tolerance() float64 { return clampTol(l.Eps) }

func (l Line2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	if !Domain(l).FuzzyContains(s, l.Tolerance()) {
		return Vector2D{}, &ErrOutOfDomain{X: s, Range: Domain(l)}
	}
	return Vector2D{X: s, Y: 0}, nil
}

func (l Line2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	p, err := l.CalculatePointLocalCS(s)
	return p, 0, err
}

// Arc2D is a circular arc of the given length and signed curvature
// (positive = left turn), starting at the local origin heading along +X.
type Arc2D struct {
	Len       float64
	Curvature float64
	Eps       float64
}

func (a Arc2D) Length() float64    { return a.Len }
func (a Arc2D) Tolerance() float64 { return clampTol(a.Eps) }

func (a Arc2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	p, _, err := a.CalculatePoseLocalCS(s)
	return p, err
}

func (a Arc2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	if !Domain(a).FuzzyContains(s, a.Tolerance()) {
		return Vector2D{}, 0, &ErrOutOfDomain{X: s, Range: Domain(a)}
	}
	if math.Abs(a.Curvature) < MinTolerance {
		// degenerate to a line
		return Vector2D{X: s, Y: 0}, 0, nil
	}
	radius := 1 / a.Curvature
	angle := s * a.Curvature
	x := radius * math.Sin(angle)
	y := radius * (1 - math.Cos(angle))
	return Vector2D{X: x, Y: y}, angle, nil
}

// Spiral2D is an Euler spiral (clothoid) whose curvature varies linearly in
// s from CurvStart to CurvEnd, evaluated via Fresnel integrals.
type Spiral2D struct {
	Len                  float64
	CurvStart, CurvEnd   float64
	Eps                  float64
}

func (sp Spiral2D) Length() float64    { return sp.Len }
func (sp Spiral2D) Tolerance() float64 { return clampTol(sp.Eps) }

// curvatureRate is d(curvature)/ds, constant along a clothoid segment.
func (sp Spiral2D) curvatureRate() float64 {
	if sp.Len == 0 {
		return 0
	}
	return (sp.CurvEnd - sp.CurvStart) / sp.Len
}

func (sp Spiral2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	p, _, err := sp.CalculatePoseLocalCS(s)
	return p, err
}

func (sp Spiral2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	if !Domain(sp).FuzzyContains(s, sp.Tolerance()) {
		return Vector2D{}, 0, &ErrOutOfDomain{X: s, Range: Domain(sp)}
	}
	k := sp.curvatureRate()
	if math.Abs(k) < MinTolerance {
		// Degenerates to a constant-curvature arc.
		arc := Arc2D{Len: sp.Len, Curvature: sp.CurvStart, Eps: sp.Eps}
		return arc.CalculatePoseLocalCS(s)
	}

	// Standard clothoid parametrisation: curvature(s) = curvStart + k*s,
	// theta(u) = curvStart*u + k*u^2/2, x/y are the Fresnel-type integrals of
	// (cos(theta), sin(theta)). Integrated numerically rather than through a
	// closed-form Fresnel-function shift, since curvStart != 0 makes the
	// canonical Fresnel argument shift easy to get wrong at the tolerance
	// the spec requires.
	x, y, err := fresnelIntegrate(sp.CurvStart, k, s)
	if err != nil {
		return Vector2D{}, 0, err
	}
	heading := sp.CurvStart*s + k*s*s/2
	return Vector2D{X: x, Y: y}, heading, nil
}

// fresnelIntegrate numerically integrates (cos(theta(u)), sin(theta(u))) for
// u in [0, s], theta(u) = curvStart*u + k*u^2/2, using composite Simpson's
// rule over a fixed 64 intervals, independent of the arc length.
func fresnelIntegrate(curvStart, k, s float64) (x, y float64, err error) {
	if s == 0 {
		return 0, 0, nil
	}
	n := 64
	if n%2 == 1 {
		n++
	}
	h := s / float64(n)

	theta := func(u float64) float64 { return curvStart*u + k*u*u/2 }

	sumX, sumY := 0.0, 0.0
	for i := 0; i <= n; i++ {
		u := h * float64(i)
		w := 1.0
		switch {
		case i == 0 || i == n:
			w = 1
		case i%2 == 1:
			w = 4
		default:
			w = 2
		}
		th := theta(u)
		sumX += w * math.Cos(th)
		sumY += w * math.Sin(th)
	}
	x = (h / 3) * sumX
	y = (h / 3) * sumY
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return 0, 0, &ErrNumeric{Op: "Spiral2D.fresnelIntegrate", Reason: "non-finite result"}
	}
	return x, y, nil
}

// CubicCurve2D is y = a + b*x + c*x^2 + d*x^3 parametrised by arc length s
// along the local x-axis (small-curvature approximation used by OpenDRIVE's
// "poly3" planView geometry).
type CubicCurve2D struct {
	Len        float64
	A, B, C, D float64
	Eps        float64
}

func (c CubicCurve2D) Length() float64    { return c.Len }
func (c CubicCurve2D) Tolerance() float64 { return clampTol(c.Eps) }

func (c CubicCurve2D) poly() CubicFunction {
	return CubicFunction{DomainRange: Range{Min: 0, Max: c.Len}, A: c.D, B: c.C, C: c.B, D: c.A}
}

func (c CubicCurve2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	if !Domain(c).FuzzyContains(s, c.Tolerance()) {
		return Vector2D{}, &ErrOutOfDomain{X: s, Range: Domain(c)}
	}
	y, _ := c.poly().ValueInFuzzy(s, c.Tolerance())
	return Vector2D{X: s, Y: y}, nil
}

func (c CubicCurve2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	p, err := c.CalculatePointLocalCS(s)
	if err != nil {
		return Vector2D{}, 0, err
	}
	_, deriv := c.poly().ValueAndDerivative(s)
	return p, math.Atan(deriv), nil
}

// ParametricCubicCurve2D is the OpenDRIVE "paramPoly3" planView geometry: U
// and V are each independent cubics in parameter p over PRange, and arc
// length s in [0, length] is mapped linearly onto PRange (normalized form
// prange=[0,1], or arcLength form prange=[0,length] -- both representable here).
type ParametricCubicCurve2D struct {
	Len     float64
	PRange  Range
	Fn      ParametricCubicFunction2D
	Eps     float64
}

func (c ParametricCubicCurve2D) Length() float64    { return c.Len }
func (c ParametricCubicCurve2D) Tolerance() float64 { return clampTol(c.Eps) }

func (c ParametricCubicCurve2D) toParam(s float64) float64 {
	if c.Len <= 0 {
		return c.PRange.Min
	}
	frac := s / c.Len
	return c.PRange.Min + frac*(c.PRange.Max-c.PRange.Min)
}

func (c ParametricCubicCurve2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	if !Domain(c).FuzzyContains(s, c.Tolerance()) {
		return Vector2D{}, &ErrOutOfDomain{X: s, Range: Domain(c)}
	}
	p := c.toParam(s)
	return c.Fn.Value(p)
}

func (c ParametricCubicCurve2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	pos, err := c.CalculatePointLocalCS(s)
	if err != nil {
		return Vector2D{}, 0, err
	}
	// central difference for the tangent heading
	h := c.Len * 1e-4
	if h < 1e-6 {
		h = 1e-6
	}
	sLo, sHi := s-h, s+h
	if sLo < 0 {
		sLo = 0
	}
	if sHi > c.Len {
		sHi = c.Len
	}
	pLo, err1 := c.Fn.Value(c.toParam(sLo))
	pHi, err2 := c.Fn.Value(c.toParam(sHi))
	if err1 != nil || err2 != nil || sHi <= sLo {
		return pos, 0, nil
	}
	d := pHi.Sub(pLo)
	return pos, math.Atan2(d.Y, d.X), nil
}
