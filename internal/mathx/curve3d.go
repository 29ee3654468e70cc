package mathx

import "math"

// HeightFunction supplies elevation as a function of arc length s.
type HeightFunction interface {
	Domain() Range
	ValueInFuzzy(s, tol float64) (float64, error)
}

// TorsionFunction supplies cross-section rotation about the tangent
// (superelevation) as a function of arc length s.
type TorsionFunction interface {
	Domain() Range
	ValueInFuzzy(s, tol float64) (float64, error)
}

// Curve3D composes a planar Curve2D with a height and a torsion function.
// Both functions' domains must fuzzy-enclose the 2D curve's domain (§4.1).
type Curve3D struct {
	Curve2D   Curve2D
	HeightFn  HeightFunction
	TorsionFn TorsionFunction
	Placement AffineSequence2D
}

// NewCurve3D validates that HeightFn/TorsionFn fuzzy-enclose the 2D curve's
// domain before returning the composed curve, per §4.1.
func NewCurve3D(curve Curve2D, height HeightFunction, torsion TorsionFunction, placement AffineSequence2D) (Curve3D, error) {
	tol := curve.Tolerance()
	d := Domain(curve)
	if !height.Domain().FuzzyEncloses(d, tol) {
		return Curve3D{}, &ErrOutOfDomain{X: d.Max, Range: height.Domain()}
	}
	if !torsion.Domain().FuzzyEncloses(d, tol) {
		return Curve3D{}, &ErrOutOfDomain{X: d.Max, Range: torsion.Domain()}
	}
	return Curve3D{Curve2D: curve, HeightFn: height, TorsionFn: torsion, Placement: placement}, nil
}

// Length returns the curve's arc length.
func (c Curve3D) Length() float64 { return c.Curve2D.Length() }

// CalculatePoint evaluates the 3D point at arc length s in the global frame.
func (c Curve3D) CalculatePoint(s float64) (Vector3D, error) {
	p, _, err := c.CalculatePose(s)
	return p, err
}

// CalculatePose evaluates position and (yaw, pitch, roll) rotation at s.
// Pitch is always 0 per §4.1 ("yaw=tangent, pitch=0, roll=torsion").
func (c Curve3D) CalculatePose(s float64) (Vector3D, Rotation, error) {
	tol := c.Curve2D.Tolerance()
	pt2d, heading, err := CalculatePoseGlobalCS(c.Curve2D, s, c.Placement)
	if err != nil {
		return Vector3D{}, Rotation{}, err
	}
	h, err := c.HeightFn.ValueInFuzzy(s, tol)
	if err != nil {
		return Vector3D{}, Rotation{}, err
	}
	roll, err := c.TorsionFn.ValueInFuzzy(s, tol)
	if err != nil {
		return Vector3D{}, Rotation{}, err
	}
	point := Vector3D{X: pt2d.X, Y: pt2d.Y, Z: h}
	if !point.IsFinite() {
		return Vector3D{}, Rotation{}, &ErrNumeric{Op: "Curve3D.CalculatePose", Reason: "non-finite point"}
	}
	return point, Rotation{Yaw: heading, Pitch: 0, Roll: roll}, nil
}

// Rotation is a (yaw, pitch, roll) orientation in radians.
type Rotation struct {
	Yaw, Pitch, Roll float64
}

// ToMatrix returns the 3x3 rotation matrix for this rotation.
func (r Rotation) ToMatrix() [3][3]float64 {
	return Affine3D{Yaw: r.Yaw, Pitch: r.Pitch, Roll: r.Roll}.RotationMatrix()
}

// Discretize samples the curve at step intervals, always including both
// endpoints, returning one point per sample.
func (c Curve3D) Discretize(step float64) ([]Vector3D, error) {
	samples := DiscretizePoints(c.Length(), step)
	out := make([]Vector3D, 0, len(samples))
	for _, s := range samples {
		p, err := c.CalculatePoint(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// BoundingBoxEnvelope computes an axis-aligned bounding box for the curve by
// sampling at step and inflating by the maximum absolute height sampled,
// matching the testable property in §8 ("lies within a bounding box derived
// from the planView's axis-aligned envelope inflated by max |h|").
func (c Curve3D) BoundingBoxEnvelope(step float64) (min, max Vector3D, err error) {
	pts, err := c.Discretize(step)
	if err != nil {
		return Vector3D{}, Vector3D{}, err
	}
	min = Vector3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	max = Vector3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	maxAbsH := 0.0
	for _, p := range pts {
		min = Vector3D{X: math.Min(min.X, p.X), Y: math.Min(min.Y, p.Y), Z: math.Min(min.Z, p.Z)}
		max = Vector3D{X: math.Max(max.X, p.X), Y: math.Max(max.Y, p.Y), Z: math.Max(max.Z, p.Z)}
		if math.Abs(p.Z) > maxAbsH {
			maxAbsH = math.Abs(p.Z)
		}
	}
	min.Z -= maxAbsH
	max.Z += maxAbsH
	return min, max, nil
}
