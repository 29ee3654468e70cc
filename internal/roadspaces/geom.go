package roadspaces

import (
	"math"

	"github.com/rtron-go/rtron/internal/mathx"
)

// localOffsetToWorld maps a (lateral, vertical) offset in the reference
// line's local cross-section frame into world space at a given pose,
// rotating by the full (yaw, pitch, roll) orientation so superelevation
// banks lateral offsets the same way ParametricSweep3D.Tessellate banks a
// swept cross-section (mathx/solid.go) — lateral maps to local Y, vertical
// to local Z, the same convention as the sweep's cross-section.
func localOffsetToWorld(point mathx.Vector3D, rot mathx.Rotation, lateral, vertical float64) mathx.Vector3D {
	m := rot.ToMatrix()
	local := mathx.Vector3D{X: 0, Y: lateral, Z: vertical}
	rotated := mathx.Vector3D{
		X: m[0][0]*local.X + m[0][1]*local.Y + m[0][2]*local.Z,
		Y: m[1][0]*local.X + m[1][1]*local.Y + m[1][2]*local.Z,
		Z: m[2][0]*local.X + m[2][1]*local.Y + m[2][2]*local.Z,
	}
	return point.Add(rotated)
}

// shiftedCubic is a mathx.UnivariateFunction over an absolute-s domain,
// backed by a cubic authored in ds = s - s0 (OpenDRIVE's "cubic polynomial
// offset from a record's own start" convention used by elevation,
// superelevation, lane-offset, and lane-width records alike).
type shiftedCubic struct {
	domain mathx.Range
	s0     float64
	poly   mathx.CubicFunction
}

func newShiftedCubic(domain mathx.Range, s0, a, b, c, d float64) shiftedCubic {
	return shiftedCubic{
		domain: domain,
		s0:     s0,
		poly:   mathx.CubicFunction{DomainRange: mathx.Range{Min: math.Inf(-1), Max: math.Inf(1)}, A: d, B: c, C: b, D: a},
	}
}

func (f shiftedCubic) Domain() mathx.Range { return f.domain }

func (f shiftedCubic) Value(x float64) (float64, error) {
	if !f.domain.Contains(x) {
		return 0, &mathx.ErrOutOfDomain{X: x, Range: f.domain}
	}
	v, _ := f.poly.Value(x - f.s0)
	return v, nil
}

func (f shiftedCubic) ValueInFuzzy(x, tol float64) (float64, error) {
	if !f.domain.FuzzyContains(x, tol) {
		return 0, &mathx.ErrOutOfDomain{X: x, Range: f.domain}
	}
	v, _ := f.poly.Value(x - f.s0)
	return v, nil
}
