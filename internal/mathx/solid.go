package mathx

import "math"

// Circle3D is a circle of the given radius centred at Center, lying in the
// plane perpendicular to Axis (assumed normalised), local angle 0 pointing
// along an arbitrary but fixed reference direction in that plane.
type Circle3D struct {
	Center Vector3D
	Axis   Vector3D
	Radius float64
}

// referenceFrame returns two orthonormal vectors spanning the circle's
// plane, used as the local X/Y axes for tessellation.
func (c Circle3D) referenceFrame() (Vector3D, Vector3D) {
	axis := c.Axis
	n := axis.Norm()
	if n < MinTolerance {
		axis = Vector3D{Z: 1}
	} else {
		axis = axis.Scale(1 / n)
	}
	arbitrary := Vector3D{X: 1}
	if math.Abs(axis.X) > 0.9 {
		arbitrary = Vector3D{Y: 1}
	}
	u := axis.Cross(arbitrary)
	un := u.Norm()
	if un < MinTolerance {
		u = Vector3D{X: 1}
	} else {
		u = u.Scale(1 / un)
	}
	v := axis.Cross(u)
	return u, v
}

// Tessellate returns slices vertices around the circle, counter-clockwise
// looking from +axis, vertex 0 at local angle 0 (§4.1 discretisation rules).
func (c Circle3D) Tessellate(slices int) []Vector3D {
	if slices < 3 {
		slices = 3
	}
	u, v := c.referenceFrame()
	out := make([]Vector3D, slices)
	for i := 0; i < slices; i++ {
		angle := 2 * math.Pi * float64(i) / float64(slices)
		s, cAng := math.Sincos(angle)
		offset := u.Scale(c.Radius * cAng).Add(v.Scale(c.Radius * s))
		out[i] = c.Center.Add(offset)
	}
	return out
}

// Cylinder3D is a right cylinder between BaseCenter and BaseCenter+Axis*Height.
type Cylinder3D struct {
	BaseCenter Vector3D
	Axis       Vector3D // normalised direction from base to top
	Height     float64
	Radius     float64
}

// Tessellate returns the base cap, the top cap, and one side quad per
// wedge, with circleSlices wedges per §4.1.
func (cy Cylinder3D) Tessellate(circleSlices int) MultiSurface3D {
	base := Circle3D{Center: cy.BaseCenter, Axis: cy.Axis, Radius: cy.Radius}
	top := Circle3D{Center: cy.BaseCenter.Add(cy.Axis.Scale(cy.Height)), Axis: cy.Axis, Radius: cy.Radius}

	baseRing := base.Tessellate(circleSlices)
	topRing := top.Tessellate(circleSlices)

	var polys []Polygon3D
	polys = append(polys, Polygon3D{Vertices: reversed(baseRing)})
	polys = append(polys, Polygon3D{Vertices: topRing})
	n := len(baseRing)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		polys = append(polys, Polygon3D{Vertices: []Vector3D{baseRing[i], baseRing[j], topRing[j], topRing[i]}})
	}
	return MultiSurface3D{Polygons: polys}
}

func reversed(v []Vector3D) []Vector3D {
	out := make([]Vector3D, len(v))
	for i, p := range v {
		out[len(v)-1-i] = p
	}
	return out
}

// AbstractSolid3D is the tagged-sum solid primitive: either a cylinder or a
// parametric sweep.
type AbstractSolid3D struct {
	Cylinder *Cylinder3D
	Sweep    *ParametricSweep3D
}

// ParametricSweep3D sweeps a 2D cross-section (in the path-local XY plane,
// X lateral / Y vertical) along a 3D path curve.
type ParametricSweep3D struct {
	Path        Curve3D
	CrossSection []Vector2D // closed-ring local cross-section, e.g. a rectangle
}

// Tessellate samples the path every step and places the (shared) cross
// section tessellation at each sample, connecting consecutive rings into
// side quads, per §4.1 ("Parametric sweeps use sweepDiscretizationStepSize
// along the path and share the cross-section tessellation").
func (sw ParametricSweep3D) Tessellate(step float64) (MultiSurface3D, error) {
	samples := DiscretizePoints(sw.Path.Length(), step)
	rings := make([][]Vector3D, len(samples))
	for i, s := range samples {
		point, rot, err := sw.Path.CalculatePose(s)
		if err != nil {
			return MultiSurface3D{}, err
		}
		m := rot.ToMatrix()
		ring := make([]Vector3D, len(sw.CrossSection))
		for j, local := range sw.CrossSection {
			localV := Vector3D{X: 0, Y: local.X, Z: local.Y}
			rotated := Vector3D{
				X: m[0][0]*localV.X + m[0][1]*localV.Y + m[0][2]*localV.Z,
				Y: m[1][0]*localV.X + m[1][1]*localV.Y + m[1][2]*localV.Z,
				Z: m[2][0]*localV.X + m[2][1]*localV.Y + m[2][2]*localV.Z,
			}
			ring[j] = point.Add(rotated)
		}
		rings[i] = ring
	}

	var polys []Polygon3D
	if len(rings) > 0 {
		polys = append(polys, Polygon3D{Vertices: reversed(rings[0])})
		polys = append(polys, Polygon3D{Vertices: rings[len(rings)-1]})
	}
	for i := 0; i+1 < len(rings); i++ {
		a, b := rings[i], rings[i+1]
		n := len(a)
		for j := 0; j < n; j++ {
			k := (j + 1) % n
			polys = append(polys, Polygon3D{Vertices: []Vector3D{a[j], a[k], b[k], b[j]}})
		}
	}
	return MultiSurface3D{Polygons: polys}, nil
}
