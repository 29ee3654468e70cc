package mathx

// GeometryPrimitive is the tagged sum of 3D geometry the visitor dispatches
// on (§9: "Encode the geometry primitive as a tagged sum {Point, LineString,
// Polygon, Circle, Cylinder, Sweep, Curve, Surface}; the visitor is a
// pattern match"). Exactly one field should be non-nil.
type GeometryPrimitive struct {
	Point    *Vector3D
	Curve    *Curve3D
	Surface  *AbstractSurface3D
	Circle   *Circle3D
	Solid    *AbstractSolid3D
	Cylinder *Cylinder3D
	Sweep    *ParametricSweep3D
}

// VisitorConfig holds the step sizes/slices used by the discretisation
// rules in §4.1.
type VisitorConfig struct {
	DiscretizationStepSize      float64
	SweepDiscretizationStepSize float64
	CircleSlices                int
}

// DefaultVisitorConfig returns sane defaults matching common OpenDRIVE tooling.
func DefaultVisitorConfig() VisitorConfig {
	return VisitorConfig{
		DiscretizationStepSize:      1.0,
		SweepDiscretizationStepSize: 1.0,
		CircleSlices:                16,
	}
}

// DiscretizedGeometry is the result of running the visitor on a primitive:
// exactly one of Point, LineString, Surface is populated, per the §4.4
// "solid → multi-surface → line-string → point" priority used downstream
// when choosing a CityGML GeometryProperty.
type DiscretizedGeometry struct {
	Point      *Vector3D
	LineString *LineString3D
	Surface    *MultiSurface3D
	IsSolid    bool
}

// Discretize visits a GeometryPrimitive and reduces it to a
// DiscretizedGeometry using cfg's step sizes, implementing §4.1's
// "Geometry3DVisitor" as a pattern match rather than double dispatch.
func Discretize(g GeometryPrimitive, cfg VisitorConfig) (DiscretizedGeometry, error) {
	switch {
	case g.Point != nil:
		p := *g.Point
		return DiscretizedGeometry{Point: &p}, nil

	case g.Curve != nil:
		pts, err := g.Curve.Discretize(cfg.DiscretizationStepSize)
		if err != nil {
			return DiscretizedGeometry{}, err
		}
		return DiscretizedGeometry{LineString: &LineString3D{Points: pts}}, nil

	case g.Surface != nil:
		s := g.Surface.Multi
		return DiscretizedGeometry{Surface: &s}, nil

	case g.Circle != nil:
		ring := g.Circle.Tessellate(cfg.CircleSlices)
		return DiscretizedGeometry{Surface: &MultiSurface3D{Polygons: []Polygon3D{{Vertices: ring}}}}, nil

	case g.Cylinder != nil:
		m := g.Cylinder.Tessellate(cfg.CircleSlices)
		return DiscretizedGeometry{Surface: &m, IsSolid: true}, nil

	case g.Sweep != nil:
		m, err := g.Sweep.Tessellate(cfg.SweepDiscretizationStepSize)
		if err != nil {
			return DiscretizedGeometry{}, err
		}
		return DiscretizedGeometry{Surface: &m, IsSolid: true}, nil

	case g.Solid != nil:
		switch {
		case g.Solid.Cylinder != nil:
			return Discretize(GeometryPrimitive{Cylinder: g.Solid.Cylinder}, cfg)
		case g.Solid.Sweep != nil:
			return Discretize(GeometryPrimitive{Sweep: g.Solid.Sweep}, cfg)
		}
	}
	return DiscretizedGeometry{}, &ErrNumeric{Op: "Discretize", Reason: "empty geometry primitive"}
}
