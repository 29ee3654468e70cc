package mathx

// Polygon3D is a planar (or near-planar) polygon boundary in space, vertices
// in order, not explicitly closed (first != last).
type Polygon3D struct {
	Vertices []Vector3D
}

// IsValid reports whether the polygon has at least 3 vertices and all are finite.
func (p Polygon3D) IsValid() bool {
	if len(p.Vertices) < 3 {
		return false
	}
	for _, v := range p.Vertices {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}

// Normal returns an (unnormalised) normal vector via the Newell method,
// robust for near-planar polygons sampled from curved surfaces.
func (p Polygon3D) Normal() Vector3D {
	var n Vector3D
	count := len(p.Vertices)
	for i := 0; i < count; i++ {
		cur := p.Vertices[i]
		next := p.Vertices[(i+1)%count]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n
}

// MultiSurface3D is an unordered collection of polygons, e.g. the faces of a
// lane surface or a building.
type MultiSurface3D struct {
	Polygons []Polygon3D
}

// LineString3D is an ordered sequence of 3D points.
type LineString3D struct {
	Points []Vector3D
}

// Length returns the polyline length of the line string.
func (ls LineString3D) Length() float64 {
	total := 0.0
	for i := 1; i < len(ls.Points); i++ {
		total += ls.Points[i].Distance(ls.Points[i-1])
	}
	return total
}

// AbstractSurface3D is the tagged-sum surface primitive the geometry visitor
// dispatches on (§9 "Geometry visitor without dynamic dispatch").
type AbstractSurface3D struct {
	Multi MultiSurface3D
}

// AbstractCurve3D is the tagged-sum curve primitive.
type AbstractCurve3D struct {
	LineString LineString3D
}

// TriangulateStrip builds the quad (or triangle, if one side degenerates to
// a point) surface between two consecutive boundary line-string samples,
// used when building lane surfaces by triangulating between consecutive s
// samples (§4.3 step 5).
func TriangulateStrip(innerA, outerA, innerB, outerB Vector3D) []Polygon3D {
	if innerA.FuzzyEquals(outerA, MinTolerance) {
		return []Polygon3D{{Vertices: []Vector3D{innerA, innerB, outerB}}}
	}
	if innerB.FuzzyEquals(outerB, MinTolerance) {
		return []Polygon3D{{Vertices: []Vector3D{innerA, outerA, innerB}}}
	}
	return []Polygon3D{{Vertices: []Vector3D{innerA, outerA, outerB, innerB}}}
}
