package mathx

import "math"

// Vector2D is a point or displacement in the plane.
type Vector2D struct {
	X, Y float64
}

// Add returns v+o.
func (v Vector2D) Add(o Vector2D) Vector2D { return Vector2D{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vector2D) Sub(o Vector2D) Vector2D { return Vector2D{v.X - o.X, v.Y - o.Y} }

// Scale returns v scaled by s.
func (v Vector2D) Scale(s float64) Vector2D { return Vector2D{v.X * s, v.Y * s} }

// Norm returns the Euclidean length of v.
func (v Vector2D) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Rotated returns v rotated counter-clockwise by angle radians.
func (v Vector2D) Rotated(angle float64) Vector2D {
	s, c := math.Sincos(angle)
	return Vector2D{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// IsFinite reports whether both components are finite.
func (v Vector2D) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// To3D lifts v into the XY plane at height z.
func (v Vector2D) To3D(z float64) Vector3D { return Vector3D{X: v.X, Y: v.Y, Z: z} }

// Vector3D is a point or displacement in space.
type Vector3D struct {
	X, Y, Z float64
}

// Add returns v+o.
func (v Vector3D) Add(o Vector3D) Vector3D { return Vector3D{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vector3D) Sub(o Vector3D) Vector3D { return Vector3D{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by s.
func (v Vector3D) Scale(s float64) Vector3D { return Vector3D{v.X * s, v.Y * s, v.Z * s} }

// Norm returns the Euclidean length of v.
func (v Vector3D) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Distance returns the Euclidean distance between v and o.
func (v Vector3D) Distance(o Vector3D) float64 { return v.Sub(o).Norm() }

// FuzzyEquals reports whether v and o are within tol of each other.
func (v Vector3D) FuzzyEquals(o Vector3D, tol float64) bool {
	return v.Distance(o) <= clampTol(tol)
}

// IsFinite reports whether all components are finite.
func (v Vector3D) IsFinite() bool {
	for _, c := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Cross returns the cross product v x o.
func (v Vector3D) Cross(o Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Pose is a position plus a (yaw, pitch, roll) orientation, in radians.
type Pose struct {
	Point             Vector3D
	Yaw, Pitch, Roll  float64
}
