package mathx

import "math"

// Affine2D is a single 2D affine transform: rotate by Heading then
// translate to Translation. Composed via AffineSequence2D.
type Affine2D struct {
	Translation Vector2D
	Heading     float64
}

// Apply maps a local-frame point into this transform's frame.
func (a Affine2D) Apply(p Vector2D) Vector2D {
	return p.Rotated(a.Heading).Add(a.Translation)
}

// ApplyDirection maps a local-frame heading into this transform's frame.
func (a Affine2D) ApplyDirection(heading float64) float64 {
	return heading + a.Heading
}

// AffineSequence2D is an ordered composition of 2D affine transforms,
// applied outermost-last (index 0 is applied first, to local coordinates).
type AffineSequence2D struct {
	Transforms []Affine2D
}

// Solve reduces the sequence to a single equivalent Affine2D.
func (s AffineSequence2D) Solve() Affine2D {
	if len(s.Transforms) == 0 {
		return Affine2D{}
	}
	acc := s.Transforms[0]
	for _, t := range s.Transforms[1:] {
		acc = Affine2D{
			Translation: t.Apply(acc.Translation),
			Heading:     acc.Heading + t.Heading,
		}
	}
	return acc
}

// Apply maps a local point through the whole sequence.
func (s AffineSequence2D) Apply(p Vector2D) Vector2D {
	return s.Solve().Apply(p)
}

// Affine3D is a rotation (yaw, pitch, roll) plus a translation.
type Affine3D struct {
	Translation            Vector3D
	Yaw, Pitch, Roll        float64
}

// Apply maps a local-frame point into this transform's frame.
func (a Affine3D) Apply(p Vector3D) Vector3D {
	r := a.RotationMatrix()
	return Vector3D{
		X: r[0][0]*p.X + r[0][1]*p.Y + r[0][2]*p.Z,
		Y: r[1][0]*p.X + r[1][1]*p.Y + r[1][2]*p.Z,
		Z: r[2][0]*p.X + r[2][1]*p.Y + r[2][2]*p.Z,
	}.Add(a.Translation)
}

// RotationMatrix returns the 3x3 rotation matrix for yaw (about Z), pitch
// (about Y), roll (about X), composed as Rz * Ry * Rx.
func (a Affine3D) RotationMatrix() [3][3]float64 {
	sy, cy := math.Sincos(a.Yaw)
	sp, cp := math.Sincos(a.Pitch)
	sr, cr := math.Sincos(a.Roll)

	return [3][3]float64{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr},
		{-sp, cp * sr, cp * cr},
	}
}

// AffineSequence3D is an ordered composition of 3D affine transforms.
type AffineSequence3D struct {
	Transforms []Affine3D
}

// Solve reduces the sequence to a single equivalent Affine3D.
func (s AffineSequence3D) Solve() Affine3D {
	if len(s.Transforms) == 0 {
		return Affine3D{}
	}
	acc := s.Transforms[0]
	for _, t := range s.Transforms[1:] {
		rotated := t.Apply(acc.Translation)
		ra, rt := acc.RotationMatrix(), t.RotationMatrix()
		var m [3][3]float64
		for i := range m {
			for j := range m[i] {
				m[i][j] = rt[i][0]*ra[0][j] + rt[i][1]*ra[1][j] + rt[i][2]*ra[2][j]
			}
		}
		yaw, pitch, roll := RotationFromMatrix(m)
		acc = Affine3D{
			Translation: rotated,
			Yaw:         yaw,
			Pitch:       pitch,
			Roll:        roll,
		}
	}
	return acc
}

// Apply maps a local point through the whole sequence.
func (s AffineSequence3D) Apply(p Vector3D) Vector3D {
	return s.Solve().Apply(p)
}

// RotationFromMatrix extracts (yaw, pitch, roll) from a 3x3 rotation matrix,
// for geometry-visitor use when composing poses from raw matrices.
func RotationFromMatrix(m [3][3]float64) (yaw, pitch, roll float64) {
	pitch = math.Asin(clampUnit(-m[2][0]))
	yaw = math.Atan2(m[1][0], m[0][0])
	roll = math.Atan2(m[2][1], m[2][2])
	return
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
