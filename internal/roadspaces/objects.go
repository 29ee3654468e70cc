package roadspaces

import (
	"fmt"

	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// buildObjects places every road object's pose and geometry primitive along
// the reference line (§4.3 step 7): box/cylinder objects become a single
// instance, outline objects carry their declared polygon, and repeat
// objects are instantiated at every distance step along [s, s+length] -
// except repeat.distance == 0, which places exactly one instance at s
// (a case the distilled spec's source left implicit but real OpenDRIVE
// data exercises: "distance of 0 describes that a single object is
// defined with an outer width/length/height").
func buildObjects(road *opendrive.Road, curve mathx.Curve3D, cfg BuildConfig) ([]Object, report.MessageList) {
	var out []Object
	var msgs report.MessageList

	for _, obj := range road.Objects {
		switch {
		case obj.Repeat != nil:
			instances, repeatMsgs := buildRepeatedObject(road, obj, curve)
			out = append(out, instances...)
			msgs = msgs.Merge(repeatMsgs)
		default:
			inst, instMsgs := buildSingleObject(road, obj, obj.S, obj.T, obj.ID, curve)
			msgs = msgs.Merge(instMsgs)
			if inst != nil {
				out = append(out, *inst)
			}
		}
	}
	return out, msgs
}

func buildRepeatedObject(road *opendrive.Road, obj opendrive.Object, curve mathx.Curve3D) ([]Object, report.MessageList) {
	var out []Object
	var msgs report.MessageList
	rep := obj.Repeat

	if rep.Distance <= 0 {
		inst, instMsgs := buildSingleObject(road, obj, rep.S, obj.T, obj.ID, curve)
		msgs = msgs.Merge(instMsgs)
		if inst != nil {
			out = append(out, *inst)
		}
		return out, msgs
	}

	for i, s := 0, rep.S; s <= rep.S+rep.Length+mathx.MinTolerance; i, s = i+1, rep.S+float64(i+1)*rep.Distance {
		id := fmt.Sprintf("%s_%d", obj.ID, i)
		inst, instMsgs := buildSingleObject(road, obj, s, obj.T, id, curve)
		msgs = msgs.Merge(instMsgs)
		if inst != nil {
			out = append(out, *inst)
		}
		if rep.Length <= 0 {
			break
		}
	}
	return out, msgs
}

func buildSingleObject(road *opendrive.Road, obj opendrive.Object, s, t float64, id string, curve mathx.Curve3D) (*Object, report.MessageList) {
	point, rot, err := curve.CalculatePose(s)
	if err != nil {
		return nil, report.MessageList{}.Reported(CodeNumericFailure,
			fmt.Sprintf("object %q: %v", id, err), report.SourceID{Kind: "object", ID: id}, report.SeverityWarning)
	}

	worldPoint := localOffsetToWorld(point, rot, t, obj.ZOffset)
	pose := mathx.Pose{Point: worldPoint, Yaw: rot.Yaw + obj.HOffset, Pitch: rot.Pitch, Roll: rot.Roll}

	geom := buildObjectGeometry(obj, pose)

	return &Object{
		ID:       id,
		Name:     obj.Name,
		Type:     obj.Type,
		Pose:     pose,
		Geometry: geom,
	}, nil
}

func buildObjectGeometry(obj opendrive.Object, pose mathx.Pose) mathx.GeometryPrimitive {
	switch obj.Shape {
	case opendrive.ObjectShapeCylinder:
		cyl := mathx.Cylinder3D{
			BaseCenter: pose.Point,
			Axis:       mathx.Vector3D{X: 0, Y: 0, Z: 1},
			Height:     obj.Height,
			Radius:     obj.Radius,
		}
		return mathx.GeometryPrimitive{Cylinder: &cyl}

	case opendrive.ObjectShapeOutline:
		if len(obj.Outline) < 3 {
			p := pose.Point
			return mathx.GeometryPrimitive{Point: &p}
		}
		verts := make([]mathx.Vector3D, 0, len(obj.Outline))
		for _, pt := range obj.Outline {
			verts = append(verts, outlinePointToWorld(pose, pt))
		}
		return mathx.GeometryPrimitive{Surface: &mathx.AbstractSurface3D{
			Multi: mathx.MultiSurface3D{Polygons: []mathx.Polygon3D{{Vertices: verts}}},
		}}

	default: // box, repeat, and unknown shapes fall back to an axis-aligned box
		if obj.Width <= 0 || obj.Length <= 0 || obj.Height <= 0 {
			p := pose.Point
			return mathx.GeometryPrimitive{Point: &p}
		}
		surface := boxSurface(pose, obj.Width, obj.Length, obj.Height)
		return mathx.GeometryPrimitive{Surface: &surface}
	}
}

func outlinePointToWorld(pose mathx.Pose, pt opendrive.ObjectOutlinePoint) mathx.Vector3D {
	rot := mathx.Rotation{Yaw: pose.Yaw, Pitch: pose.Pitch, Roll: pose.Roll}
	m := rot.ToMatrix()
	local := mathx.Vector3D{X: pt.U, Y: pt.V, Z: pt.Z}
	rotated := mathx.Vector3D{
		X: m[0][0]*local.X + m[0][1]*local.Y + m[0][2]*local.Z,
		Y: m[1][0]*local.X + m[1][1]*local.Y + m[1][2]*local.Z,
		Z: m[2][0]*local.X + m[2][1]*local.Y + m[2][2]*local.Z,
	}
	return pose.Point.Add(rotated)
}

// boxSurface builds an object's box as 6 explicit faces in world space,
// rotated by the pose's full (yaw, pitch, roll) the same way
// localOffsetToWorld banks lane boundary offsets.
func boxSurface(pose mathx.Pose, width, length, height float64) mathx.AbstractSurface3D {
	hw, hl, hh := width/2, length/2, height/2
	rot := mathx.Rotation{Yaw: pose.Yaw, Pitch: pose.Pitch, Roll: pose.Roll}
	m := rot.ToMatrix()
	toWorld := func(x, y, z float64) mathx.Vector3D {
		rotated := mathx.Vector3D{
			X: m[0][0]*x + m[0][1]*y + m[0][2]*z,
			Y: m[1][0]*x + m[1][1]*y + m[1][2]*z,
			Z: m[2][0]*x + m[2][1]*y + m[2][2]*z,
		}
		return pose.Point.Add(rotated)
	}

	corners := make([]mathx.Vector3D, 8)
	i := 0
	for _, dx := range []float64{-hl, hl} {
		for _, dy := range []float64{-hw, hw} {
			for _, dz := range []float64{0, 2 * hh} {
				corners[i] = toWorld(dx, dy, dz)
				i++
			}
		}
	}
	// corners index: dx*4 + dy*2 + dz, dx/dy/dz in {0,1}
	c := func(dx, dy, dz int) mathx.Vector3D { return corners[dx*4+dy*2+dz] }

	faces := []mathx.Polygon3D{
		{Vertices: []mathx.Vector3D{c(0, 0, 0), c(1, 0, 0), c(1, 1, 0), c(0, 1, 0)}}, // bottom
		{Vertices: []mathx.Vector3D{c(0, 0, 1), c(0, 1, 1), c(1, 1, 1), c(1, 0, 1)}}, // top
		{Vertices: []mathx.Vector3D{c(0, 0, 0), c(0, 1, 0), c(0, 1, 1), c(0, 0, 1)}}, // -x
		{Vertices: []mathx.Vector3D{c(1, 0, 0), c(1, 0, 1), c(1, 1, 1), c(1, 1, 0)}}, // +x
		{Vertices: []mathx.Vector3D{c(0, 0, 0), c(0, 0, 1), c(1, 0, 1), c(1, 0, 0)}}, // -y
		{Vertices: []mathx.Vector3D{c(0, 1, 0), c(1, 1, 0), c(1, 1, 1), c(0, 1, 1)}}, // +y
	}
	return mathx.AbstractSurface3D{Multi: mathx.MultiSurface3D{Polygons: faces}}
}
