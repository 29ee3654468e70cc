// Package opendrive is the plain data model mirroring the union of
// supported OpenDRIVE schema versions (§3), plus deep-copy helpers.
// Validation and healing live in internal/evaluator.
package opendrive

// ElementType names what a road link's neighbour is.
type ElementType string

const (
	ElementRoad     ElementType = "road"
	ElementJunction ElementType = "junction"
)

// ContactPoint names which end of a reference line a link attaches to.
type ContactPoint string

const (
	ContactStart ContactPoint = "start"
	ContactEnd   ContactPoint = "end"
)

// Model is the root of a parsed (and possibly healed) OpenDRIVE document.
type Model struct {
	Header   *Header
	Roads    []Road
	Junctions []Junction
}

// Header carries document-level metadata; all fields optional per schema version.
type Header struct {
	RevMajor, RevMinor int
	Name               string
	Version            string
	North, South, East, West *float64
}

// Link describes a road's predecessor/successor.
type Link struct {
	ElementType  ElementType
	ElementID    string
	ContactPoint ContactPoint
}

// RoadLink bundles a road's optional predecessor and successor.
type RoadLink struct {
	Predecessor *Link
	Successor   *Link
}

// PlanViewGeometryKind tags which shape a PlanViewGeometry carries (§3).
type PlanViewGeometryKind string

const (
	GeometryLine        PlanViewGeometryKind = "line"
	GeometryArc         PlanViewGeometryKind = "arc"
	GeometrySpiral      PlanViewGeometryKind = "spiral"
	GeometryCubicPoly   PlanViewGeometryKind = "poly3"
	GeometryParamCubic  PlanViewGeometryKind = "paramPoly3"
)

// PlanViewGeometry is one planar geometry segment of a road's reference
// line: an s-start, a length, and exactly one shape variant (§3).
type PlanViewGeometry struct {
	S, Length  float64
	X, Y, Hdg  float64
	Kind       PlanViewGeometryKind

	// Arc
	Curvature float64
	// Spiral
	CurvStart, CurvEnd float64
	// CubicPoly (poly3): v = a + b*u + c*u^2 + d*u^3
	A, B, C, D float64
	// ParamCubic (paramPoly3)
	AU, BU, CU, DU float64
	AV, BV, CV, DV float64
	PRangeNormalized bool // true => p in [0,1], false => p in [0, length]
}

// ElevationRecord is one cubic segment of an elevation or superelevation
// profile: value(s) = A + B*ds + C*ds^2 + D*ds^3, ds = s - S.
type ElevationRecord struct {
	S          float64
	A, B, C, D float64
}

// ElevationProfile is the road's height-over-s profile.
type ElevationProfile struct {
	Elevation []ElevationRecord
}

// LateralProfile carries superelevation and shape records.
type LateralProfile struct {
	Superelevation []ElevationRecord
	Shape          []ShapeRecord
}

// ShapeRecord is a road-shape cubic at a given (s, t) anchor.
type ShapeRecord struct {
	S, T       float64
	A, B, C, D float64
}

// LaneOffsetRecord shifts the lane-section origin laterally from the
// reference line, as a cubic in s.
type LaneOffsetRecord struct {
	S          float64
	A, B, C, D float64
}

// Lanes is the ordered sequence of a road's lane sections plus any lane offsets.
type Lanes struct {
	LaneOffsets  []LaneOffsetRecord
	LaneSections []LaneSection
}

// LaneSection is a contiguous range of s with a fixed lane topology (§3).
type LaneSection struct {
	S      float64
	Left   []Lane
	Center []Lane
	Right  []Lane
}

// AllLanes returns left, center, and right lanes in a single slice, left-to-right.
func (ls LaneSection) AllLanes() []Lane {
	out := make([]Lane, 0, len(ls.Left)+len(ls.Center)+len(ls.Right))
	out = append(out, ls.Left...)
	out = append(out, ls.Center...)
	out = append(out, ls.Right...)
	return out
}

// LaneType is a lane's functional classification.
type LaneType string

const (
	LaneDriving  LaneType = "driving"
	LaneSidewalk LaneType = "sidewalk"
	LaneShoulder LaneType = "shoulder"
	LaneBiking   LaneType = "biking"
	LaneParking  LaneType = "parking"
	LaneBorder   LaneType = "border"
	LaneNone     LaneType = "none"
	LaneRail     LaneType = "rail"
	LaneMedian   LaneType = "median"
)

// LaneWidthRecord is one cubic-width segment, offset ds from the lane's start s.
type LaneWidthRecord struct {
	SOffset    float64
	A, B, C, D float64
}

// RoadMarkType classifies a lane's road mark.
type RoadMarkType string

const (
	RoadMarkNone     RoadMarkType = "none"
	RoadMarkSolid    RoadMarkType = "solid"
	RoadMarkBroken   RoadMarkType = "broken"
	RoadMarkSolidSolid RoadMarkType = "solid solid"
)

// RoadMarkRecord is one road-mark segment along a lane, offset ds from the lane section's start s.
type RoadMarkRecord struct {
	SOffset float64
	Type    RoadMarkType
	Width   float64
}

// Lane is one lane within a lane section (§3). ID is signed: negative =
// right of the reference line, 0 = center, positive = left.
type Lane struct {
	ID        int
	Type      LaneType
	Widths    []LaneWidthRecord
	RoadMarks []RoadMarkRecord
	Predecessor *int
	Successor   *int
}

// ObjectShapeKind tags an Object's geometric representation.
type ObjectShapeKind string

const (
	ObjectShapeBox     ObjectShapeKind = "box"
	ObjectShapeCylinder ObjectShapeKind = "cylinder"
	ObjectShapeRepeat  ObjectShapeKind = "repeat"
	ObjectShapeOutline ObjectShapeKind = "outline"
)

// ObjectType classifies road-furniture/vegetation/building objects (§6 mapping table).
type ObjectType string

const (
	ObjectTypeBarrier    ObjectType = "BARRIER"
	ObjectTypeStreetLamp ObjectType = "STREET_LAMP"
	ObjectTypeSignal     ObjectType = "SIGNAL"
	ObjectTypePole       ObjectType = "POLE"
	ObjectTypeTree       ObjectType = "TREE"
	ObjectTypeVegetation ObjectType = "VEGETATION"
	ObjectTypeBuilding   ObjectType = "BUILDING"
	ObjectTypeNone       ObjectType = "NONE"
)

// ObjectOutlinePoint is one vertex of an outline-shaped object, relative to the object's pose.
type ObjectOutlinePoint struct {
	U, V, Z float64
}

// ObjectRepeat describes how an object repeats along s (ObjectShapeRepeat).
type ObjectRepeat struct {
	S, Length, Distance float64
	WidthStart, WidthEnd float64
	HeightStart, HeightEnd float64
}

// Object is a 3D road object (§3): signs, trees, barriers, buildings, ...
type Object struct {
	ID     string
	Name   string
	Type   ObjectType
	S, T   float64
	ZOffset float64
	HOffset float64
	Height, Width, Length, Radius float64
	Shape  ObjectShapeKind
	Outline []ObjectOutlinePoint
	Repeat  *ObjectRepeat
}

// Signal is a traffic signal or sign placed along a road.
type Signal struct {
	ID, Type, Subtype, Country, Value string
	S, T, ZOffset, HOffset            float64
	Height, Width                     float64
	Orientation                       ContactPoint
}

// Road is one road element (§3).
type Road struct {
	ID     string
	Length float64
	PlanView         []PlanViewGeometry
	ElevationProfile *ElevationProfile
	LateralProfile   *LateralProfile
	Lanes            Lanes
	Objects          []Object
	Signals          []Signal
	Link             RoadLink
	JunctionID       string // "-1" or empty when the road is not part of a junction
}

// LaneLink maps an incoming lane id to a connecting-road lane id within a Connection.
type LaneLink struct {
	From, To int
}

// Connection is one incoming/connecting road pairing within a Junction.
type Connection struct {
	ID              string
	IncomingRoad    string
	ConnectingRoad  string
	ContactPoint    ContactPoint
	LaneLinks       []LaneLink
}

// Junction groups the connections that implement an intersection (§3).
type Junction struct {
	ID          string
	Connections []Connection
}
