// Package citygml builds the CityGML feature graph (§3 "CityGML feature
// graph", §4.4) from a built RoadSpaces model. It never touches the wire
// format: CityGML 2.0/3.0 serialisation is consumed only through the
// Writer interface, an external concern (§6 "Output serialisation").
package citygml

import (
	"github.com/rtron-go/rtron/internal/mathx"
)

// TrafficDirection is a traffic space's allowed direction of travel
// relative to the road's reference-line direction (§4.4, RHT assumption).
type TrafficDirection string

const (
	TrafficForwards  TrafficDirection = "FORWARDS"
	TrafficBackwards TrafficDirection = "BACKWARDS"
)

// FeatureClass classifies a road object as a CityGML feature kind (§6
// mapping table).
type FeatureClass string

const (
	FeatureCityFurniture          FeatureClass = "CityFurniture"
	FeatureTransportationComplex  FeatureClass = "TransportationComplex"
	FeatureVegetation             FeatureClass = "Vegetation"
	FeatureBuilding               FeatureClass = "Building"
	FeatureGenericCityObject      FeatureClass = "GenericCityObject"
)

// ThematicSurfaceKind names one boundary surface role on a traffic space.
type ThematicSurfaceKind string

const (
	SurfaceTrafficArea          ThematicSurfaceKind = "TrafficArea"
	SurfaceAuxiliaryTrafficArea ThematicSurfaceKind = "AuxiliaryTrafficArea"
)

// ThematicSurface is one boundary surface attached to a traffic space:
// the lane's own road surface or a filler surface. Road markings are
// separate Marking features (Section.Markings).
type ThematicSurface struct {
	ID       string
	Kind     ThematicSurfaceKind
	Function string
	Usage    string
	Name     string // not set by Build; marking names are carried by Marking.Name
	Geometry mathx.DiscretizedGeometry
}

// TrafficSpace is one drivable lane's CityGML representation.
type TrafficSpace struct {
	ID               string
	LaneID           int
	Function         string
	Usage            string
	Direction        TrafficDirection
	Lod2MultiCurve   mathx.DiscretizedGeometry
	BoundedBy        []ThematicSurface
}

// AuxiliaryTrafficSpace is one non-drivable lane's CityGML representation
// (sidewalk, shoulder, border, median, ...).
type AuxiliaryTrafficSpace struct {
	ID             string
	LaneID         int
	Function       string
	Usage          string
	Direction      TrafficDirection
	Lod2MultiCurve mathx.DiscretizedGeometry
	BoundedBy      []ThematicSurface
}

// CityObject is a non-lane road object: city furniture, vegetation, a
// building, or a generic fallback (§6 mapping table).
type CityObject struct {
	ID       string
	Name     string
	Class    FeatureClass
	Geometry mathx.DiscretizedGeometry
}

// Marking is a road-mark segment emitted as its own feature, with line
// geometry along the lane's outer boundary (§4.4 supplement, §9 Open
// Question 3). Name is populated only under
// Config.MappingBackwardsCompatibility and only for the CityGML 2 path;
// CityGML 3 consumers are expected to rely on Function instead.
type Marking struct {
	ID       string
	LaneID   int
	Function string
	Name     string
	Geometry mathx.DiscretizedGeometry
}

// Section is one lane section's worth of traffic/auxiliary spaces.
type Section struct {
	ID                     string
	TrafficSpaces          []TrafficSpace
	AuxiliaryTrafficSpaces []AuxiliaryTrafficSpace
	Markings               []Marking
}

// Road is one roadspace's CityGML representation: a sequence of sections
// plus the road-level objects (§4.4 "Emit one CityGML Road ... per
// roadspace").
type Road struct {
	ID       string
	Sections []Section
	Objects  []CityObject
}

// Intersection is a junction-associated roadspace's CityGML representation
// (§4.4 "optionally split into Section/Intersection").
type Intersection struct {
	ID       string
	JunctionID string
	Sections []Section
	Objects  []CityObject
}

// CityModel is the root of the built CityGML feature graph (§3 "CityGML
// feature graph").
type CityModel struct {
	Roads         []Road
	Intersections []Intersection
}

// Writer serialises a CityModel to a concrete CityGML version. The core
// never implements a Writer itself (§6, §1 "out of scope").
type Writer interface {
	Write(model *CityModel, targetPath string) (string, error)
}
