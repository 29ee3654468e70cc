// Package roadspaces builds the intermediate RoadSpaces model — one
// geometric roadspace per OpenDRIVE road, plus the linkage graph tying
// roadspaces and junctions together — from a healed opendrive.Model
// (§4.3).
package roadspaces

import (
	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
)

// FillerKind classifies a filler surface by which gap it closes (§4.3 step 6).
type FillerKind string

const (
	FillerLateral                  FillerKind = "lateral"
	FillerLongitudinalWithinRoad   FillerKind = "longitudinalWithinRoad"
	FillerLongitudinalBetweenRoads FillerKind = "longitudinalBetweenRoads"
)

// FillerSurface is a surface patch closing a gap the lane surfaces
// themselves don't cover. LaneID names the lane it borders; the builder
// sets it on every filler it produces (longitudinal within a road and
// between roads, one filler per mismatched lane).
type FillerSurface struct {
	Kind    FillerKind
	LaneID  *int
	Surface mathx.Polygon3D
}

// Lane is one lane's built geometry within a LaneSection.
type Lane struct {
	ID            int
	Type          opendrive.LaneType
	CenterLine    mathx.LineString3D
	Surface       mathx.MultiSurface3D
	InnerBoundary mathx.LineString3D
	OuterBoundary mathx.LineString3D
	Predecessor   *int
	Successor     *int
	RoadMarks     []opendrive.RoadMarkRecord
}

// LaneSection is one built lane section: all its lanes' geometry. It holds
// no filler surfaces; every filler is attached at the Roadspace level.
type LaneSection struct {
	S     float64
	Lanes []Lane
}

// Object is a roadspace object's built pose and geometry primitive (§4.3 step 7).
type Object struct {
	ID       string
	Name     string
	Type     opendrive.ObjectType
	Pose     mathx.Pose
	Geometry mathx.GeometryPrimitive
}

// Roadspace is one road's complete built geometry.
type Roadspace struct {
	ID            string
	ReferenceLine mathx.Curve3D
	LaneSections  []LaneSection
	Fillers       []FillerSurface
	Objects       []Object
	JunctionID    string
}

// InJunction reports whether the roadspace's source road belongs to a
// junction: OpenDRIVE represents "no junction" as either an empty
// junction id or the sentinel "-1" (§3).
func (rs *Roadspace) InJunction() bool {
	return isJunctionID(rs.JunctionID)
}

func isJunctionID(id string) bool {
	return id != "" && id != "-1"
}

// RoadspaceIndex is an arena index into a Model's roadspaces, used by
// Linkage so lookups don't repeatedly hash a string id (§9 "Linkage graph").
type RoadspaceIndex int

// LaneIdentifier names one lane of one roadspace.
type LaneIdentifier struct {
	RoadID string
	LaneID int
}

// Linkage records one roadspace's predecessor/successor roadspace (or
// junction) and the contact points involved.
type Linkage struct {
	PredecessorIndex   *RoadspaceIndex
	PredecessorContact opendrive.ContactPoint
	SuccessorIndex      *RoadspaceIndex
	SuccessorContact    opendrive.ContactPoint
	JunctionID          string
}

// Model is the built RoadSpaces model: an arena of roadspaces, their
// linkage graph, and the source junctions (needed to resolve
// junction-mediated successor lane lookups).
type Model struct {
	order     []string
	indexByID map[string]RoadspaceIndex
	spaces    []*Roadspace
	linkages  []Linkage
	junctions map[string]opendrive.Junction
}

// NewModel builds an empty Model with capacity for n roadspaces.
func NewModel(n int) *Model {
	return &Model{
		indexByID: make(map[string]RoadspaceIndex, n),
		spaces:    make([]*Roadspace, 0, n),
		linkages:  make([]Linkage, 0, n),
		junctions: make(map[string]opendrive.Junction),
	}
}

// addRoadspace appends rs and returns its arena index.
func (m *Model) addRoadspace(rs *Roadspace, linkage Linkage) RoadspaceIndex {
	idx := RoadspaceIndex(len(m.spaces))
	m.spaces = append(m.spaces, rs)
	m.linkages = append(m.linkages, linkage)
	m.indexByID[rs.ID] = idx
	m.order = append(m.order, rs.ID)
	return idx
}

// RoadspaceByID returns the roadspace with the given road id, in build order.
func (m *Model) RoadspaceByID(id string) (*Roadspace, bool) {
	idx, ok := m.indexByID[id]
	if !ok {
		return nil, false
	}
	return m.spaces[idx], true
}

// Roadspaces returns every built roadspace in build (= input) order.
func (m *Model) Roadspaces() []*Roadspace {
	return m.spaces
}

// LinkageOf returns the linkage record for the roadspace with the given road id.
func (m *Model) LinkageOf(id string) (Linkage, bool) {
	idx, ok := m.indexByID[id]
	if !ok {
		return Linkage{}, false
	}
	return m.linkages[idx], true
}

// Junction returns the junction with the given id, as indexed during Build.
func (m *Model) Junction(id string) (opendrive.Junction, bool) {
	j, ok := m.junctions[id]
	return j, ok
}
