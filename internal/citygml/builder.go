package citygml

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rtron-go/rtron/internal/ids"
	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/report"
	"github.com/rtron-go/rtron/internal/roadspaces"
)

// Config carries the subset of §6's recognised options the CityGML
// builder consumes.
type Config struct {
	Visitor                       mathx.VisitorConfig
	GenerateRandomGeometryIDs     bool
	MappingBackwardsCompatibility bool
	CityGML3                      bool // selects the CityGML 3 marking-name path (§4.4 supplement)
}

// Build walks a RoadSpaces model and produces the CityGML feature graph
// (§4.4). Per-feature geometry failures are reported, not fatal: an object
// whose geometry can't be discretized is reported as a warning and left
// out of the output rather than aborting the whole model.
func Build(m *roadspaces.Model, cfg Config) (*CityModel, report.MessageList) {
	var msgs report.MessageList
	out := &CityModel{}

	for _, rs := range m.Roadspaces() {
		sections, sectionMsgs := buildSections(rs, cfg)
		msgs = msgs.Merge(sectionMsgs)

		objects, objMsgs := buildCityObjects(rs, cfg)
		msgs = msgs.Merge(objMsgs)

		if rs.InJunction() {
			out.Intersections = append(out.Intersections, Intersection{
				ID:         featureID(rs.ID, "intersection", cfg),
				JunctionID: rs.JunctionID,
				Sections:   sections,
				Objects:    objects,
			})
			continue
		}
		out.Roads = append(out.Roads, Road{
			ID:       featureID(rs.ID, "road", cfg),
			Sections: sections,
			Objects:  objects,
		})
	}

	return out, msgs
}

func featureID(sourceID, role string, cfg Config) string {
	if cfg.GenerateRandomGeometryIDs {
		return ids.RandomID()
	}
	return ids.DeterministicID(sourceID, role)
}

func buildSections(rs *roadspaces.Roadspace, cfg Config) ([]Section, report.MessageList) {
	var msgs report.MessageList
	sections := make([]Section, 0, len(rs.LaneSections))

	laneFillers := lo.Filter(rs.Fillers, func(f roadspaces.FillerSurface, _ int) bool { return f.LaneID != nil })
	fillersByLane := lo.GroupBy(laneFillers, func(f roadspaces.FillerSurface) int { return *f.LaneID })

	for secIdx, sec := range rs.LaneSections {
		built := Section{ID: featureID(fmt.Sprintf("%s/%g", rs.ID, sec.S), fmt.Sprintf("section%d", secIdx), cfg)}

		for _, lane := range sec.Lanes {
			code := laneCodeFor(lane.Type)
			direction := laneDirection(lane.ID)
			laneBoundary := buildLaneBoundarySurfaces(rs.ID, lane, fillersByLane[lane.ID], code, cfg)
			built.Markings = append(built.Markings, buildMarkings(rs.ID, lane, cfg)...)

			if code.Traffic {
				built.TrafficSpaces = append(built.TrafficSpaces, TrafficSpace{
					ID:             featureID(fmt.Sprintf("%s/%g/%d", rs.ID, sec.S, lane.ID), "trafficSpace", cfg),
					LaneID:         lane.ID,
					Function:       code.Function,
					Usage:          code.Usage,
					Direction:      direction,
					Lod2MultiCurve: mathx.DiscretizedGeometry{LineString: &lane.CenterLine},
					BoundedBy:      laneBoundary,
				})
			} else {
				built.AuxiliaryTrafficSpaces = append(built.AuxiliaryTrafficSpaces, AuxiliaryTrafficSpace{
					ID:             featureID(fmt.Sprintf("%s/%g/%d", rs.ID, sec.S, lane.ID), "auxiliaryTrafficSpace", cfg),
					LaneID:         lane.ID,
					Function:       code.Function,
					Usage:          code.Usage,
					Direction:      direction,
					Lod2MultiCurve: mathx.DiscretizedGeometry{LineString: &lane.CenterLine},
					BoundedBy:      laneBoundary,
				})
			}
		}

		sections = append(sections, built)
	}

	return sections, msgs
}

// buildLaneBoundarySurfaces attaches the lane's own road surface plus any
// filler surfaces bordering it as additional boundary thematic surfaces
// on the same traffic space (§4.4).
func buildLaneBoundarySurfaces(roadID string, lane roadspaces.Lane, fillers []roadspaces.FillerSurface, code laneCode, cfg Config) []ThematicSurface {
	kind := SurfaceAuxiliaryTrafficArea
	if code.Traffic {
		kind = SurfaceTrafficArea
	}

	surfaces := []ThematicSurface{{
		ID:       featureID(fmt.Sprintf("%s/%d/surface", roadID, lane.ID), "thematicSurface", cfg),
		Kind:     kind,
		Function: code.Function,
		Usage:    code.Usage,
		Geometry: mathx.DiscretizedGeometry{Surface: &lane.Surface},
	}}

	for i, f := range fillers {
		surfaces = append(surfaces, ThematicSurface{
			ID:       featureID(fmt.Sprintf("%s/%d/filler%d", roadID, lane.ID, i), "thematicSurface", cfg),
			Kind:     kind,
			Function: string(f.Kind),
			Geometry: mathx.DiscretizedGeometry{Surface: &mathx.MultiSurface3D{Polygons: []mathx.Polygon3D{f.Surface}}},
		})
	}

	return surfaces
}

// buildMarkings turns a lane's road-mark records into Marking features
// along its outer boundary (§4.4 supplement, §9 Open Question 3): the
// CityGML 2 path additionally copies gml:name from the mark's type enum
// under MappingBackwardsCompatibility, the CityGML 3 path relies on
// Function alone.
func buildMarkings(roadID string, lane roadspaces.Lane, cfg Config) []Marking {
	var out []Marking
	for i, rm := range lane.RoadMarks {
		m := Marking{
			ID:       featureID(fmt.Sprintf("%s/%d/mark%d", roadID, lane.ID, i), "marking", cfg),
			LaneID:   lane.ID,
			Function: string(rm.Type),
			Geometry: mathx.DiscretizedGeometry{LineString: &lane.OuterBoundary},
		}
		if cfg.MappingBackwardsCompatibility && !cfg.CityGML3 {
			m.Name = string(rm.Type)
		}
		out = append(out, m)
	}
	return out
}

func buildCityObjects(rs *roadspaces.Roadspace, cfg Config) ([]CityObject, report.MessageList) {
	var msgs report.MessageList
	var out []CityObject

	for _, obj := range rs.Objects {
		class := classifyObject(obj.Name, obj.Type)
		geom, err := mathx.Discretize(obj.Geometry, cfg.Visitor)
		if err != nil {
			msgs = msgs.Reported(CodeGeometryDiscretizationFailure,
				fmt.Sprintf("object %q: %v", obj.ID, err), report.SourceID{Kind: "object", ID: obj.ID}, report.SeverityWarning)
			continue
		}
		out = append(out, CityObject{
			ID:       featureID(obj.ID, "cityObject", cfg),
			Name:     obj.Name,
			Class:    class,
			Geometry: geom,
		})
	}

	return out, msgs
}

// CodeGeometryDiscretizationFailure is the non-fatal code for an object
// whose geometry primitive couldn't be reduced to a DiscretizedGeometry.
const CodeGeometryDiscretizationFailure = "GeometryDiscretizationFailure"
