package roadspaces

import (
	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// buildLongitudinalBetweenRoadsFillers closes the gap between a roadspace's
// successor end and the successor roadspace's contact end, when the two
// reference lines don't already meet within tolerance (§4.3 step 6, part
// 3). Matching roadspaces (the common case, e.g. two roads butted
// end-to-start) produce neither a filler surface nor a report entry.
func buildLongitudinalBetweenRoadsFillers(m *Model, cfg BuildConfig) report.MessageList {
	var msgs report.MessageList
	tol := cfg.DistanceTolerance
	if tol <= 0 {
		tol = mathx.MinTolerance
	}

	for idx, rs := range m.spaces {
		linkage := m.linkages[idx]
		if linkage.SuccessorIndex == nil {
			continue
		}
		succ := m.spaces[*linkage.SuccessorIndex]

		endpointMsgs := checkContactEndpoint(rs, succ, opendrive.ContactEnd, linkage.SuccessorContact, tol)
		if len(endpointMsgs) == 0 {
			continue
		}
		msgs = msgs.Merge(endpointMsgs)

		if len(rs.LaneSections) == 0 || len(succ.LaneSections) == 0 {
			continue
		}
		lastSection := rs.LaneSections[len(rs.LaneSections)-1]
		var otherSection LaneSection
		if linkage.SuccessorContact == opendrive.ContactEnd {
			otherSection = succ.LaneSections[len(succ.LaneSections)-1]
		} else {
			otherSection = succ.LaneSections[0]
		}

		for _, lane := range lastSection.Lanes {
			if len(lane.InnerBoundary.Points) == 0 || len(lane.OuterBoundary.Points) == 0 {
				continue
			}
			ownInner := lane.InnerBoundary.Points[len(lane.InnerBoundary.Points)-1]
			ownOuter := lane.OuterBoundary.Points[len(lane.OuterBoundary.Points)-1]

			otherLane, ok := findLaneByID(otherSection, lane.ID)
			if !ok || len(otherLane.InnerBoundary.Points) == 0 {
				continue
			}
			otherInner := boundaryEndpoint(otherLane.InnerBoundary, linkage.SuccessorContact)
			otherOuter := boundaryEndpoint(otherLane.OuterBoundary, linkage.SuccessorContact)

			if ownInner.FuzzyEquals(otherInner, tol) && ownOuter.FuzzyEquals(otherOuter, tol) {
				continue
			}
			laneID := lane.ID
			m.spaces[idx].Fillers = append(m.spaces[idx].Fillers, FillerSurface{
				Kind:   FillerLongitudinalBetweenRoads,
				LaneID: &laneID,
				Surface: mathx.Polygon3D{
					Vertices: []mathx.Vector3D{ownInner, ownOuter, otherOuter, otherInner},
				},
			})
		}
	}

	return msgs
}

func findLaneByID(section LaneSection, id int) (Lane, bool) {
	for _, l := range section.Lanes {
		if l.ID == id {
			return l, true
		}
	}
	return Lane{}, false
}

func boundaryEndpoint(ls mathx.LineString3D, contact opendrive.ContactPoint) mathx.Vector3D {
	if contact == opendrive.ContactEnd {
		return ls.Points[len(ls.Points)-1]
	}
	return ls.Points[0]
}
