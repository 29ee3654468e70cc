package roadspaces

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// GetSuccessorLaneIdentifiers follows laneID's successor link from road
// roadID: a direct road link if one exists, or — when the road's successor
// is a junction — every connection's lane-link entry for laneID (§4.3
// "Topology"). Fatal when a referenced roadspace id does not resolve.
func (m *Model) GetSuccessorLaneIdentifiers(roadID string, laneID int) ([]LaneIdentifier, report.MessageList) {
	linkage, ok := m.LinkageOf(roadID)
	if !ok {
		return nil, report.MessageList{}.Fatal(CodeUnresolvedRoadspace,
			fmt.Sprintf("roadspace %q not found", roadID), report.SourceID{Kind: "road", ID: roadID})
	}

	if linkage.SuccessorIndex != nil {
		succ := m.spaces[*linkage.SuccessorIndex]
		return []LaneIdentifier{{RoadID: succ.ID, LaneID: laneID}}, nil
	}

	if !isJunctionID(linkage.JunctionID) {
		return nil, nil
	}

	j, ok := m.Junction(linkage.JunctionID)
	if !ok {
		return nil, report.MessageList{}.Fatal(CodeUnresolvedRoadspace,
			fmt.Sprintf("junction %q not found", linkage.JunctionID), report.SourceID{Kind: "road", ID: roadID})
	}

	var out []LaneIdentifier
	var msgs report.MessageList
	for _, c := range j.Connections {
		if c.IncomingRoad != roadID {
			continue
		}
		for _, ll := range c.LaneLinks {
			if ll.From != laneID {
				continue
			}
			out = append(out, LaneIdentifier{RoadID: c.ConnectingRoad, LaneID: ll.To})
		}
	}
	out = lo.UniqBy(out, func(id LaneIdentifier) string { return id.RoadID + "/" + fmt.Sprint(id.LaneID) })
	return out, msgs
}

// CodeUnresolvedRoadspace is the fatal code for a linkage referencing a
// road or junction id absent from the built Model.
const CodeUnresolvedRoadspace = "UnresolvedRoadspace"

// CodeEndpointMismatch is the non-fatal code reported when two roadspaces'
// geometric endpoints don't meet within distanceTolerance at a claimed
// contact point (§4.3 "Topology").
const CodeEndpointMismatch = "EndpointMismatch"

// checkContactEndpoint reports a non-fatal EndpointMismatch when roadspace
// a's endpoint at contact aContact doesn't meet roadspace b's endpoint at
// contact bContact within tol.
func checkContactEndpoint(a, b *Roadspace, aContact, bContact opendrive.ContactPoint, tol float64) report.MessageList {
	aS := 0.0
	if aContact == opendrive.ContactEnd {
		aS = a.ReferenceLine.Length()
	}
	bS := 0.0
	if bContact == opendrive.ContactEnd {
		bS = b.ReferenceLine.Length()
	}

	aPt, err := a.ReferenceLine.CalculatePoint(aS)
	if err != nil {
		return nil
	}
	bPt, err := b.ReferenceLine.CalculatePoint(bS)
	if err != nil {
		return nil
	}
	if aPt.FuzzyEquals(bPt, tol) {
		return nil
	}
	return report.MessageList{}.Reported(CodeEndpointMismatch,
		fmt.Sprintf("roadspace %q and %q endpoints do not meet within tolerance", a.ID, b.ID),
		report.SourceID{Kind: "road", ID: a.ID}, report.SeverityWarning)
}
