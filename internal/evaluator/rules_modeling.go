package evaluator

import (
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// ModelingRulesPlan holds the per-road cross-entity rules that run after
// BasicDataTypePlan (§4.2). evaluateDanglingLaneLinks runs separately since
// it needs the whole model, not one road at a time.
var ModelingRulesPlan = Plan{
	roadShapeUnexpectedValueRule{},
}

// roadShapeUnexpectedValueRule clears lateralProfile.shape when a non-zero
// laneOffset is present, unless cfg.SkipRoadShapeRemoval suppresses it.
type roadShapeUnexpectedValueRule struct{}

func (rule roadShapeUnexpectedValueRule) Apply(cfg Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if cfg.SkipRoadShapeRemoval || r.LateralProfile == nil || len(r.LateralProfile.Shape) == 0 {
		return r, nil
	}
	if !hasNonZeroLaneOffset(r.Lanes.LaneOffsets) {
		return r, nil
	}
	src := report.SourceID{Kind: "road", ID: r.ID}
	r.LateralProfile.Shape = nil
	return r, report.MessageList{}.Fixed(CodeUnexpectedValue,
		"lateralProfile.shape cleared: road carries a non-zero laneOffset, which rtron resolves against shape ambiguously", src)
}

func hasNonZeroLaneOffset(offsets []opendrive.LaneOffsetRecord) bool {
	for _, o := range offsets {
		if o.A != 0 || o.B != 0 || o.C != 0 || o.D != 0 {
			return true
		}
	}
	return false
}

// evaluateDanglingLaneLinks reports (non-fatally) a junction connection
// whose laneLink to id does not exist among the connecting road's lane
// section lanes; the from id, which names a lane of the incoming road, is
// not checked. This is a supplement beyond spec.md's literal §3
// requirement: the sentinel-value case is handled fatally by
// EvaluateFatalViolations, but a reference to a real-looking, nonexistent
// lane id is neither a sentinel nor geometrically detectable until the
// roadspaces graph is built, so it is caught here against the raw model.
// It needs every road's lane ids at once, so it runs once over the whole
// model rather than through the per-road Plan loop.
func evaluateDanglingLaneLinks(m *opendrive.Model) report.MessageList {
	laneIDsByRoad := make(map[string]map[int]struct{}, len(m.Roads))
	for _, r := range m.Roads {
		ids := make(map[int]struct{})
		for _, ls := range r.Lanes.LaneSections {
			for _, lane := range ls.AllLanes() {
				ids[lane.ID] = struct{}{}
			}
		}
		laneIDsByRoad[r.ID] = ids
	}

	var msgs report.MessageList
	for _, j := range m.Junctions {
		src := report.SourceID{Kind: "junction", ID: j.ID}
		for _, c := range j.Connections {
			ids, ok := laneIDsByRoad[c.ConnectingRoad]
			if !ok {
				continue
			}
			for _, ll := range c.LaneLinks {
				if ll.From == LaneLinkSentinel || ll.To == LaneLinkSentinel {
					continue // fatal: EvaluateFatalViolations aborts the run before this runs
				}
				if _, ok := ids[ll.To]; !ok {
					msgs = msgs.Reported(CodeDanglingLaneLinkReference,
						"connection laneLink references a lane id not present on the connecting road",
						src, report.SeverityWarning)
				}
			}
		}
	}
	return msgs
}
