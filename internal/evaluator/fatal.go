package evaluator

import (
	"math"
	"strings"

	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// EvaluateFatalViolations emits fatal messages for unrecoverable states and
// never mutates m (§4.2).
func EvaluateFatalViolations(m *opendrive.Model) report.MessageList {
	var msgs report.MessageList

	for _, r := range m.Roads {
		src := report.SourceID{Kind: "road", ID: r.ID}

		if strings.TrimSpace(r.ID) == "" {
			msgs = msgs.Fatal(CodeBlankRequiredID, "road id is blank", src)
		}
		if !isFiniteNonNegative(r.Length) {
			msgs = msgs.Fatal(CodeNonFiniteRequired, "road length is non-finite or negative", src)
		}
		if len(r.PlanView) == 0 {
			msgs = msgs.Fatal(CodeNoPlanViewGeometry, "road has no planView geometry", src)
		}
		if len(r.Lanes.LaneSections) == 0 {
			msgs = msgs.Fatal(CodeNoLaneSections, "road has no lane sections", src)
		}

		for _, ls := range r.Lanes.LaneSections {
			for _, lane := range ls.AllLanes() {
				if lane.Predecessor != nil && isSentinel(*lane.Predecessor) && lane.Successor != nil && isSentinel(*lane.Successor) {
					msgs = msgs.Fatal(CodeSentinelLaneLink, "lane link predecessor and successor are both sentinel", src)
				}
			}
		}
	}

	for _, j := range m.Junctions {
		src := report.SourceID{Kind: "junction", ID: j.ID}
		if strings.TrimSpace(j.ID) == "" {
			msgs = msgs.Fatal(CodeBlankRequiredID, "junction id is blank", src)
		}
		for _, c := range j.Connections {
			if strings.TrimSpace(c.IncomingRoad) == "" || strings.TrimSpace(c.ConnectingRoad) == "" {
				msgs = msgs.Fatal(CodeBlankRequiredID, "connection references a blank road id", src)
			}
			for _, ll := range c.LaneLinks {
				if isSentinel(ll.From) || isSentinel(ll.To) {
					msgs = msgs.Fatal(CodeSentinelLaneLink, "connection laneLink from/to is sentinel", src)
				}
			}
		}
	}

	return msgs
}

func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func isSentinel(v int) bool {
	return v == LaneLinkSentinel
}
