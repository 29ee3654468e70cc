package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rtron-go/rtron/internal/opendrive"
)

func TestEvaluateFatalViolations_BlankRoadID(t *testing.T) {
	m := &opendrive.Model{Roads: []opendrive.Road{{
		ID:       "",
		Length:   10,
		PlanView: []opendrive.PlanViewGeometry{{Length: 10, Kind: opendrive.GeometryLine}},
		Lanes:    opendrive.Lanes{LaneSections: []opendrive.LaneSection{{S: 0}}},
	}}}

	msgs := EvaluateFatalViolations(m)
	assert.True(t, msgs.HasFatal())
	found := false
	for _, msg := range msgs {
		if msg.Code == CodeBlankRequiredID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEvaluateFatalViolations_NoPlanViewOrLaneSections(t *testing.T) {
	m := &opendrive.Model{Roads: []opendrive.Road{{ID: "1", Length: 10}}}

	msgs := EvaluateFatalViolations(m)
	assert.Equal(t, 2, len(msgs))
	codes := map[string]bool{}
	for _, msg := range msgs {
		codes[msg.Code] = true
	}
	assert.True(t, codes[CodeNoPlanViewGeometry])
	assert.True(t, codes[CodeNoLaneSections])
}

func TestEvaluateFatalViolations_ValidRoadProducesNoMessages(t *testing.T) {
	m := &opendrive.Model{Roads: []opendrive.Road{{
		ID:       "1",
		Length:   10,
		PlanView: []opendrive.PlanViewGeometry{{Length: 10, Kind: opendrive.GeometryLine}},
		Lanes:    opendrive.Lanes{LaneSections: []opendrive.LaneSection{{S: 0}}},
	}}}

	msgs := EvaluateFatalViolations(m)
	assert.Empty(t, msgs)
}

func TestEvaluateFatalViolations_SentinelLaneLinkBothSides(t *testing.T) {
	pred, succ := LaneLinkSentinel, LaneLinkSentinel
	m := &opendrive.Model{Roads: []opendrive.Road{{
		ID:       "1",
		Length:   10,
		PlanView: []opendrive.PlanViewGeometry{{Length: 10, Kind: opendrive.GeometryLine}},
		Lanes: opendrive.Lanes{LaneSections: []opendrive.LaneSection{{
			S:     0,
			Right: []opendrive.Lane{{ID: -1, Predecessor: &pred, Successor: &succ}},
		}}},
	}}}

	msgs := EvaluateFatalViolations(m)
	assert.True(t, msgs.HasFatal())
	assert.Equal(t, CodeSentinelLaneLink, msgs[len(msgs)-1].Code)
}
