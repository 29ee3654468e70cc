package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

func baseRoad() opendrive.Road {
	return opendrive.Road{
		ID:       "1",
		Length:   10,
		PlanView: []opendrive.PlanViewGeometry{{Length: 10, Kind: opendrive.GeometryLine}},
		Lanes:    opendrive.Lanes{LaneSections: []opendrive.LaneSection{{S: 0}}},
	}
}

// §8 scenario 5.
func TestEvaluateNonFatalViolations_HealsNonStrictlySortedElevation(t *testing.T) {
	r := baseRoad()
	r.ElevationProfile = &opendrive.ElevationProfile{Elevation: []opendrive.ElevationRecord{
		{S: 0}, {S: 5}, {S: 3}, {S: 7},
	}}
	m := &opendrive.Model{Roads: []opendrive.Road{r}}

	healed, msgs := EvaluateNonFatalViolations(m, Config{})
	require.Len(t, healed.Roads, 1)
	ss := make([]float64, len(healed.Roads[0].ElevationProfile.Elevation))
	for i, e := range healed.Roads[0].ElevationProfile.Elevation {
		ss[i] = e.S
	}
	assert.Equal(t, []float64{0, 5, 7}, ss)

	count := 0
	for _, msg := range msgs {
		if msg.Code == CodeNonStrictlySortedList {
			count++
		}
	}
	assert.Equal(t, 1, count)

	// Original model must be untouched.
	assert.Equal(t, []float64{0, 5, 3, 7}, []float64{
		m.Roads[0].ElevationProfile.Elevation[0].S,
		m.Roads[0].ElevationProfile.Elevation[1].S,
		m.Roads[0].ElevationProfile.Elevation[2].S,
		m.Roads[0].ElevationProfile.Elevation[3].S,
	})
}

func TestEvaluateNonFatalViolations_ClearsEmptyElevationProfile(t *testing.T) {
	r := baseRoad()
	r.ElevationProfile = &opendrive.ElevationProfile{}
	m := &opendrive.Model{Roads: []opendrive.Road{r}}

	healed, msgs := EvaluateNonFatalViolations(m, Config{})
	assert.Nil(t, healed.Roads[0].ElevationProfile)
	assert.True(t, hasCode(msgs, CodeNoElevationProfileElements))
}

func TestEvaluateNonFatalViolations_ClearsShapeWhenLaneOffsetNonZero(t *testing.T) {
	r := baseRoad()
	r.LateralProfile = &opendrive.LateralProfile{Shape: []opendrive.ShapeRecord{{S: 0, T: 0, A: 1}}}
	r.Lanes.LaneOffsets = []opendrive.LaneOffsetRecord{{S: 0, A: 0.5}}
	m := &opendrive.Model{Roads: []opendrive.Road{r}}

	healed, msgs := EvaluateNonFatalViolations(m, Config{})
	assert.Empty(t, healed.Roads[0].LateralProfile.Shape)
	assert.True(t, hasCode(msgs, CodeUnexpectedValue))
}

func TestEvaluateNonFatalViolations_SkipRoadShapeRemoval(t *testing.T) {
	r := baseRoad()
	r.LateralProfile = &opendrive.LateralProfile{Shape: []opendrive.ShapeRecord{{S: 0, T: 0, A: 1}}}
	r.Lanes.LaneOffsets = []opendrive.LaneOffsetRecord{{S: 0, A: 0.5}}
	m := &opendrive.Model{Roads: []opendrive.Road{r}}

	healed, msgs := EvaluateNonFatalViolations(m, Config{SkipRoadShapeRemoval: true})
	assert.Len(t, healed.Roads[0].LateralProfile.Shape, 1)
	assert.False(t, hasCode(msgs, CodeUnexpectedValue))
}

func TestEvaluateNonFatalViolations_ClearsNonFiniteHeaderBound(t *testing.T) {
	north := math.NaN()
	m := &opendrive.Model{
		Header: &opendrive.Header{North: &north},
		Roads:  []opendrive.Road{baseRoad()},
	}

	healed, msgs := EvaluateNonFatalViolations(m, Config{})
	assert.Nil(t, healed.Header.North)
	assert.True(t, hasCode(msgs, CodeEmptyValueForOptionalAttribute))
}

func TestEvaluateNonFatalViolations_DanglingLaneLinkReference(t *testing.T) {
	roadB := baseRoad()
	roadB.ID = "B"
	roadB.Lanes.LaneSections[0].Right = []opendrive.Lane{{ID: -1}}

	m := &opendrive.Model{
		Roads: []opendrive.Road{baseRoad(), roadB},
		Junctions: []opendrive.Junction{{
			ID: "J",
			Connections: []opendrive.Connection{{
				ID:             "c1",
				IncomingRoad:   "1",
				ConnectingRoad: "B",
				LaneLinks:      []opendrive.LaneLink{{From: -1, To: -2}},
			}},
		}},
	}

	_, msgs := EvaluateNonFatalViolations(m, Config{})
	assert.True(t, hasCode(msgs, CodeDanglingLaneLinkReference))
}

func hasCode(msgs report.MessageList, code string) bool {
	for _, m := range msgs {
		if m.Code == code {
			return true
		}
	}
	return false
}
