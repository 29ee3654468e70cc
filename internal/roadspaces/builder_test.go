package roadspaces

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/opendrive"
)

func straightRoad(id string, length float64, rightWidth float64) opendrive.Road {
	return opendrive.Road{
		ID:     id,
		Length: length,
		PlanView: []opendrive.PlanViewGeometry{
			{S: 0, Length: length, Kind: opendrive.GeometryLine},
		},
		Lanes: opendrive.Lanes{
			LaneSections: []opendrive.LaneSection{
				{
					S: 0,
					Right: []opendrive.Lane{
						{ID: -1, Type: opendrive.LaneDriving, Widths: []opendrive.LaneWidthRecord{{SOffset: 0, A: rightWidth}}},
					},
				},
			},
		},
	}
}

func TestBuild_SingleStraightRoad_RectangleCorners(t *testing.T) {
	road := straightRoad("1", 10, 3)
	m := &opendrive.Model{Roads: []opendrive.Road{road}}

	built, msgs := Build(context.Background(), m, BuildConfig{DiscretizationStepSize: 10, DistanceTolerance: 1e-6})
	require.False(t, msgs.HasFatal(), "unexpected fatal messages: %v", msgs)

	rs, ok := built.RoadspaceByID("1")
	require.True(t, ok)
	require.Len(t, rs.LaneSections, 1)
	require.Len(t, rs.LaneSections[0].Lanes, 1)

	lane := rs.LaneSections[0].Lanes[0]
	require.Len(t, lane.InnerBoundary.Points, 2)
	require.Len(t, lane.OuterBoundary.Points, 2)

	assert.InDelta(t, 0, lane.InnerBoundary.Points[0].X, 1e-9)
	assert.InDelta(t, 0, lane.InnerBoundary.Points[0].Y, 1e-9)
	assert.InDelta(t, 10, lane.InnerBoundary.Points[1].X, 1e-9)
	assert.InDelta(t, 0, lane.InnerBoundary.Points[1].Y, 1e-9)

	assert.InDelta(t, 0, lane.OuterBoundary.Points[0].X, 1e-9)
	assert.InDelta(t, -3, lane.OuterBoundary.Points[0].Y, 1e-9)
	assert.InDelta(t, 10, lane.OuterBoundary.Points[1].X, 1e-9)
	assert.InDelta(t, -3, lane.OuterBoundary.Points[1].Y, 1e-9)
}

func TestBuild_CubicWidthLane_OuterBoundaryAtSamples(t *testing.T) {
	road := opendrive.Road{
		ID:     "1",
		Length: 10,
		PlanView: []opendrive.PlanViewGeometry{
			{S: 0, Length: 10, Kind: opendrive.GeometryLine},
		},
		Lanes: opendrive.Lanes{
			LaneSections: []opendrive.LaneSection{
				{
					S: 0,
					Right: []opendrive.Lane{
						{ID: -1, Type: opendrive.LaneDriving, Widths: []opendrive.LaneWidthRecord{
							{SOffset: 0, A: 3, B: 0, C: 0, D: 0.01},
						}},
					},
				},
			},
		},
	}
	m := &opendrive.Model{Roads: []opendrive.Road{road}}

	built, msgs := Build(context.Background(), m, BuildConfig{DiscretizationStepSize: 5, DistanceTolerance: 1e-6})
	require.False(t, msgs.HasFatal())

	rs, _ := built.RoadspaceByID("1")
	lane := rs.LaneSections[0].Lanes[0]
	require.Len(t, lane.OuterBoundary.Points, 3)

	widthAt := func(ds float64) float64 { return 3 + 0.01*ds*ds*ds }
	assert.InDelta(t, -widthAt(0), lane.OuterBoundary.Points[0].Y, 1e-6)
	assert.InDelta(t, -widthAt(5), lane.OuterBoundary.Points[1].Y, 1e-6)
	assert.InDelta(t, -widthAt(10), lane.OuterBoundary.Points[2].Y, 1e-6)
}

func TestBuild_TwoConnectedRoads_NoFillerWhenEndpointsMeet(t *testing.T) {
	roadA := straightRoad("A", 10, 3)
	roadA.Link.Successor = &opendrive.Link{ElementType: opendrive.ElementRoad, ElementID: "B", ContactPoint: opendrive.ContactStart}

	roadB := straightRoad("B", 10, 3)
	roadB.PlanView[0].X = 10
	roadB.Link.Predecessor = &opendrive.Link{ElementType: opendrive.ElementRoad, ElementID: "A", ContactPoint: opendrive.ContactEnd}

	m := &opendrive.Model{Roads: []opendrive.Road{roadA, roadB}}
	built, msgs := Build(context.Background(), m, BuildConfig{DiscretizationStepSize: 10, DistanceTolerance: 1e-6})
	require.False(t, msgs.HasFatal())

	for _, msg := range msgs {
		assert.NotEqual(t, CodeEndpointMismatch, msg.Code, "expected no endpoint-mismatch report when roads already butt together")
	}

	rsA, _ := built.RoadspaceByID("A")
	assert.Empty(t, rsA.Fillers, "expected no between-roads filler when endpoints already meet")
}

func TestBuild_UnresolvedSuccessor_ReportsFatal(t *testing.T) {
	road := straightRoad("1", 10, 3)
	road.Link.Successor = &opendrive.Link{ElementType: opendrive.ElementRoad, ElementID: "missing", ContactPoint: opendrive.ContactStart}

	m := &opendrive.Model{Roads: []opendrive.Road{road}}
	_, msgs := Build(context.Background(), m, BuildConfig{DiscretizationStepSize: 10, DistanceTolerance: 1e-6})
	assert.True(t, msgs.HasFatal())
}

func TestBuild_CancelledContext_StopsBetweenRoads(t *testing.T) {
	m := &opendrive.Model{Roads: []opendrive.Road{
		straightRoad("1", 10, 3),
		straightRoad("2", 10, 3),
		straightRoad("3", 10, 3),
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	built, msgs := Build(ctx, m, BuildConfig{DiscretizationStepSize: 10, DistanceTolerance: 1e-6})
	require.Empty(t, built.Roadspaces(), "no road should be built once ctx is already cancelled")

	var sawCancelled bool
	for _, msg := range msgs {
		if msg.Code == CodeCancelled {
			sawCancelled = true
		}
	}
	assert.True(t, sawCancelled, "expected a Cancelled message, got: %v", msgs)
}
