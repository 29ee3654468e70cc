package citygml_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rtron-go/rtron/internal/citygml"
	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/roadspaces"
)

func straightRoad(id string, length, rightWidth, leftWidth float64) opendrive.Road {
	sec := opendrive.LaneSection{S: 0}
	if rightWidth > 0 {
		sec.Right = []opendrive.Lane{
			{ID: -1, Type: opendrive.LaneDriving, Widths: []opendrive.LaneWidthRecord{{SOffset: 0, A: rightWidth}}},
		}
	}
	if leftWidth > 0 {
		sec.Left = []opendrive.Lane{
			{ID: 1, Type: opendrive.LaneSidewalk, Widths: []opendrive.LaneWidthRecord{{SOffset: 0, A: leftWidth}}},
		}
	}
	return opendrive.Road{
		ID:     id,
		Length: length,
		PlanView: []opendrive.PlanViewGeometry{
			{S: 0, Length: length, Kind: opendrive.GeometryLine},
		},
		Lanes: opendrive.Lanes{LaneSections: []opendrive.LaneSection{sec}},
	}
}

func buildCityModel(t *testing.T, od *opendrive.Model) *citygml.CityModel {
	t.Helper()
	rm, msgs := roadspaces.Build(context.Background(), od, roadspaces.BuildConfig{DiscretizationStepSize: 10, DistanceTolerance: 1e-6})
	require.False(t, msgs.HasFatal(), "unexpected fatal roadspaces messages: %v", msgs)
	cm, cmMsgs := citygml.Build(rm, citygml.Config{Visitor: mathx.DefaultVisitorConfig()})
	require.False(t, cmMsgs.HasFatal(), "unexpected fatal citygml messages: %v", cmMsgs)
	return cm
}

func TestBuild_DrivingLane_BecomesTrafficSpace(t *testing.T) {
	od := &opendrive.Model{Roads: []opendrive.Road{straightRoad("1", 10, 3, 0)}}
	cm := buildCityModel(t, od)

	require.Len(t, cm.Roads, 1)
	require.Len(t, cm.Roads[0].Sections, 1)
	sec := cm.Roads[0].Sections[0]
	require.Len(t, sec.TrafficSpaces, 1)
	assert.Empty(t, sec.AuxiliaryTrafficSpaces)
	assert.Equal(t, -1, sec.TrafficSpaces[0].LaneID)
	assert.Equal(t, citygml.TrafficForwards, sec.TrafficSpaces[0].Direction)
}

func TestBuild_SidewalkLane_BecomesAuxiliaryTrafficSpace(t *testing.T) {
	od := &opendrive.Model{Roads: []opendrive.Road{straightRoad("1", 10, 0, 2)}}
	cm := buildCityModel(t, od)

	sec := cm.Roads[0].Sections[0]
	require.Empty(t, sec.TrafficSpaces)
	require.Len(t, sec.AuxiliaryTrafficSpaces, 1)
	assert.Equal(t, 1, sec.AuxiliaryTrafficSpaces[0].LaneID)
	assert.Equal(t, citygml.TrafficBackwards, sec.AuxiliaryTrafficSpaces[0].Direction)
}

func TestBuild_RoadMark_BecomesMarking(t *testing.T) {
	road := straightRoad("1", 10, 3, 0)
	road.Lanes.LaneSections[0].Right[0].RoadMarks = []opendrive.RoadMarkRecord{
		{SOffset: 0, Type: opendrive.RoadMarkBroken, Width: 0.12},
	}
	od := &opendrive.Model{Roads: []opendrive.Road{road}}
	cm := buildCityModel(t, od)

	sec := cm.Roads[0].Sections[0]
	require.Len(t, sec.Markings, 1)
	assert.Equal(t, -1, sec.Markings[0].LaneID)
	assert.Equal(t, string(opendrive.RoadMarkBroken), sec.Markings[0].Function)
	assert.Empty(t, sec.Markings[0].Name, "Name is only populated under MappingBackwardsCompatibility")
}

func TestBuild_JunctionRoad_BecomesIntersection(t *testing.T) {
	road := straightRoad("1", 10, 3, 0)
	road.JunctionID = "42"
	od := &opendrive.Model{Roads: []opendrive.Road{road}}
	cm := buildCityModel(t, od)

	assert.Empty(t, cm.Roads)
	require.Len(t, cm.Intersections, 1)
	assert.Equal(t, "42", cm.Intersections[0].JunctionID)
}
