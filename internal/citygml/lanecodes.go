package citygml

import "github.com/rtron-go/rtron/internal/opendrive"

// laneCode is one lane type's fixed usage/function code pair plus whether
// it counts as a drivable (traffic) space or an auxiliary one (§4.4:
// "drivable types -> traffic, others -> auxiliary"), grounded on the
// teacher's paletteRules literal lookup-table idiom
// (internal/roadparts/colors.go): classify an entity by a small set of
// keys against a literal table.
type laneCode struct {
	Function string
	Usage    string
	Traffic  bool
}

var laneCodes = map[opendrive.LaneType]laneCode{
	opendrive.LaneDriving:  {Function: "trafficLane", Usage: "vehicularTraffic", Traffic: true},
	opendrive.LaneBiking:   {Function: "trafficLane", Usage: "bicycleTraffic", Traffic: true},
	opendrive.LaneSidewalk: {Function: "trafficLane", Usage: "pedestrianTraffic", Traffic: false},
	opendrive.LaneShoulder: {Function: "shoulder", Usage: "none", Traffic: false},
	opendrive.LaneParking:  {Function: "parkingLane", Usage: "vehicularTraffic", Traffic: false},
	opendrive.LaneBorder:   {Function: "border", Usage: "none", Traffic: false},
	opendrive.LaneMedian:   {Function: "median", Usage: "none", Traffic: false},
	opendrive.LaneRail:     {Function: "trafficLane", Usage: "railTraffic", Traffic: false},
	opendrive.LaneNone:     {Function: "none", Usage: "none", Traffic: false},
}

// laneCodeFor returns the code for a lane type, defaulting to a non-traffic
// "none" code for any type absent from the table.
func laneCodeFor(t opendrive.LaneType) laneCode {
	if c, ok := laneCodes[t]; ok {
		return c
	}
	return laneCode{Function: "none", Usage: "none", Traffic: false}
}

// laneDirection implements §4.4's RHT assumption: right/center lanes
// (id <= 0) run FORWARDS with the reference line, left lanes (id > 0)
// run BACKWARDS against it.
func laneDirection(laneID int) TrafficDirection {
	if laneID > 0 {
		return TrafficBackwards
	}
	return TrafficForwards
}
