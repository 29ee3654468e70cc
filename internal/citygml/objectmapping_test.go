package citygml

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rtron-go/rtron/internal/opendrive"
)

func TestClassifyObject_NamePriorityOverType(t *testing.T) {
	// a "bench" named object of type POLE should map by name, not type.
	class := classifyObject("bench", opendrive.ObjectTypePole)
	assert.Equal(t, FeatureCityFurniture, class)
}

func TestClassifyObject_FallsBackToType(t *testing.T) {
	class := classifyObject("", opendrive.ObjectTypeTree)
	assert.Equal(t, FeatureVegetation, class)
}

func TestClassifyObject_UnknownNameAndType_GenericCityObject(t *testing.T) {
	class := classifyObject("mystery-thing", opendrive.ObjectTypeNone)
	assert.Equal(t, FeatureGenericCityObject, class)
}

func TestLaneCodeFor_DrivingIsTraffic(t *testing.T) {
	code := laneCodeFor(opendrive.LaneDriving)
	assert.True(t, code.Traffic)
}

func TestLaneCodeFor_SidewalkIsAuxiliary(t *testing.T) {
	code := laneCodeFor(opendrive.LaneSidewalk)
	assert.False(t, code.Traffic)
}

func TestLaneDirection_RightHandTrafficAssumption(t *testing.T) {
	assert.Equal(t, TrafficBackwards, laneDirection(1))
	assert.Equal(t, TrafficForwards, laneDirection(-1))
}
