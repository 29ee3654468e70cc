package citygml

import (
	"strings"

	"github.com/rtron-go/rtron/internal/opendrive"
)

// objectMappingRule is one name-keyed mapping rule (§6 mapping table,
// "name wins; then type"), the same Keys-list-matches-a-literal-table
// shape as the teacher's paletteRule (internal/roadparts/colors.go).
type objectMappingRule struct {
	Keys   []string
	Target FeatureClass
}

var objectMappingRules = []objectMappingRule{
	{Keys: []string{"bench", "controllerbox", "fence", "railing", "raisemedian", "trafficlight", "trafficsign", "unknown", "wall"}, Target: FeatureCityFurniture},
	{Keys: []string{"bus", "crosswalk", "noparkingarea"}, Target: FeatureTransportationComplex},
}

func (r objectMappingRule) matches(name string) bool {
	for _, k := range r.Keys {
		if name == k {
			return true
		}
	}
	return false
}

// objectTypeTargets is the type-keyed fallback when no name rule matches.
var objectTypeTargets = map[opendrive.ObjectType]FeatureClass{
	opendrive.ObjectTypeBarrier:    FeatureCityFurniture,
	opendrive.ObjectTypeStreetLamp: FeatureCityFurniture,
	opendrive.ObjectTypeSignal:     FeatureCityFurniture,
	opendrive.ObjectTypePole:       FeatureCityFurniture,
	opendrive.ObjectTypeTree:       FeatureVegetation,
	opendrive.ObjectTypeVegetation: FeatureVegetation,
	opendrive.ObjectTypeBuilding:   FeatureBuilding,
}

// classifyObject maps a road object to a CityGML feature class, name
// taking priority over type (§4.4, §6 mapping table).
func classifyObject(name string, typ opendrive.ObjectType) FeatureClass {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range objectMappingRules {
		if rule.matches(key) {
			return rule.Target
		}
	}
	if target, ok := objectTypeTargets[typ]; ok {
		return target
	}
	return FeatureGenericCityObject
}
