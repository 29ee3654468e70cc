// Package config loads the pipeline-wide option set (§6) from a YAML or
// JSON file, the same yaml.Unmarshal-onto-JSON-tags pattern the teacher
// uses for its own RoadConfig (cmd/tv4p-road-tool/utils.go readConfig).
package config

import (
	"os"

	"github.com/invopop/yaml"
)

// Options is §6's recognised option set.
type Options struct {
	CrsEpsg                       int     `json:"crsEpsg"`
	OffsetX                       float64 `json:"offsetX"`
	OffsetY                       float64 `json:"offsetY"`
	OffsetZ                       float64 `json:"offsetZ"`
	DiscretizationStepSize        float64 `json:"discretizationStepSize"`
	SweepDiscretizationStepSize   float64 `json:"sweepDiscretizationStepSize"`
	CircleSlices                  int     `json:"circleSlices"`
	DistanceTolerance             float64 `json:"distanceTolerance"`
	FlattenGenericAttributeSets   bool    `json:"flattenGenericAttributeSets"`
	GenerateRandomGeometryIds     bool    `json:"generateRandomGeometryIds"`
	MappingBackwardsCompatibility bool    `json:"mappingBackwardsCompatibility"`
	SkipRoadShapeRemoval          bool    `json:"skipRoadShapeRemoval"`
}

// Default returns the option set used when no config file is given.
func Default() Options {
	return Options{
		DiscretizationStepSize:      1.0,
		SweepDiscretizationStepSize: 1.0,
		CircleSlices:                16,
		DistanceTolerance:           1e-7,
	}
}

// Load reads Options from a YAML (or JSON, which is a YAML subset) file at
// path, seeded with Default() so an omitted option keeps its default
// instead of zeroing out.
func Load(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Options{}, err
	}
	return cfg, nil
}
