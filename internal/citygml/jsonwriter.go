package citygml

import (
	"encoding/json"
	"os"
)

// JSONWriter writes a CityModel as indented JSON. It exists so cmd/rtron
// has something runnable end to end without reaching into the real
// CityGML 2.0/3.0 byte serialisation, which §1 places out of scope for
// the core; a downstream Writer implementing the actual GML encoding is
// expected to replace it at the CLI's wiring point.
type JSONWriter struct{}

// Write encodes model as indented JSON to targetPath and returns the path
// written.
func (JSONWriter) Write(model *CityModel, targetPath string) (string, error) {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(targetPath, data, 0o644); err != nil {
		return "", err
	}
	return targetPath, nil
}
