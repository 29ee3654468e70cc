package main

import (
	"fmt"

	"github.com/rtron-go/rtron/internal/config"
)

// loadConfig reads cfg from path, or returns §6's defaults when path is
// empty, mirroring the teacher's readConfig (cmd/tv4p-road-tool/utils.go).
func loadConfig(path string) (config.Options, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// printReportSummary writes a one-line-per-file summary to stdout, the
// way the teacher's printPatchStats reports what it did.
func printReportSummary(path string, fatal, warnings int) {
	fmt.Printf("%s: fatal=%d warnings=%d\n", path, fatal, warnings)
}
