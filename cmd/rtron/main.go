// Command rtron converts OpenDRIVE road networks into CityGML feature
// graphs.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/rtron-go/rtron/internal/buildinfo"
)

type rootCmd struct {
	Version  versionCmd  `command:"version" description:"Show version information"`
	Convert  convertCmd  `command:"convert" description:"Convert OpenDRIVE files into CityGML"`
	Evaluate evaluateCmd `command:"evaluate" description:"Evaluate OpenDRIVE files and report violations without converting"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	buildinfo.Print()
	return nil
}
