package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rtron-go/rtron/internal/citygml"
	"github.com/rtron-go/rtron/internal/pipeline"
	"github.com/rtron-go/rtron/internal/report"
)

type convertCmd struct {
	Args struct {
		Input []string `positional-arg-name:"IN" required:"true" description:"Input OpenDRIVE files"`
	} `positional-args:"true"`

	Out     string `long:"out" required:"true" description:"Output directory for converted CityGML files"`
	Config  string `short:"c" long:"config" description:"Config file (yaml/json, see §6 option set)"`
	Strict  bool   `long:"strict" description:"Exit with a non-zero status if any input produced a fatal violation"`
	Workers int    `short:"w" long:"workers" default:"4" description:"Number of files to convert concurrently"`
}

// Execute converts every input OpenDRIVE file into a CityGML feature
// graph and writes it to Out (§4.5).
func (c *convertCmd) Execute(_ []string) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.Out, 0o755); err != nil {
		return err
	}

	pool := &pipeline.Pool{
		Workers: c.Workers,
		Writer:  citygml.JSONWriter{},
		OutDir:  c.Out,
		Config:  cfg,
		Logger:  logrus.StandardLogger(),
	}

	results := pool.Run(context.Background(), c.Args.Input)

	anyFatal := false
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
			anyFatal = true
			continue
		}
		printReportSummary(r.Path, r.Messages.CountBySeverity(report.SeverityFatal), r.Messages.CountBySeverity(report.SeverityWarning))
		if r.Messages.HasFatal() {
			anyFatal = true
		}
	}

	if c.Strict && anyFatal {
		os.Exit(1)
	}
	return nil
}
