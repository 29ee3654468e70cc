package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rtron-go/rtron/internal/evaluator"
	"github.com/rtron-go/rtron/internal/opendrive/reader"
	"github.com/rtron-go/rtron/internal/report"
)

type evaluateCmd struct {
	Args struct {
		Input []string `positional-arg-name:"IN" required:"true" description:"Input OpenDRIVE files"`
	} `positional-args:"true"`

	Config string `short:"c" long:"config" description:"Config file (yaml/json, see §6 option set)"`
	Strict bool   `long:"strict" description:"Exit with a non-zero status if any input produced a fatal violation"`
}

// Execute runs the fatal and non-fatal evaluation plans over every input
// file and reports violations without building CityGML (§4.2).
func (c *evaluateCmd) Execute(_ []string) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	anyFatal := false
	for _, path := range c.Args.Input {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			anyFatal = true
			continue
		}

		m, err := reader.Parse(bytes.NewReader(data))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			anyFatal = true
			continue
		}

		var msgs report.MessageList
		msgs = msgs.Merge(evaluator.EvaluateFatalViolations(m))
		if !msgs.HasFatal() {
			_, nonFatal := evaluator.EvaluateNonFatalViolations(m, evaluator.Config{SkipRoadShapeRemoval: cfg.SkipRoadShapeRemoval})
			msgs = msgs.Merge(nonFatal)
		}

		printReportSummary(path, msgs.CountBySeverity(report.SeverityFatal), msgs.CountBySeverity(report.SeverityWarning))
		for _, m := range msgs {
			fmt.Println(m.String())
		}
		if msgs.HasFatal() {
			anyFatal = true
		}
	}

	if c.Strict && anyFatal {
		os.Exit(1)
	}
	return nil
}
