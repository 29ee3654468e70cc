package evaluator

import (
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// Config carries the options that change non-fatal evaluation behaviour
// (subset of the pipeline-wide configuration relevant to §4.2 rules).
type Config struct {
	// SkipRoadShapeRemoval suppresses the UnexpectedValue repair that would
	// otherwise clear lateralProfile.shape when a non-zero laneOffset is present.
	SkipRoadShapeRemoval bool
}

// Rule is one small, independently testable healing step applied to a
// single road. A rule returns the possibly-repaired road and any messages
// produced (§9 "Validators as data"). Rules that repair the elevation or
// lateral profile write through the road's pointer fields, so they are
// only ever run on roads of the model EvaluateNonFatalViolations cloned.
// A rule may emit more than one diagnostic code (e.g. the sort-healing
// rules emit either NonSortedList or NonStrictlySortedList depending on
// what it found), so Rule carries no Code() of its own.
type Rule interface {
	Apply(cfg Config, r opendrive.Road) (opendrive.Road, report.MessageList)
}

// Plan is an ordered sequence of rules run over every road in the model.
type Plan []Rule
