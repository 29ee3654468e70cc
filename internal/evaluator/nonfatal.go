package evaluator

import (
	"math"

	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// EvaluateNonFatalViolations returns a deep-cloned, repaired model plus
// every message produced while repairing it (§4.2). m is never mutated.
// Plans run in order — BasicDataTypePlan then ModelingRulesPlan — and each
// plan's result folds left-to-right into the next, mirroring the "never
// mutate the input, always build a new result" discipline the teacher uses
// in its own config and crossroad passes.
func EvaluateNonFatalViolations(m *opendrive.Model, cfg Config) (*opendrive.Model, report.MessageList) {
	out := m.Clone()
	var msgs report.MessageList

	for _, plan := range []Plan{BasicDataTypePlan, ModelingRulesPlan} {
		for i, r := range out.Roads {
			road := r
			var roadMsgs report.MessageList
			for _, rule := range plan {
				var ruleMsgs report.MessageList
				road, ruleMsgs = rule.Apply(cfg, road)
				roadMsgs = roadMsgs.Merge(ruleMsgs)
			}
			out.Roads[i] = road
			msgs = msgs.Merge(roadMsgs)
		}
	}

	msgs = msgs.Merge(evaluateEmptyOptionalHeaderAttributes(out))
	msgs = msgs.Merge(evaluateDanglingLaneLinks(out))

	return out, msgs
}

// evaluateEmptyOptionalHeaderAttributes replaces a non-finite header bound
// with "absent" (EmptyValueForOptionalAttribute, §4.2).
func evaluateEmptyOptionalHeaderAttributes(m *opendrive.Model) report.MessageList {
	if m.Header == nil {
		return nil
	}
	src := report.SourceID{Kind: "header", ID: m.Header.Name}
	var msgs report.MessageList

	fields := []struct {
		name string
		ptr  **float64
	}{
		{"north", &m.Header.North},
		{"south", &m.Header.South},
		{"east", &m.Header.East},
		{"west", &m.Header.West},
	}
	for _, f := range fields {
		if *f.ptr != nil && isNonFinite(**f.ptr) {
			*f.ptr = nil
			msgs = msgs.Fixed(CodeEmptyValueForOptionalAttribute, "header."+f.name+" was non-finite; cleared", src)
		}
	}
	return msgs
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
