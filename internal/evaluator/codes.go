// Package evaluator implements the two OpenDRIVE quality passes described
// in §4.2: fatal-violation detection (never mutates) and non-fatal
// evaluation (returns a healed copy plus diagnostics). Rules are encoded as
// data — ordered plans of small rule objects with stable diagnostic codes
// (§9 "Validators as data") — rather than an inheritance hierarchy of
// abstract evaluators.
package evaluator

// Fatal diagnostic codes (§4.2, §7).
const (
	CodeNoPlanViewGeometry   = "NoPlanViewGeometry"
	CodeNoLaneSections       = "NoLaneSections"
	CodeBlankRequiredID      = "BlankRequiredId"
	CodeNonFiniteRequired    = "NonFiniteRequiredNumeric"
	CodeSentinelLaneLink     = "SentinelLaneLink"
	CodeUnresolvedLinkTarget = "UnresolvedLinkTarget"
	CodeNumericFailure       = "NumericFailure"
)

// Non-fatal (healing) diagnostic codes (§4.2's "stable codes the test suite binds to").
const (
	CodeNoElevationProfileElements     = "NoElevationProfileElements"
	CodeNonStrictlySortedList          = "NonStrictlySortedList"
	CodeNonSortedList                  = "NonSortedList"
	CodeUnexpectedValue                = "UnexpectedValue"
	CodeEmptyValueForOptionalAttribute = "EmptyValueForOptionalAttribute"
	CodeDanglingLaneLinkReference      = "DanglingLaneLinkReference"
)

// LaneLinkSentinel is the "no link" sentinel value OpenDRIVE uses for
// from/to lane ids in some exporters. EvaluateFatalViolations treats a
// lane's predecessor/successor pair as fatal when both use it, and a
// junction laneLink as fatal when either from or to uses it (§4.2).
const LaneLinkSentinel = -1 << 31
