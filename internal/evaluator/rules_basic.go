package evaluator

import (
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// BasicDataTypePlan holds the per-entity local rules that run before
// ModelingRulesPlan (§4.2): no cross-entity or topology reasoning, just
// each road's own lists.
var BasicDataTypePlan = Plan{
	noElevationProfileElementsRule{},
	elevationSortRule{},
	superelevationSortRule{},
	shapeSortRule{},
	laneOffsetSortRule{},
	laneSectionSortRule{},
	emptyOptionalAttributeRule{},
}

// noElevationProfileElementsRule clears an elevationProfile whose elevation
// list is empty.
type noElevationProfileElementsRule struct{}

func (rule noElevationProfileElementsRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if r.ElevationProfile == nil || len(r.ElevationProfile.Elevation) > 0 {
		return r, nil
	}
	src := report.SourceID{Kind: "road", ID: r.ID}
	r.ElevationProfile = nil
	return r, report.MessageList{}.Fixed(CodeNoElevationProfileElements, "elevationProfile had no elevation records; cleared", src)
}

// elevationSortRule heals r.ElevationProfile.Elevation per §4.2's
// NonSortedList/NonStrictlySortedList distinction.
type elevationSortRule struct{}

func (rule elevationSortRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if r.ElevationProfile == nil || len(r.ElevationProfile.Elevation) < 2 {
		return r, nil
	}
	recs := r.ElevationProfile.Elevation
	outcome, dropped := healStrictlyIncreasing(len(recs), func(i int) float64 { return recs[i].S }, false,
		func(order []int) { r.ElevationProfile.Elevation = reorderElevation(recs, order) })
	return r, sortMessages(outcome, dropped, "elevationProfile.elevation", report.SourceID{Kind: "road", ID: r.ID})
}

// superelevationSortRule heals r.LateralProfile.Superelevation the same way.
type superelevationSortRule struct{}

func (rule superelevationSortRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if r.LateralProfile == nil || len(r.LateralProfile.Superelevation) < 2 {
		return r, nil
	}
	recs := r.LateralProfile.Superelevation
	outcome, dropped := healStrictlyIncreasing(len(recs), func(i int) float64 { return recs[i].S }, false,
		func(order []int) { r.LateralProfile.Superelevation = reorderElevation(recs, order) })
	return r, sortMessages(outcome, dropped, "lateralProfile.superelevation", report.SourceID{Kind: "road", ID: r.ID})
}

// shapeSortRule heals r.LateralProfile.Shape, strictly increasing in s and,
// within equal-s groups, in t (§4.2).
type shapeSortRule struct{}

func (rule shapeSortRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if r.LateralProfile == nil || len(r.LateralProfile.Shape) < 2 {
		return r, nil
	}
	recs := r.LateralProfile.Shape
	key := func(i int) float64 { return recs[i].S*1e9 + recs[i].T }
	outcome, dropped := healStrictlyIncreasing(len(recs), key, false,
		func(order []int) { r.LateralProfile.Shape = reorderShape(recs, order) })
	return r, sortMessages(outcome, dropped, "lateralProfile.shape", report.SourceID{Kind: "road", ID: r.ID})
}

// laneOffsetSortRule heals r.Lanes.LaneOffsets.
type laneOffsetSortRule struct{}

func (rule laneOffsetSortRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if len(r.Lanes.LaneOffsets) < 2 {
		return r, nil
	}
	recs := r.Lanes.LaneOffsets
	outcome, dropped := healStrictlyIncreasing(len(recs), func(i int) float64 { return recs[i].S }, false,
		func(order []int) { r.Lanes.LaneOffsets = reorderLaneOffset(recs, order) })
	return r, sortMessages(outcome, dropped, "lanes.laneOffset", report.SourceID{Kind: "road", ID: r.ID})
}

// laneSectionSortRule heals r.Lanes.LaneSections by s.
type laneSectionSortRule struct{}

func (rule laneSectionSortRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	if len(r.Lanes.LaneSections) < 2 {
		return r, nil
	}
	recs := r.Lanes.LaneSections
	outcome, dropped := healStrictlyIncreasing(len(recs), func(i int) float64 { return recs[i].S }, true,
		func(order []int) { r.Lanes.LaneSections = reorderLaneSections(recs, order) })
	return r, sortMessages(outcome, dropped, "lanes.laneSection", report.SourceID{Kind: "road", ID: r.ID})
}

// emptyOptionalAttributeRule is a per-road placeholder; the actual
// EmptyValueForOptionalAttribute repair applies to Header.{North,South,East,West}
// and runs once per model in EvaluateNonFatalViolations, not per road.
type emptyOptionalAttributeRule struct{}

func (rule emptyOptionalAttributeRule) Apply(_ Config, r opendrive.Road) (opendrive.Road, report.MessageList) {
	return r, nil
}

func sortMessages(outcome sortOutcome, dropped int, field string, src report.SourceID) report.MessageList {
	switch outcome {
	case outcomeSortedOnly:
		return report.MessageList{}.Fixed(CodeNonSortedList, field+" was out of order; sorted by s", src)
	case outcomeDropped:
		return report.MessageList{}.Fixed(CodeNonStrictlySortedList,
			field+" had duplicate/non-monotonic entries; dropped out-of-order entries, kept earliest survivors", src)
	default:
		return nil
	}
}

func reorderElevation(recs []opendrive.ElevationRecord, order []int) []opendrive.ElevationRecord {
	out := make([]opendrive.ElevationRecord, len(order))
	for i, idx := range order {
		out[i] = recs[idx]
	}
	return out
}

func reorderShape(recs []opendrive.ShapeRecord, order []int) []opendrive.ShapeRecord {
	out := make([]opendrive.ShapeRecord, len(order))
	for i, idx := range order {
		out[i] = recs[idx]
	}
	return out
}

func reorderLaneOffset(recs []opendrive.LaneOffsetRecord, order []int) []opendrive.LaneOffsetRecord {
	out := make([]opendrive.LaneOffsetRecord, len(order))
	for i, idx := range order {
		out[i] = recs[idx]
	}
	return out
}

func reorderLaneSections(recs []opendrive.LaneSection, order []int) []opendrive.LaneSection {
	out := make([]opendrive.LaneSection, len(order))
	for i, idx := range order {
		out[i] = recs[idx]
	}
	return out
}
