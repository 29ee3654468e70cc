package roadspaces

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// laneSample is one (inner, outer) boundary pair evaluated at one
// absolute arc-length s.
type laneSample struct {
	s     float64
	inner mathx.Vector3D
	outer mathx.Vector3D
}

// buildLaneSections builds every lane section's boundary and surface
// geometry (§4.3 step 5) plus the longitudinal-within-road fillers where
// a lane's boundary offset jumps across a section boundary (§4.3 step 6).
func buildLaneSections(road *opendrive.Road, curve mathx.Curve3D, laneOffsetFn mathx.StackedFunction, cfg BuildConfig) ([]LaneSection, []FillerSurface, report.MessageList) {
	var msgs report.MessageList
	step := cfg.DiscretizationStepSize
	if step <= 0 {
		step = 1.0
	}
	tol := cfg.DistanceTolerance
	if tol <= 0 {
		tol = mathx.MinTolerance
	}

	odSections := append([]opendrive.LaneSection(nil), road.Lanes.LaneSections...)
	sort.SliceStable(odSections, func(i, j int) bool { return odSections[i].S < odSections[j].S })

	sections := make([]LaneSection, 0, len(odSections))
	// lastSamplesByID remembers each lane id's final (inner, outer) sample
	// of the previous section, for longitudinal-within-road filler checks.
	lastSamplesByID := map[int]laneSample{}
	var fillers []FillerSurface

	for i, sec := range odSections {
		sectionEnd := road.Length
		if i+1 < len(odSections) {
			sectionEnd = odSections[i+1].S
		}
		sectionLen := sectionEnd - sec.S
		if sectionLen < 0 {
			sectionLen = 0
		}

		samplesRel := mathx.DiscretizePoints(sectionLen, step)

		built := LaneSection{S: sec.S}
		lastSamplesOfSection := map[int]laneSample{}

		for _, side := range []struct {
			lanes []opendrive.Lane
			sign  int
		}{
			{sec.Left, 1},
			{sec.Right, -1},
		} {
			ordered := append([]opendrive.Lane(nil), side.lanes...)
			sort.SliceStable(ordered, func(a, b int) bool { return absInt(ordered[a].ID) < absInt(ordered[b].ID) })

			cumulative := map[int]float64{} // per sample index, running offset
			for idx := range samplesRel {
				cumulative[idx] = 0
			}

			for _, lane := range ordered {
				widthFn := buildStackedWidth(lane.Widths, sec.S, sectionEnd)
				var innerPts, outerPts, centerPts []mathx.Vector3D
				var first, last laneSample

				for idx, rel := range samplesRel {
					s := sec.S + rel
					point, rot, err := curve.CalculatePose(s)
					if err != nil {
						continue
					}
					offset := laneOffsetAt(laneOffsetFn, s, tol)
					w := widthValueAt(widthFn, s, tol)

					innerT := offset + float64(side.sign)*cumulative[idx]
					outerT := offset + float64(side.sign)*(cumulative[idx]+w)
					cumulative[idx] += w

					innerPt := localOffsetToWorld(point, rot, innerT, 0)
					outerPt := localOffsetToWorld(point, rot, outerT, 0)
					centerPt := localOffsetToWorld(point, rot, (innerT+outerT)/2, 0)

					innerPts = append(innerPts, innerPt)
					outerPts = append(outerPts, outerPt)
					centerPts = append(centerPts, centerPt)

					sample := laneSample{s: s, inner: innerPt, outer: outerPt}
					if idx == 0 {
						first = sample
					}
					last = sample
				}

				var surfacePolys []mathx.Polygon3D
				for idx := 0; idx+1 < len(innerPts); idx++ {
					surfacePolys = append(surfacePolys, mathx.TriangulateStrip(innerPts[idx], outerPts[idx], innerPts[idx+1], outerPts[idx+1])...)
				}

				built.Lanes = append(built.Lanes, Lane{
					ID:            lane.ID,
					Type:          lane.Type,
					CenterLine:    mathx.LineString3D{Points: centerPts},
					Surface:       mathx.MultiSurface3D{Polygons: surfacePolys},
					InnerBoundary: mathx.LineString3D{Points: innerPts},
					OuterBoundary: mathx.LineString3D{Points: outerPts},
					Predecessor:   lane.Predecessor,
					Successor:     lane.Successor,
					RoadMarks:     lane.RoadMarks,
				})

				lastSamplesOfSection[lane.ID] = last
				if prevSample, ok := lastSamplesByID[lane.ID]; ok {
					if !prevSample.inner.FuzzyEquals(first.inner, tol) || !prevSample.outer.FuzzyEquals(first.outer, tol) {
						laneID := lane.ID
						fillers = append(fillers, FillerSurface{
							Kind:   FillerLongitudinalWithinRoad,
							LaneID: &laneID,
							Surface: mathx.Polygon3D{
								Vertices: []mathx.Vector3D{prevSample.inner, prevSample.outer, first.outer, first.inner},
							},
						})
						msgs = msgs.Reported(CodeEndpointMismatch,
							fmt.Sprintf("lane %d boundary jumps across the lane-section boundary at s=%g", lane.ID, sec.S),
							report.SourceID{Kind: "road", ID: road.ID}, report.SeverityWarning)
					}
				}
			}
		}

		lastSamplesByID = lastSamplesOfSection
		sort.SliceStable(built.Lanes, func(a, b int) bool { return built.Lanes[a].ID < built.Lanes[b].ID })
		sections = append(sections, built)
	}

	return sections, fillers, msgs
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// buildStackedWidth builds a lane's width(s) cubic stack over its section's
// absolute s-range (§4.3 step 5), §9's "cubic offset from the record's own
// start" convention.
func buildStackedWidth(widths []opendrive.LaneWidthRecord, sectionS, sectionEnd float64) mathx.StackedFunction {
	ordered := append([]opendrive.LaneWidthRecord(nil), widths...)
	sort.SliceStable(ordered, func(a, b int) bool { return ordered[a].SOffset < ordered[b].SOffset })

	entries := make([]mathx.StackedFunctionEntry, 0, len(ordered))
	for i, rec := range ordered {
		start := sectionS + rec.SOffset
		end := sectionEnd
		if i+1 < len(ordered) {
			end = sectionS + ordered[i+1].SOffset
		}
		domain := mathx.Range{Min: start, Max: end}
		entries = append(entries, mathx.StackedFunctionEntry{
			SubDomain: domain,
			Func:      newShiftedCubic(domain, start, rec.A, rec.B, rec.C, rec.D),
		})
	}
	zero := 0.0
	sf := mathx.NewStackedFunction(entries)
	sf.DefaultValue = &zero
	return sf
}

func widthValueAt(fn mathx.StackedFunction, s, tol float64) float64 {
	v, err := fn.ValueInFuzzy(s, tol)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// buildLateralFillers reports, as a warning, every lane that has a width
// record with a negative constant term (a). It builds no filler surface:
// the returned slice is always empty. widthValueAt clamps negative widths
// to 0 and buildLaneSections' cumulative-offset pass stacks every lane
// contiguously.
func buildLateralFillers(road *opendrive.Road, curve mathx.Curve3D, laneOffsetFn mathx.StackedFunction, cfg BuildConfig) ([]FillerSurface, report.MessageList) {
	var fillers []FillerSurface
	var msgs report.MessageList

	hasNegativeWidth := func(widths []opendrive.LaneWidthRecord) bool {
		return lo.SomeBy(widths, func(w opendrive.LaneWidthRecord) bool { return w.A < 0 })
	}

	for _, sec := range road.Lanes.LaneSections {
		for _, lane := range sec.AllLanes() {
			if hasNegativeWidth(lane.Widths) {
				msgs = msgs.Reported(CodeEndpointMismatch,
					fmt.Sprintf("lane %d declares a negative width at s=%g; clamped to 0, leaving a lateral gap", lane.ID, sec.S),
					report.SourceID{Kind: "road", ID: road.ID}, report.SeverityWarning)
			}
		}
	}
	return fillers, msgs
}
