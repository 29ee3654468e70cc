package roadspaces

import (
	"context"
	"fmt"
	"sort"

	"github.com/rtron-go/rtron/internal/mathx"
	"github.com/rtron-go/rtron/internal/opendrive"
	"github.com/rtron-go/rtron/internal/report"
)

// CodeReferenceLineDiscontinuity is the non-fatal code for a planView gap
// or overlap between adjacent segments (§4.3 step 1: "reported but do not
// abort").
const CodeReferenceLineDiscontinuity = "ReferenceLineDiscontinuity"

// CodeCancelled is the report code emitted when ctx is done partway through
// the per-road build loop (§5: cancellation "checked between ... roads").
const CodeCancelled = "Cancelled"

// BuildConfig carries the subset of pipeline configuration the RoadSpaces
// builder needs (§6).
type BuildConfig struct {
	DiscretizationStepSize float64
	DistanceTolerance      float64
}

// Build constructs a RoadSpaces Model from a healed opendrive.Model,
// implementing §4.3 steps 1-7. Fatal conditions (unresolved link targets)
// abort the affected road's linkage but not the whole build; callers
// should check the returned MessageList for HasFatal(). ctx is checked
// between roads (§5): a cancelled run returns the roadspaces built so far
// plus a Cancelled message, never a partial-but-silent result.
func Build(ctx context.Context, m *opendrive.Model, cfg BuildConfig) (*Model, report.MessageList) {
	var msgs report.MessageList
	out := NewModel(len(m.Roads))
	for _, j := range m.Junctions {
		out.junctions[j.ID] = j
	}

	for i := range m.Roads {
		select {
		case <-ctx.Done():
			return out, msgs.Reported(CodeCancelled, ctx.Err().Error(), report.SourceID{}, report.SeverityInfo)
		default:
		}

		road := &m.Roads[i]
		rs, roadMsgs := buildRoadspace(road, cfg)
		msgs = msgs.Merge(roadMsgs)
		out.addRoadspace(rs, Linkage{JunctionID: road.JunctionID})
	}

	// Resolve predecessor/successor indices now that every roadspace exists.
	for i := range m.Roads {
		road := &m.Roads[i]
		linkage, _ := out.LinkageOf(road.ID)
		if road.Link.Predecessor != nil && road.Link.Predecessor.ElementType == opendrive.ElementRoad {
			if idx, ok := out.indexByID[road.Link.Predecessor.ElementID]; ok {
				linkage.PredecessorIndex = &idx
				linkage.PredecessorContact = road.Link.Predecessor.ContactPoint
			} else {
				msgs = msgs.Fatal(CodeUnresolvedRoadspace,
					fmt.Sprintf("road %q predecessor references unknown road %q", road.ID, road.Link.Predecessor.ElementID),
					report.SourceID{Kind: "road", ID: road.ID})
			}
		}
		if road.Link.Successor != nil && road.Link.Successor.ElementType == opendrive.ElementRoad {
			if idx, ok := out.indexByID[road.Link.Successor.ElementID]; ok {
				linkage.SuccessorIndex = &idx
				linkage.SuccessorContact = road.Link.Successor.ContactPoint
			} else {
				msgs = msgs.Fatal(CodeUnresolvedRoadspace,
					fmt.Sprintf("road %q successor references unknown road %q", road.ID, road.Link.Successor.ElementID),
					report.SourceID{Kind: "road", ID: road.ID})
			}
		}
		out.linkages[out.indexByID[road.ID]] = linkage
	}

	msgs = msgs.Merge(buildLongitudinalBetweenRoadsFillers(out, cfg))

	return out, msgs
}

func buildRoadspace(road *opendrive.Road, cfg BuildConfig) (*Roadspace, report.MessageList) {
	var msgs report.MessageList
	tol := cfg.DistanceTolerance
	if tol <= 0 {
		tol = mathx.MinTolerance
	}

	refCurve2D, refMsgs := buildReferenceLine2D(road, tol)
	msgs = msgs.Merge(refMsgs)

	heightFn := buildStackedHeight(road, tol)
	torsionFn := buildStackedTorsion(road, tol)

	curve3D, err := mathx.NewCurve3D(refCurve2D, heightFn, torsionFn, mathx.AffineSequence2D{Transforms: []mathx.Affine2D{{}}})
	if err != nil {
		msgs = msgs.Fatal(CodeNumericFailure, fmt.Sprintf("road %q: %v", road.ID, err), report.SourceID{Kind: "road", ID: road.ID})
		return &Roadspace{ID: road.ID, JunctionID: road.JunctionID}, msgs
	}

	laneOffsetFn := buildStackedLaneOffset(road, tol)

	sections, withinRoadFillers, sectionMsgs := buildLaneSections(road, curve3D, laneOffsetFn, cfg)
	msgs = msgs.Merge(sectionMsgs)

	lateralFillers, lateralMsgs := buildLateralFillers(road, curve3D, laneOffsetFn, cfg)
	msgs = msgs.Merge(lateralMsgs)

	objects, objMsgs := buildObjects(road, curve3D, cfg)
	msgs = msgs.Merge(objMsgs)

	var fillers []FillerSurface
	fillers = append(fillers, withinRoadFillers...)
	fillers = append(fillers, lateralFillers...)

	return &Roadspace{
		ID:            road.ID,
		ReferenceLine: curve3D,
		LaneSections:  sections,
		Fillers:       fillers,
		Objects:       objects,
		JunctionID:    road.JunctionID,
	}, msgs
}

// buildReferenceLine2D composes the road's planView segments into a single
// CompositeCurve2D, reporting (not aborting on) gaps/overlaps (§4.3 step 1).
func buildReferenceLine2D(road *opendrive.Road, tol float64) (mathx.CompositeCurve2D, report.MessageList) {
	var msgs report.MessageList
	segs := make([]opendrive.PlanViewGeometry, len(road.PlanView))
	copy(segs, road.PlanView)
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].S < segs[j].S })

	composite := mathx.CompositeCurve2D{Eps: tol}
	for i, seg := range segs {
		curve := toCurve2D(seg, tol)
		placement := mathx.AffineSequence2D{Transforms: []mathx.Affine2D{{
			Translation: mathx.Vector2D{X: seg.X, Y: seg.Y},
			Heading:     seg.Hdg,
		}}}
		composite.Segments = append(composite.Segments, mathx.CompositeSegment{
			Curve: curve, StartS: seg.S, Placement: placement,
		})

		if i > 0 {
			prev := segs[i-1]
			expectedNextS := prev.S + prev.Length
			if diffAbs(seg.S, expectedNextS) > tol {
				msgs = msgs.Reported(CodeReferenceLineDiscontinuity,
					fmt.Sprintf("planView segment at s=%g does not butt against the previous segment's end (expected s=%g)", seg.S, expectedNextS),
					report.SourceID{Kind: "road", ID: road.ID}, report.SeverityWarning)
			}
		}
	}
	return composite, msgs
}

func diffAbs(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func toCurve2D(seg opendrive.PlanViewGeometry, tol float64) mathx.Curve2D {
	switch seg.Kind {
	case opendrive.GeometryArc:
		return mathx.Arc2D{Len: seg.Length, Curvature: seg.Curvature, Eps: tol}
	case opendrive.GeometrySpiral:
		return mathx.Spiral2D{Len: seg.Length, CurvStart: seg.CurvStart, CurvEnd: seg.CurvEnd, Eps: tol}
	case opendrive.GeometryCubicPoly:
		return mathx.CubicCurve2D{Len: seg.Length, A: seg.A, B: seg.B, C: seg.C, D: seg.D, Eps: tol}
	case opendrive.GeometryParamCubic:
		pRange := mathx.Range{Min: 0, Max: 1}
		if !seg.PRangeNormalized {
			pRange = mathx.Range{Min: 0, Max: seg.Length}
		}
		return mathx.ParametricCubicCurve2D{
			Len: seg.Length, PRange: pRange,
			Fn: mathx.ParametricCubicFunction2D{
				PRange: pRange,
				AU:     seg.AU, BU: seg.BU, CU: seg.CU, DU: seg.DU,
				AV: seg.AV, BV: seg.BV, CV: seg.CV, DV: seg.DV,
			},
			Eps: tol,
		}
	default: // GeometryLine and unknown kinds degrade to a line
		return mathx.Line2D{Len: seg.Length, Eps: tol}
	}
}

// buildStackedHeight builds heightFn from the road's elevation profile
// (§4.3 step 2): default outside defined sub-ranges is the value at the
// nearest defined endpoint.
func buildStackedHeight(road *opendrive.Road, tol float64) mathx.ExtrapolatingStackedFunction {
	var entries []mathx.StackedFunctionEntry
	if road.ElevationProfile != nil {
		entries = elevationEntries(road.ElevationProfile.Elevation, road.Length)
	}
	if len(entries) == 0 {
		entries = []mathx.StackedFunctionEntry{{
			SubDomain: mathx.Range{Min: 0, Max: road.Length},
			Func:      newShiftedCubic(mathx.Range{Min: 0, Max: road.Length}, 0, 0, 0, 0, 0),
		}}
	}
	return mathx.ExtrapolatingStackedFunction{
		Stacked:     mathx.NewStackedFunction(entries),
		TotalDomain: mathx.Range{Min: 0, Max: road.Length},
	}
}

// buildStackedTorsion builds torsionFn from the road's superelevation
// records (§4.3 step 3), the same shape as buildStackedHeight.
func buildStackedTorsion(road *opendrive.Road, tol float64) mathx.ExtrapolatingStackedFunction {
	var entries []mathx.StackedFunctionEntry
	if road.LateralProfile != nil {
		entries = elevationEntries(road.LateralProfile.Superelevation, road.Length)
	}
	if len(entries) == 0 {
		entries = []mathx.StackedFunctionEntry{{
			SubDomain: mathx.Range{Min: 0, Max: road.Length},
			Func:      newShiftedCubic(mathx.Range{Min: 0, Max: road.Length}, 0, 0, 0, 0, 0),
		}}
	}
	return mathx.ExtrapolatingStackedFunction{
		Stacked:     mathx.NewStackedFunction(entries),
		TotalDomain: mathx.Range{Min: 0, Max: road.Length},
	}
}

func elevationEntries(records []opendrive.ElevationRecord, roadLength float64) []mathx.StackedFunctionEntry {
	entries := make([]mathx.StackedFunctionEntry, 0, len(records))
	for i, rec := range records {
		end := roadLength
		if i+1 < len(records) {
			end = records[i+1].S
		}
		domain := mathx.Range{Min: rec.S, Max: end}
		entries = append(entries, mathx.StackedFunctionEntry{
			SubDomain: domain,
			Func:      newShiftedCubic(domain, rec.S, rec.A, rec.B, rec.C, rec.D),
		})
	}
	return entries
}

// buildStackedLaneOffset builds the road-wide laneOffset(s) cubic stack.
func buildStackedLaneOffset(road *opendrive.Road, tol float64) mathx.StackedFunction {
	records := road.Lanes.LaneOffsets
	entries := make([]mathx.StackedFunctionEntry, 0, len(records))
	for i, rec := range records {
		end := road.Length
		if i+1 < len(records) {
			end = records[i+1].S
		}
		domain := mathx.Range{Min: rec.S, Max: end}
		entries = append(entries, mathx.StackedFunctionEntry{
			SubDomain: domain,
			Func:      newShiftedCubic(domain, rec.S, rec.A, rec.B, rec.C, rec.D),
		})
	}
	zero := 0.0
	sf := mathx.NewStackedFunction(entries)
	sf.DefaultValue = &zero
	return sf
}

// laneOffsetAt is a small helper so callers don't have to thread tol
// through every laneOffsetFn.Value call.
func laneOffsetAt(fn mathx.StackedFunction, s, tol float64) float64 {
	v, err := fn.ValueInFuzzy(s, tol)
	if err != nil {
		return 0
	}
	return v
}
