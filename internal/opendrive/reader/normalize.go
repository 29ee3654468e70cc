package reader

import (
	"strconv"
	"strings"

	"github.com/rtron-go/rtron/internal/opendrive"
)

// normalize maps the decoded XML document onto the core's normalised
// opendrive.Model, absorbing the version-agnostic element shapes every
// supported OpenDRIVE revision shares (§9 "Versioned schemas").
func normalize(doc xmlDocument) *opendrive.Model {
	m := &opendrive.Model{
		Header: normalizeHeader(doc.Header),
	}
	for _, r := range doc.Roads {
		m.Roads = append(m.Roads, normalizeRoad(r))
	}
	for _, j := range doc.Junctions {
		m.Junctions = append(m.Junctions, normalizeJunction(j))
	}
	return m
}

func normalizeHeader(h xmlHeader) *opendrive.Header {
	return &opendrive.Header{
		RevMajor: h.RevMajor,
		RevMinor: h.RevMinor,
		Name:     h.Name,
		Version:  h.Version,
		North:    h.North,
		South:    h.South,
		East:     h.East,
		West:     h.West,
	}
}

func normalizeRoad(r xmlRoad) opendrive.Road {
	out := opendrive.Road{
		ID:         r.ID,
		Length:     r.Length,
		JunctionID: r.Junction,
		Link:       normalizeLink(r.Link),
		Lanes:      normalizeLanes(r.Lanes),
	}
	for _, g := range r.PlanView.Geometry {
		out.PlanView = append(out.PlanView, normalizeGeometry(g))
	}
	if r.ElevationProfile != nil {
		out.ElevationProfile = &opendrive.ElevationProfile{
			Elevation: normalizeCubicRecords(r.ElevationProfile.Elevation),
		}
	}
	if r.LateralProfile != nil {
		lp := &opendrive.LateralProfile{
			Superelevation: normalizeCubicRecords(r.LateralProfile.Superelevation),
		}
		for _, s := range r.LateralProfile.Shape {
			lp.Shape = append(lp.Shape, opendrive.ShapeRecord{S: s.S, T: s.T, A: s.A, B: s.B, C: s.C, D: s.D})
		}
		out.LateralProfile = lp
	}
	if r.Objects != nil {
		for _, o := range r.Objects.Object {
			out.Objects = append(out.Objects, normalizeObject(o))
		}
	}
	if r.Signals != nil {
		for _, s := range r.Signals.Signal {
			out.Signals = append(out.Signals, normalizeSignal(s))
		}
	}
	return out
}

func normalizeLink(l *xmlLink) opendrive.RoadLink {
	if l == nil {
		return opendrive.RoadLink{}
	}
	return opendrive.RoadLink{
		Predecessor: normalizeLinkElement(l.Predecessor),
		Successor:   normalizeLinkElement(l.Successor),
	}
}

func normalizeLinkElement(e *xmlLinkElement) *opendrive.Link {
	if e == nil {
		return nil
	}
	elementType := opendrive.ElementRoad
	if e.ElementType == string(opendrive.ElementJunction) {
		elementType = opendrive.ElementJunction
	}
	contact := opendrive.ContactStart
	if e.ContactPoint == string(opendrive.ContactEnd) {
		contact = opendrive.ContactEnd
	}
	return &opendrive.Link{ElementType: elementType, ElementID: e.ElementID, ContactPoint: contact}
}

func normalizeGeometry(g xmlGeometry) opendrive.PlanViewGeometry {
	out := opendrive.PlanViewGeometry{S: g.S, Length: g.Length, X: g.X, Y: g.Y, Hdg: g.Hdg, Kind: opendrive.GeometryLine}
	switch {
	case g.Arc != nil:
		out.Kind = opendrive.GeometryArc
		out.Curvature = g.Arc.Curvature
	case g.Spiral != nil:
		out.Kind = opendrive.GeometrySpiral
		out.CurvStart = g.Spiral.CurvStart
		out.CurvEnd = g.Spiral.CurvEnd
	case g.Poly3 != nil:
		out.Kind = opendrive.GeometryCubicPoly
		out.A, out.B, out.C, out.D = g.Poly3.A, g.Poly3.B, g.Poly3.C, g.Poly3.D
	case g.ParamPoly3 != nil:
		out.Kind = opendrive.GeometryParamCubic
		out.AU, out.BU, out.CU, out.DU = g.ParamPoly3.AU, g.ParamPoly3.BU, g.ParamPoly3.CU, g.ParamPoly3.DU
		out.AV, out.BV, out.CV, out.DV = g.ParamPoly3.AV, g.ParamPoly3.BV, g.ParamPoly3.CV, g.ParamPoly3.DV
		out.PRangeNormalized = g.ParamPoly3.PRange != "arcLength"
	}
	return out
}

func normalizeCubicRecords(recs []xmlCubicRecord) []opendrive.ElevationRecord {
	out := make([]opendrive.ElevationRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, opendrive.ElevationRecord{S: r.S, A: r.A, B: r.B, C: r.C, D: r.D})
	}
	return out
}

func normalizeLanes(l xmlLanes) opendrive.Lanes {
	out := opendrive.Lanes{}
	for _, rec := range l.LaneOffset {
		out.LaneOffsets = append(out.LaneOffsets, opendrive.LaneOffsetRecord{S: rec.S, A: rec.A, B: rec.B, C: rec.C, D: rec.D})
	}
	for _, sec := range l.LaneSection {
		out.LaneSections = append(out.LaneSections, opendrive.LaneSection{
			S:      sec.S,
			Left:   normalizeLaneSide(sec.Left),
			Center: normalizeLaneSide(sec.Center),
			Right:  normalizeLaneSide(sec.Right),
		})
	}
	return out
}

func normalizeLaneSide(side *xmlLaneSide) []opendrive.Lane {
	if side == nil {
		return nil
	}
	out := make([]opendrive.Lane, 0, len(side.Lane))
	for _, l := range side.Lane {
		lane := opendrive.Lane{ID: l.ID, Type: opendrive.LaneType(strings.ToLower(l.Type))}
		for _, w := range l.Width {
			lane.Widths = append(lane.Widths, opendrive.LaneWidthRecord{SOffset: w.SOffset, A: w.A, B: w.B, C: w.C, D: w.D})
		}
		for _, rm := range l.RoadMark {
			lane.RoadMarks = append(lane.RoadMarks, opendrive.RoadMarkRecord{
				SOffset: rm.SOffset, Type: opendrive.RoadMarkType(rm.Type), Width: rm.Width,
			})
		}
		if l.Link != nil {
			if l.Link.Predecessor != nil {
				id := l.Link.Predecessor.ID
				lane.Predecessor = &id
			}
			if l.Link.Successor != nil {
				id := l.Link.Successor.ID
				lane.Successor = &id
			}
		}
		out = append(out, lane)
	}
	return out
}

func normalizeObject(o xmlObject) opendrive.Object {
	out := opendrive.Object{
		ID: o.ID, Name: o.Name, Type: opendrive.ObjectType(strings.ToUpper(o.Type)),
		S: o.S, T: o.T, ZOffset: o.ZOffset, HOffset: o.HOffset,
		Height: o.Height, Width: o.Width, Length: o.Length, Radius: o.Radius,
		Shape: objectShapeKind(o),
	}
	if o.Repeat != nil {
		out.Shape = opendrive.ObjectShapeRepeat
		out.Repeat = &opendrive.ObjectRepeat{
			S: o.Repeat.S, Length: o.Repeat.Length, Distance: o.Repeat.Distance,
			WidthStart: o.Repeat.WidthStart, WidthEnd: o.Repeat.WidthEnd,
			HeightStart: o.Repeat.HeightStart, HeightEnd: o.Repeat.HeightEnd,
		}
	}
	if o.Outline != nil {
		out.Shape = opendrive.ObjectShapeOutline
		for _, c := range o.Outline.CornerLocal {
			out.Outline = append(out.Outline, opendrive.ObjectOutlinePoint{U: c.U, V: c.V, Z: c.Z})
		}
	}
	return out
}

func objectShapeKind(o xmlObject) opendrive.ObjectShapeKind {
	if o.Radius > 0 {
		return opendrive.ObjectShapeCylinder
	}
	return opendrive.ObjectShapeBox
}

func normalizeSignal(s xmlSignal) opendrive.Signal {
	orientation := opendrive.ContactStart
	if s.Orientation == "-" {
		orientation = opendrive.ContactEnd
	}
	return opendrive.Signal{
		ID: s.ID, Type: s.Type, Subtype: s.Subtype, Country: s.Country, Value: s.Value,
		S: s.S, T: s.T, ZOffset: s.ZOffset, HOffset: s.HOffset,
		Height: s.Height, Width: s.Width, Orientation: orientation,
	}
}

func normalizeJunction(j xmlJunction) opendrive.Junction {
	out := opendrive.Junction{ID: j.ID}
	for _, c := range j.Connection {
		conn := opendrive.Connection{
			ID: c.ID, IncomingRoad: c.IncomingRoad, ConnectingRoad: c.ConnectingRoad,
			ContactPoint: opendrive.ContactPoint(c.ContactPoint),
		}
		for _, ll := range c.LaneLink {
			conn.LaneLinks = append(conn.LaneLinks, opendrive.LaneLink{From: ll.From, To: ll.To})
		}
		out.Connections = append(out.Connections, conn)
	}
	return out
}

// schemaVersion formats a header's revMajor/revMinor as "1.4"-style string.
func schemaVersion(h xmlHeader) string {
	return strconv.Itoa(h.RevMajor) + "." + strconv.Itoa(h.RevMinor)
}
