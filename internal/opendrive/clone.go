package opendrive

// Clone returns a deep copy of the model. The evaluator's non-fatal pass
// heals a clone rather than mutating its input (§9 "No shared mutable
// model").
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	out := &Model{}
	if m.Header != nil {
		h := *m.Header
		out.Header = &h
	}
	out.Roads = make([]Road, len(m.Roads))
	for i, r := range m.Roads {
		out.Roads[i] = r.Clone()
	}
	out.Junctions = make([]Junction, len(m.Junctions))
	for i, j := range m.Junctions {
		out.Junctions[i] = j.Clone()
	}
	return out
}

// Clone returns a deep copy of the road.
func (r Road) Clone() Road {
	out := r
	out.PlanView = append([]PlanViewGeometry(nil), r.PlanView...)
	if r.ElevationProfile != nil {
		ep := *r.ElevationProfile
		ep.Elevation = append([]ElevationRecord(nil), r.ElevationProfile.Elevation...)
		out.ElevationProfile = &ep
	}
	if r.LateralProfile != nil {
		lp := *r.LateralProfile
		lp.Superelevation = append([]ElevationRecord(nil), r.LateralProfile.Superelevation...)
		lp.Shape = append([]ShapeRecord(nil), r.LateralProfile.Shape...)
		out.LateralProfile = &lp
	}
	out.Lanes.LaneOffsets = append([]LaneOffsetRecord(nil), r.Lanes.LaneOffsets...)
	out.Lanes.LaneSections = make([]LaneSection, len(r.Lanes.LaneSections))
	for i, ls := range r.Lanes.LaneSections {
		out.Lanes.LaneSections[i] = ls.Clone()
	}
	out.Objects = make([]Object, len(r.Objects))
	for i, o := range r.Objects {
		out.Objects[i] = o.Clone()
	}
	out.Signals = append([]Signal(nil), r.Signals...)
	return out
}

// Clone returns a deep copy of the lane section.
func (ls LaneSection) Clone() LaneSection {
	out := ls
	out.Left = cloneLanes(ls.Left)
	out.Center = cloneLanes(ls.Center)
	out.Right = cloneLanes(ls.Right)
	return out
}

func cloneLanes(lanes []Lane) []Lane {
	out := make([]Lane, len(lanes))
	for i, l := range lanes {
		out[i] = l
		out[i].Widths = append([]LaneWidthRecord(nil), l.Widths...)
		out[i].RoadMarks = append([]RoadMarkRecord(nil), l.RoadMarks...)
	}
	return out
}

// Clone returns a deep copy of the object.
func (o Object) Clone() Object {
	out := o
	out.Outline = append([]ObjectOutlinePoint(nil), o.Outline...)
	if o.Repeat != nil {
		rep := *o.Repeat
		out.Repeat = &rep
	}
	return out
}

// Clone returns a deep copy of the junction.
func (j Junction) Clone() Junction {
	out := j
	out.Connections = make([]Connection, len(j.Connections))
	for i, c := range j.Connections {
		out.Connections[i] = c
		out.Connections[i].LaneLinks = append([]LaneLink(nil), c.LaneLinks...)
	}
	return out
}
