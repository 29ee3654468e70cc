package mathx

// CompositeSegment is one planView geometry segment already placed in the
// map frame: Curve is evaluated in its own local frame (origin, heading 0)
// and then mapped by Placement, and StartS is the segment's arc-length
// offset within the composite curve (§4.3 step 1).
type CompositeSegment struct {
	Curve     Curve2D
	StartS    float64
	Placement AffineSequence2D
}

// CompositeCurve2D butts a road's planView segments together along s,
// each contributing its own closed [StartS, StartS+Curve.Length()]
// sub-range; where two sub-ranges meet, the earlier segment owns s.
// Segments are expected in increasing StartS order; gap/overlap detection
// between segments is the builder's concern (§4.3 step 1: "gaps or
// overlaps are reported but do not abort"), not this type's — a composite
// curve only ever needs to answer "which segment owns s".
type CompositeCurve2D struct {
	Segments []CompositeSegment
	Eps      float64
}

func (c CompositeCurve2D) Length() float64 {
	if len(c.Segments) == 0 {
		return 0
	}
	last := c.Segments[len(c.Segments)-1]
	return last.StartS + last.Curve.Length()
}

func (c CompositeCurve2D) Tolerance() float64 { return clampTol(c.Eps) }

// segmentFor returns the segment owning s and s translated into that
// segment's local arc length.
func (c CompositeCurve2D) segmentFor(s float64) (CompositeSegment, float64, error) {
	tol := c.Tolerance()
	for i, seg := range c.Segments {
		local := s - seg.StartS
		segRange := Range{Min: 0, Max: seg.Curve.Length()}
		if segRange.FuzzyContains(local, tol) {
			return seg, segRange.Clamp(local), nil
		}
		if i == len(c.Segments)-1 && local >= 0 {
			// tolerate slight overshoot past the last segment's nominal end
			return seg, segRange.Clamp(local), nil
		}
	}
	return CompositeSegment{}, 0, &ErrOutOfDomain{X: s, Range: Range{Min: 0, Max: c.Length()}}
}

func (c CompositeCurve2D) CalculatePointLocalCS(s float64) (Vector2D, error) {
	seg, local, err := c.segmentFor(s)
	if err != nil {
		return Vector2D{}, err
	}
	return CalculatePointGlobalCS(seg.Curve, local, seg.Placement)
}

func (c CompositeCurve2D) CalculatePoseLocalCS(s float64) (Vector2D, float64, error) {
	seg, local, err := c.segmentFor(s)
	if err != nil {
		return Vector2D{}, 0, err
	}
	return CalculatePoseGlobalCS(seg.Curve, local, seg.Placement)
}
