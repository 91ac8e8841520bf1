package closest

// Distance queries with a segment as the first argument. Segments are never
// degenerate: a zero-length segment behaves as its single point.

// SegmentPoint returns the distance from s to p. The projection parameter is
// clamped to [0, 1] so points beyond either end resolve to that endpoint.
func SegmentPoint(s Segment, p Point) Result {
	return linearPoint(s.linear(), p.Vec())
}

// SegmentSegment returns the distance between segments a and b.
func SegmentSegment(a, b Segment) Result {
	return linearLinear(a.linear(), b.linear())
}

// SegmentPolyline returns the minimum distance between s and the segments of p.
func SegmentPolyline(s Segment, p Polyline) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	ls := s.linear()
	return minOverSegments(p, func(e Segment) Result {
		return linearLinear(ls, e.linear())
	}), nil
}

// SegmentTriangle returns the distance between segment s and triangle t.
func SegmentTriangle(s Segment, t Triangle) Result {
	return linearTriangle(s.linear(), t.tri)
}
