package closest

// Distance queries with a polyline as the first argument. Polylines are the
// union of their consecutive segments; every query is the minimum over them.
// Ties keep the earliest segment.

// PolylinePoint returns the minimum distance between the segments of pl and p.
func PolylinePoint(pl Polyline, p Point) (Result, error) {
	if err := pl.validate(); err != nil {
		return Result{}, err
	}
	return minOverSegments(pl, func(s Segment) Result {
		return SegmentPoint(s, p)
	}), nil
}

// PolylinePolyline returns the minimum distance between two polylines.
// It runs in O(len(a)*len(b)).
func PolylinePolyline(a, b Polyline) (Result, error) {
	if err := a.validate(); err != nil {
		return Result{}, err
	}
	if err := b.validate(); err != nil {
		return Result{}, err
	}
	return minOverSegments(a, func(s Segment) Result {
		r, _ := SegmentPolyline(s, b)
		return r
	}), nil
}

// PolylineTriangle returns the minimum distance between the segments of pl and t.
func PolylineTriangle(pl Polyline, t Triangle) (Result, error) {
	if err := pl.validate(); err != nil {
		return Result{}, err
	}
	return minOverSegments(pl, func(s Segment) Result {
		return SegmentTriangle(s, t)
	}), nil
}

// minOverSegments applies f to every segment of a validated polyline and
// returns the smallest result.
func minOverSegments(p Polyline, f func(Segment) Result) Result {
	best := f(NewSegment(p.pts[0], p.pts[1]))
	for i := 2; i < len(p.pts); i++ {
		best = best.min(f(NewSegment(p.pts[i-1], p.pts[i])))
	}
	return best
}
