package closest

import "fmt"

// Between returns the distance between any two primitives, with PointA on a
// and PointB on b. It dispatches to the query named after the pair, calling
// it with the arguments exchanged when only the reverse order exists.
func Between(a, b Primitive) (Result, error) {
	if a == nil || b == nil {
		return Result{}, fmt.Errorf("between %T and %T: %w", a, b, ErrUnsupportedPair)
	}
	if a.rank() > b.rank() {
		r, err := between(b, a)
		return r.Swap(), err
	}
	return between(a, b)
}

// between requires a.rank() <= b.rank().
func between(a, b Primitive) (Result, error) {
	switch a := a.(type) {
	case Line:
		switch b := b.(type) {
		case Line:
			return LineLine(a, b)
		case Ray:
			return LineRay(a, b)
		case Segment:
			return LineSegment(a, b)
		case Polyline:
			return LinePolyline(a, b)
		case Triangle:
			return LineTriangle(a, b)
		case Point:
			return LinePoint(a, b)
		}
	case Ray:
		switch b := b.(type) {
		case Ray:
			return RayRay(a, b)
		case Segment:
			return RaySegment(a, b)
		case Polyline:
			return RayPolyline(a, b)
		case Triangle:
			return RayTriangle(a, b)
		case Point:
			return RayPoint(a, b)
		}
	case Segment:
		switch b := b.(type) {
		case Segment:
			return SegmentSegment(a, b), nil
		case Polyline:
			return SegmentPolyline(a, b)
		case Triangle:
			return SegmentTriangle(a, b), nil
		case Point:
			return SegmentPoint(a, b), nil
		}
	case Polyline:
		switch b := b.(type) {
		case Polyline:
			return PolylinePolyline(a, b)
		case Triangle:
			return PolylineTriangle(a, b)
		case Point:
			return PolylinePoint(a, b)
		}
	case Triangle:
		switch b := b.(type) {
		case Triangle:
			return TriangleTriangle(a, b), nil
		case Point:
			return TrianglePoint(a, b), nil
		}
	case Point:
		if b, ok := b.(Point); ok {
			return PointPoint(a, b), nil
		}
	}
	return Result{}, fmt.Errorf("between %T and %T: %w", a, b, ErrUnsupportedPair)
}
