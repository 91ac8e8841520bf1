package closest

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Distance queries with an infinite line as the first argument.

// LinePoint returns the distance from l to p. The projection of p onto the
// line is never clamped.
func LinePoint(l Line, p Point) (Result, error) {
	ll, err := l.linear()
	if err != nil {
		return Result{}, err
	}
	return linearPoint(ll, p.Vec()), nil
}

// LineLine returns the distance between two infinite lines. Skew and
// intersecting lines are solved in closed form. Parallel lines report the
// distance from a's origin to b, with PointA equal to a's origin, so for
// parallel lines the closest points depend on argument order.
func LineLine(a, b Line) (Result, error) {
	la, err := a.linear()
	if err != nil {
		return Result{}, err
	}
	lb, err := b.linear()
	if err != nil {
		return Result{}, err
	}
	return linearLinear(la, lb), nil
}

// LineRay returns the distance between line l and ray r.
func LineRay(l Line, r Ray) (Result, error) {
	ll, err := l.linear()
	if err != nil {
		return Result{}, err
	}
	lr, err := r.linear()
	if err != nil {
		return Result{}, err
	}
	return linearLinear(ll, lr), nil
}

// LineSegment returns the distance between line l and segment s.
func LineSegment(l Line, s Segment) (Result, error) {
	ll, err := l.linear()
	if err != nil {
		return Result{}, err
	}
	return linearLinear(ll, s.linear()), nil
}

// LinePolyline returns the minimum distance between l and the segments of p.
func LinePolyline(l Line, p Polyline) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	return LinePoints(l, p.pts)
}

// LinePoints returns the minimum distance between l and the chain of
// segments through pts. A single point is treated as such, so a trailing
// vertex without a successor still takes part.
func LinePoints(l Line, pts []r3.Vec) (Result, error) {
	ll, err := l.linear()
	if err != nil {
		return Result{}, err
	}
	switch len(pts) {
	case 0:
		return Result{}, fmt.Errorf("point sequence: %w", ErrTooFewPoints)
	case 1:
		return linearPoint(ll, pts[0]), nil
	}
	best := linearLinear(ll, NewSegment(pts[0], pts[1]).linear())
	for i := 2; i < len(pts); i++ {
		best = best.min(linearLinear(ll, NewSegment(pts[i-1], pts[i]).linear()))
	}
	return best, nil
}

// LineTriangle returns the distance between l and triangle t. If the line
// crosses the triangle's interior the distance is zero at the crossing.
func LineTriangle(l Line, t Triangle) (Result, error) {
	ll, err := l.linear()
	if err != nil {
		return Result{}, err
	}
	return linearTriangle(ll, t.tri), nil
}
