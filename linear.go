package closest

import (
	"math"

	"github.com/soypat/closest/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// linear is the parametric form origin + t*dir, t in [tmin, tmax],
// shared by lines, rays and segments.
type linear struct {
	origin, dir r3.Vec
	tmin, tmax  float64
}

func (l linear) at(t float64) r3.Vec { return d3.Lerp(l.origin, l.dir, t) }

func (l linear) clamp(t float64) float64 { return d3.Clamp(t, l.tmin, l.tmax) }

// project returns the parameter of the point of l closest to p.
func (l linear) project(p r3.Vec) float64 {
	return l.clamp(d3.Project(p, l.origin, l.dir))
}

// bounds returns the finite parameter bounds of l.
func (l linear) bounds() []float64 {
	b := make([]float64, 0, 2)
	if !math.IsInf(l.tmin, 0) {
		b = append(b, l.tmin)
	}
	if !math.IsInf(l.tmax, 0) {
		b = append(b, l.tmax)
	}
	return b
}

func linearPoint(l linear, p r3.Vec) Result {
	return newResult(l.at(l.project(p)), p)
}

// solveLinear returns parameters s, t minimizing |p(s) - q(t)| in closed form.
// Each parameter is clamped to its domain, and when clamping t moves it the
// other side is re-derived against the now fixed point.
// See Ericson, Real-Time Collision Detection 5.1.9.
func solveLinear(p, q linear) (s, t float64) {
	r := r3.Sub(p.origin, q.origin)
	a := r3.Norm2(p.dir)
	e := r3.Norm2(q.dir)
	f := r3.Dot(q.dir, r)
	switch {
	case a == 0 && e == 0:
		return p.clamp(0), q.clamp(0)
	case a == 0:
		return p.clamp(0), q.clamp(f / e)
	}
	c := r3.Dot(p.dir, r)
	if e == 0 {
		return p.clamp(-c / a), q.clamp(0)
	}
	b := r3.Dot(p.dir, q.dir)
	// a*e - b*b written as |p.dir × q.dir|², which does not cancel
	// catastrophically for nearly parallel directions.
	denom := r3.Norm2(r3.Cross(p.dir, q.dir))
	if denom > parallelTol*a*e {
		s = p.clamp((b*f - c*e) / denom)
	} else {
		// Parallel: the system is singular, any s works. Take p's origin.
		s = p.clamp(0)
	}
	t = (b*s + f) / e
	if tc := q.clamp(t); tc != t {
		t = tc
		s = p.clamp((b*t - c) / a)
	}
	return s, t
}

// linearLinear returns the closest points between p and q. The closed form
// solution is compared against every finite bound of either primitive
// re-projected onto the other, and the minimum is kept.
// The closed form solution wins ties.
func linearLinear(p, q linear) Result {
	s, t := solveLinear(p, q)
	best := newResult(p.at(s), q.at(t))
	for _, s := range p.bounds() {
		ps := p.at(s)
		best = best.min(newResult(ps, q.at(q.project(ps))))
	}
	for _, t := range q.bounds() {
		qt := q.at(t)
		best = best.min(newResult(p.at(p.project(qt)), qt))
	}
	return best
}

// linearTriangle returns the closest points between l and tri. If l pierces
// the triangle the distance is zero. Otherwise the minimum lies on an edge of
// the triangle or at a finite end of l.
func linearTriangle(l linear, tri d3.Triangle) Result {
	if !tri.Degenerate(Epsilon) {
		n := tri.Normal()
		nd := r3.Dot(n, l.dir)
		if math.Abs(nd) > Epsilon*r3.Norm(n)*r3.Norm(l.dir) {
			t := r3.Dot(n, r3.Sub(tri[0], l.origin)) / nd
			if t >= l.tmin && t <= l.tmax {
				x := l.at(t)
				u, v, w := tri.Barycentric(x)
				if u >= 0 && v >= 0 && w >= 0 {
					return Result{PointA: x, PointB: x}
				}
			}
		}
	}
	var best Result
	for i := 0; i < 3; i++ {
		edge := Segment{a: tri[i], b: tri[(i+1)%3]}.linear()
		r := linearLinear(l, edge)
		if i == 0 {
			best = r
		} else {
			best = best.min(r)
		}
	}
	for _, s := range l.bounds() {
		ls := l.at(s)
		best = best.min(newResult(ls, tri.Closest(ls)))
	}
	return best
}
