package closest

import (
	"fmt"
	"math"

	"github.com/soypat/closest/internal/d3"
	"github.com/soypat/closest/internal/diag"
	"github.com/soypat/closest/linalg"
	"gonum.org/v1/gonum/spatial/r3"
)

// Primitive is implemented by every geometric type in this package.
// It is used by Between and Batch to accept any pair of primitives.
type Primitive interface {
	// rank orders primitives so every pair has one canonical query.
	rank() int
}

const (
	rankLine = iota
	rankRay
	rankSegment
	rankPolyline
	rankTriangle
	rankPoint
)

// Point is a location in 3D space.
type Point r3.Vec

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point { return Point{X: x, Y: y, Z: z} }

// PointFrom builds a point from raw components. Fewer than three components
// are zero-filled and extra components are dropped; both are logged as
// warnings but never fail.
func PointFrom(xs ...float64) Point {
	diag.ComponentCount("PointFrom", len(xs), 3)
	var a [3]float64
	copy(a[:], xs)
	return Pt(a[0], a[1], a[2])
}

// Vec returns p as a vector from the origin.
func (p Point) Vec() r3.Vec { return r3.Vec(p) }

func (Point) rank() int { return rankPoint }

// Line is an infinite line through two distinct points.
type Line struct {
	origin, end r3.Vec
}

// NewLine returns the line through origin and end.
// The points must differ for the line to have a direction.
func NewLine(origin, end r3.Vec) Line {
	return Line{origin: origin, end: end}
}

// Origin returns the first defining point of the line.
func (l Line) Origin() r3.Vec { return l.origin }

// End returns the second defining point of the line.
func (l Line) End() r3.Vec { return l.end }

// Direction returns the unit direction from origin to end or
// ErrDegenerate if the defining points coincide.
func (l Line) Direction() (r3.Vec, error) {
	d := r3.Sub(l.end, l.origin)
	if negligible(d, l.origin, l.end) {
		return r3.Vec{}, fmt.Errorf("line: %w", ErrDegenerate)
	}
	return linalg.Unit3(d)
}

func (l Line) linear() (linear, error) {
	d, err := l.Direction()
	if err != nil {
		return linear{}, err
	}
	return linear{origin: l.origin, dir: d, tmin: math.Inf(-1), tmax: math.Inf(1)}, nil
}

func (Line) rank() int { return rankLine }

// Ray is a half-line starting at an origin and extending along a direction.
type Ray struct {
	origin, dir r3.Vec
}

// NewRay returns the ray starting at origin along dir. dir need not be unit length.
func NewRay(origin, dir r3.Vec) Ray {
	return Ray{origin: origin, dir: dir}
}

// RayThrough returns the ray starting at origin passing through the point through.
func RayThrough(origin, through r3.Vec) Ray {
	return Ray{origin: origin, dir: r3.Sub(through, origin)}
}

// Origin returns the start of the ray.
func (r Ray) Origin() r3.Vec { return r.origin }

// Direction returns the unit direction of the ray or ErrDegenerate if the
// direction given on construction is numerically zero.
func (r Ray) Direction() (r3.Vec, error) {
	if negligible(r.dir, r.origin, r3.Add(r.origin, r.dir)) {
		return r3.Vec{}, fmt.Errorf("ray: %w", ErrDegenerate)
	}
	return linalg.Unit3(r.dir)
}

// Line returns the supporting line of the ray.
func (r Ray) Line() Line { return NewLine(r.origin, r3.Add(r.origin, r.dir)) }

func (r Ray) linear() (linear, error) {
	d, err := r.Direction()
	if err != nil {
		return linear{}, err
	}
	return linear{origin: r.origin, dir: d, tmin: 0, tmax: math.Inf(1)}, nil
}

func (Ray) rank() int { return rankRay }

// Segment is the set of points between two endpoints, inclusive.
// A segment whose endpoints coincide is a point.
type Segment struct {
	a, b r3.Vec
}

// NewSegment returns the segment from a to b.
func NewSegment(a, b r3.Vec) Segment {
	return Segment{a: a, b: b}
}

// A returns the start of the segment (t=0).
func (s Segment) A() r3.Vec { return s.a }

// B returns the end of the segment (t=1).
func (s Segment) B() r3.Vec { return s.b }

// At returns the point of the segment at parameter t in [0, 1].
func (s Segment) At(t float64) r3.Vec { return d3.Lerp(s.a, r3.Sub(s.b, s.a), t) }

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 { return r3.Norm(r3.Sub(s.b, s.a)) }

// Line returns the supporting line of the segment.
func (s Segment) Line() Line { return NewLine(s.a, s.b) }

func (s Segment) linear() linear {
	return linear{origin: s.a, dir: r3.Sub(s.b, s.a), tmin: 0, tmax: 1}
}

func (Segment) rank() int { return rankSegment }

// Triangle is a planar triangle given by three vertices.
type Triangle struct {
	tri d3.Triangle
}

// NewTriangle returns the triangle with vertices a, b and c.
func NewTriangle(a, b, c r3.Vec) Triangle {
	return Triangle{tri: d3.Triangle{a, b, c}}
}

// Vertices returns the three vertices of the triangle.
func (t Triangle) Vertices() [3]r3.Vec { return t.tri }

// Edges returns the edges ab, bc and ca.
func (t Triangle) Edges() [3]Segment {
	v := t.tri
	return [3]Segment{
		NewSegment(v[0], v[1]),
		NewSegment(v[1], v[2]),
		NewSegment(v[2], v[0]),
	}
}

// Normal returns the unit normal following the right hand rule over the
// vertex order, or ErrDegenerate if the vertices are collinear.
func (t Triangle) Normal() (r3.Vec, error) {
	if t.Degenerate() {
		return r3.Vec{}, fmt.Errorf("triangle: %w", ErrDegenerate)
	}
	return linalg.Unit3(t.tri.Normal())
}

// Degenerate returns true if the vertices are collinear within Epsilon.
func (t Triangle) Degenerate() bool { return t.tri.Degenerate(Epsilon) }

// Centroid returns the mean of the vertices.
func (t Triangle) Centroid() r3.Vec {
	v := t.tri
	return r3.Scale(1.0/3, r3.Add(v[0], r3.Add(v[1], v[2])))
}

func (Triangle) rank() int { return rankTriangle }

// Polyline is a connected chain of segments through an ordered list of points.
type Polyline struct {
	pts []r3.Vec
}

// NewPolyline returns the polyline through pts. The points are copied.
// Queries on polylines with fewer than two points fail with ErrTooFewPoints.
func NewPolyline(pts ...r3.Vec) Polyline {
	return Polyline{pts: append([]r3.Vec(nil), pts...)}
}

// Len returns the number of vertices.
func (p Polyline) Len() int { return len(p.pts) }

// Point returns the i'th vertex.
func (p Polyline) Point(i int) r3.Vec { return p.pts[i] }

// Segments returns the consecutive segments of the polyline.
func (p Polyline) Segments() []Segment {
	if len(p.pts) < 2 {
		return nil
	}
	segs := make([]Segment, len(p.pts)-1)
	for i := range segs {
		segs[i] = NewSegment(p.pts[i], p.pts[i+1])
	}
	return segs
}

func (p Polyline) validate() error {
	if len(p.pts) < 2 {
		return fmt.Errorf("polyline with %d points: %w", len(p.pts), ErrTooFewPoints)
	}
	return nil
}

func (Polyline) rank() int { return rankPolyline }
