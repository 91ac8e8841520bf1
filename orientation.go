package closest

import (
	"fmt"
	"math"

	"github.com/soypat/closest/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Orientation is the side of a line or plane a point lies on.
type Orientation int8

const (
	// Common means the point lies on the line or plane within Epsilon.
	Common Orientation = iota
	// Positive is the side the normal points to.
	Positive
	// Negative is the side opposite the normal.
	Negative
)

func (o Orientation) String() string {
	switch o {
	case Common:
		return "common"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return fmt.Sprintf("Orientation(%d)", int8(o))
}

// classify returns the orientation given by the sign of s. Magnitudes within
// Epsilon*scale are Common.
func classify(s, scale float64) Orientation {
	if math.Abs(s) <= Epsilon*scale {
		return Common
	}
	if s > 0 {
		return Positive
	}
	return Negative
}

// OrientLine classifies p against l viewed from +Z: both are projected onto
// the XY plane and the sign of the 2D cross product of the line direction
// and p-origin decides. Points to the left of the direction are Positive.
// Lines parallel to the Z axis have no projected direction and return
// ErrDegenerate.
func OrientLine(p Point, l Line) (Orientation, error) {
	dir, err := l.Direction()
	if err != nil {
		return Common, err
	}
	d := d2.FromR3(dir)
	if d2.MaxAbs(d) <= Epsilon {
		return Common, fmt.Errorf("line parallel to Z axis: %w", ErrDegenerate)
	}
	v := d2.FromR3(r3.Sub(p.Vec(), l.origin))
	return classify(d2.Cross(d, v), r2.Norm(d)*r2.Norm(v)), nil
}

// OrientLineNormal classifies p against the plane containing l that is
// orthogonal to n×dir, using the sign of dot(n, dir×(p-origin)).
// A zero normal or one parallel to the line returns ErrDegenerate.
func OrientLineNormal(p Point, l Line, n r3.Vec) (Orientation, error) {
	dir, err := l.Direction()
	if err != nil {
		return Common, err
	}
	nn := r3.Norm(n)
	if nn == 0 {
		return Common, fmt.Errorf("zero normal: %w", ErrDegenerate)
	}
	if r3.Norm(r3.Cross(n, dir)) <= Epsilon*nn {
		return Common, fmt.Errorf("normal parallel to line: %w", ErrDegenerate)
	}
	v := r3.Sub(p.Vec(), l.origin)
	s := r3.Dot(n, r3.Cross(dir, v))
	return classify(s, nn*r3.Norm(v)), nil
}

// OrientRay classifies p against the supporting line of r as OrientLine does.
func OrientRay(p Point, r Ray) (Orientation, error) {
	return OrientLine(p, r.Line())
}

// OrientSegment classifies p against the supporting line of s as OrientLine
// does. Zero-length segments return ErrDegenerate.
func OrientSegment(p Point, s Segment) (Orientation, error) {
	return OrientLine(p, s.Line())
}

// OrientTriangle classifies p against the plane of t. The Positive side is
// the one the right hand normal of the vertex order points to.
// Collinear triangles return ErrDegenerate.
func OrientTriangle(p Point, t Triangle) (Orientation, error) {
	n, err := t.Normal()
	if err != nil {
		return Common, err
	}
	v := r3.Sub(p.Vec(), t.tri[0])
	return classify(r3.Dot(n, v), r3.Norm(v)), nil
}
