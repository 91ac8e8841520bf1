package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// R2 vector routines used by planar orientation tests.

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// FromR3 drops the Z component of a 3D vector, projecting it onto the XY plane.
func FromR3(v r3.Vec) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// Cross returns the scalar 2D cross product a.X*b.Y - a.Y*b.X.
// Positive when b is counter-clockwise of a.
func Cross(a, b r2.Vec) float64 {
	return r2.Cross(a, b)
}

// MaxAbs returns the largest absolute component of a.
func MaxAbs(a r2.Vec) float64 {
	return math.Max(math.Abs(a.X), math.Abs(a.Y))
}
