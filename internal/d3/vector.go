package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector routines shared by the distance engine.
// Parametric forms are origin + t*dir throughout.

// EqualWithin reports whether every component of a and b differs by at most tol.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Clamp x between a and b, assume a <= b. Infinite bounds are allowed.
func Clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns origin + t*dir.
func Lerp(origin, dir r3.Vec, t float64) r3.Vec {
	return r3.Add(origin, r3.Scale(t, dir))
}

// Project returns the parameter t of the orthogonal projection of p onto the
// line origin + t*dir. If dir is the zero vector Project returns 0.
func Project(p, origin, dir r3.Vec) float64 {
	d2 := r3.Norm2(dir)
	if d2 == 0 {
		return 0
	}
	return r3.Dot(r3.Sub(p, origin), dir) / d2
}

// ClosestOnSegment returns the point of segment ab closest to p.
func ClosestOnSegment(a, b, p r3.Vec) r3.Vec {
	ab := r3.Sub(b, a)
	return Lerp(a, ab, Clamp(Project(p, a, ab), 0, 1))
}
