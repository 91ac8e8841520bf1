package linalg

import (
	"math"

	"github.com/soypat/closest/internal/d2"
	"github.com/soypat/closest/internal/d3"
	"github.com/soypat/closest/internal/diag"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Unit3 returns v scaled to unit length. Unlike r3.Unit it returns
// ErrZeroVector rather than a NaN vector when v has no length.
func Unit3(v r3.Vec) (r3.Vec, error) {
	n := r3.Norm(v)
	if !validNorm(n) {
		return r3.Vec{}, ErrZeroVector
	}
	return r3.Scale(1/n, v), nil
}

// Unit2 returns v scaled to unit length or ErrZeroVector.
func Unit2(v r2.Vec) (r2.Vec, error) {
	n := r2.Norm(v)
	if !validNorm(n) {
		return r2.Vec{}, ErrZeroVector
	}
	return r2.Scale(1/n, v), nil
}

func validNorm(n float64) bool {
	return n != 0 && !math.IsNaN(n) && !math.IsInf(n, 0)
}

// EqualWithin3 returns true if every component of a and b differs by at most tol.
func EqualWithin3(a, b r3.Vec, tol float64) bool { return d3.EqualWithin(a, b, tol) }

// EqualWithin2 returns true if every component of a and b differs by at most tol.
func EqualWithin2(a, b r2.Vec, tol float64) bool { return d2.EqualWithin(a, b, tol) }

// Vec3FromSlice builds a vector from up to three raw components.
// Missing components are zero and extra components are dropped;
// either case is reported to the logger but never fails.
func Vec3FromSlice(xs []float64) r3.Vec {
	diag.ComponentCount("Vec3FromSlice", len(xs), 3)
	var a [3]float64
	copy(a[:], xs)
	return r3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

// Vec2FromSlice builds a vector from up to two raw components with the
// same fill and truncate policy as Vec3FromSlice.
func Vec2FromSlice(xs []float64) r2.Vec {
	diag.ComponentCount("Vec2FromSlice", len(xs), 2)
	var a [2]float64
	copy(a[:], xs)
	return r2.Vec{X: a[0], Y: a[1]}
}
