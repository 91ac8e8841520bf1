package closest

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Epsilon is the relative tolerance used to decide parallelism and to
	// classify a point as lying on a line or plane.
	Epsilon = 1e-10
	// parallelTol bounds sin² of the angle between two directions
	// considered parallel.
	parallelTol = Epsilon * Epsilon
	// degenerateTol is the relative length below which a direction vector
	// is considered numerically zero.
	degenerateTol = 1e-12
)

// Floating Point Comparisons
// See: http://floating-point-gui.de/errors/NearlyEqualsTest.java

const minNormal = 2.2250738585072014e-308 // 2**-1022

// EqualFloat64 compares two float64 values for equality.
func EqualFloat64(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || diff < minNormal {
		// a or b is zero or both are extremely close to it
		// relative error is less meaningful here
		return diff < (epsilon * minNormal)
	}
	// use relative error
	return diff/math.Min((absA+absB), math.MaxFloat64) < epsilon
}

// negligible reports whether direction d, spanning from a to b, is too short
// to define a direction relative to the magnitude of its endpoints.
func negligible(d, a, b r3.Vec) bool {
	n := r3.Norm(d)
	if n == 0 || math.IsNaN(n) {
		return true
	}
	return n <= degenerateTol*math.Max(r3.Norm(a), r3.Norm(b))
}
