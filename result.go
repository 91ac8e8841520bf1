package closest

import "gonum.org/v1/gonum/spatial/r3"

// Result is the outcome of a distance query between primitives A and B,
// named after the order of the query's arguments.
type Result struct {
	// Distance is the minimum Euclidean distance between A and B.
	// It always equals r3.Norm(r3.Sub(PointA, PointB)).
	Distance float64
	// PointA is the point of A closest to B.
	PointA r3.Vec
	// PointB is the point of B closest to A.
	PointB r3.Vec
}

func newResult(a, b r3.Vec) Result {
	return Result{Distance: r3.Norm(r3.Sub(a, b)), PointA: a, PointB: b}
}

// Swap returns the result of the same query with its arguments exchanged.
func (r Result) Swap() Result {
	return Result{Distance: r.Distance, PointA: r.PointB, PointB: r.PointA}
}

// min returns the result with the smaller distance, preferring r on ties.
func (r Result) min(other Result) Result {
	if other.Distance < r.Distance {
		return other
	}
	return r
}
