package closest

// TrianglePoint returns the distance from triangle t to p. Collinear
// triangles resolve to their closest edge.
func TrianglePoint(t Triangle, p Point) Result {
	return newResult(t.tri.Closest(p.Vec()), p.Vec())
}

// TriangleTriangle returns the distance between triangles a and b. Two
// triangles either intersect along an edge of one of them or are closest
// between an edge of one and the other, so six edge queries suffice.
func TriangleTriangle(a, b Triangle) Result {
	ea, eb := a.Edges(), b.Edges()
	best := SegmentTriangle(ea[0], b)
	for _, e := range ea[1:] {
		best = best.min(SegmentTriangle(e, b))
	}
	for _, e := range eb {
		best = best.min(SegmentTriangle(e, a).Swap())
	}
	return best
}
