package closest

// PointPoint returns the distance between two points.
func PointPoint(a, b Point) Result {
	return newResult(a.Vec(), b.Vec())
}
