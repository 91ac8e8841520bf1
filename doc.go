// Package closest computes exact minimum distances and closest-point pairs
// between 3D primitives: points, infinite lines, rays, segments, triangles
// and polylines.
//
// Every query returns a Result holding the distance and one closest point on
// each argument, in argument order:
//
//	r, err := closest.LineSegment(closest.NewLine(a, b), closest.NewSegment(c, d))
//	// r.PointA lies on the line, r.PointB on the segment.
//
// All algorithms are closed form. Lines and rays whose defining points
// coincide have no direction and are rejected with ErrDegenerate instead of
// producing NaN. Zero-length segments and collinear triangles are valid
// geometry and behave as the point or segments they collapse to.
//
// Primitives and results are values; all functions are safe for concurrent use.
package closest
