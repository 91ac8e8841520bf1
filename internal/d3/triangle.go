package d3

import "gonum.org/v1/gonum/spatial/r3"

// Triangle is a 3D triangle with vertices in counter-clockwise order
// when viewed from the side its normal points to.
type Triangle [3]r3.Vec

// Normal returns the unnormalized normal (b-a)×(c-a). Its norm is twice the
// triangle's area.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}

// Degenerate returns true if the sine of the angle between the two edges
// leaving the first vertex is below tol, which includes zero-length edges.
func (t Triangle) Degenerate(tol float64) bool {
	e1 := r3.Sub(t[1], t[0])
	e2 := r3.Sub(t[2], t[0])
	n2 := r3.Norm2(r3.Cross(e1, e2))
	return n2 <= tol*tol*r3.Norm2(e1)*r3.Norm2(e2)
}

// Barycentric returns the barycentric coordinates (u, v, w) of the projection
// of p onto the triangle's plane so that p' = u*a + v*b + w*c.
// The triangle must not be degenerate.
func (t Triangle) Barycentric(p r3.Vec) (u, v, w float64) {
	v0 := r3.Sub(t[1], t[0])
	v1 := r3.Sub(t[2], t[0])
	v2 := r3.Sub(p, t[0])
	d00 := r3.Dot(v0, v0)
	d01 := r3.Dot(v0, v1)
	d11 := r3.Dot(v1, v1)
	d20 := r3.Dot(v2, v0)
	d21 := r3.Dot(v2, v1)
	denom := d00*d11 - d01*d01
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	return 1 - v - w, v, w
}

// Closest returns closest point on the triangle to argument point p.
// Degenerate triangles are treated as the union of their edges.
func (t Triangle) Closest(p r3.Vec) r3.Vec {
	a, b, c := t[0], t[1], t[2]
	if t.Degenerate(0) {
		best := ClosestOnSegment(a, b, p)
		for _, q := range [2]r3.Vec{ClosestOnSegment(b, c, p), ClosestOnSegment(c, a, p)} {
			if r3.Norm2(r3.Sub(q, p)) < r3.Norm2(r3.Sub(best, p)) {
				best = q
			}
		}
		return best
	}
	// Voronoi region walk, see Ericson, Real-Time Collision Detection 5.1.5.
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)
	ap := r3.Sub(p, a)
	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		return Lerp(a, ab, d1/(d1-d3))
	}
	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		return Lerp(a, ac, d2/(d2-d6))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		return Lerp(b, r3.Sub(c, b), (d4-d3)/((d4-d3)+(d5-d6)))
	}
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}
