package closest

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Conversions from and to the float32 types of github.com/soypat/glgl,
// as used by GPU meshes and STL triangles.

// FromMS3 returns the float64 point of v.
func FromMS3(v ms3.Vec) Point {
	return Pt(float64(v.X), float64(v.Y), float64(v.Z))
}

// TriangleFromMS3 returns the float64 triangle of t.
func TriangleFromMS3(t ms3.Triangle) Triangle {
	return NewTriangle(FromMS3(t[0]).Vec(), FromMS3(t[1]).Vec(), FromMS3(t[2]).Vec())
}

// MS3 narrows p to float32. Components out of float32 range
// return ErrOverflow.
func (p Point) MS3() (ms3.Vec, error) {
	x, okx := narrow(p.X)
	y, oky := narrow(p.Y)
	z, okz := narrow(p.Z)
	if !okx || !oky || !okz {
		return ms3.Vec{}, fmt.Errorf("point %v: %w", r3.Vec(p), ErrOverflow)
	}
	return ms3.Vec{X: x, Y: y, Z: z}, nil
}

// narrow converts x to float32. Finite values beyond float32 range fail;
// infinities are kept.
func narrow(x float64) (float32, bool) {
	if math.Abs(x) > math.MaxFloat32 && !math.IsInf(x, 0) {
		return 0, false
	}
	f := float32(x)
	return f, math32.IsInf(f, 0) == math.IsInf(x, 0)
}

// MS3 narrows t to float32. Vertices out of float32 range
// return ErrOverflow.
func (t Triangle) MS3() (ms3.Triangle, error) {
	var out ms3.Triangle
	for i, v := range t.tri {
		mv, err := Point(v).MS3()
		if err != nil {
			return ms3.Triangle{}, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = mv
	}
	return out, nil
}
