package linalg

import (
	"fmt"

	"github.com/soypat/closest/internal/diag"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

var _ mat.Matrix = Mat3{}

// Mat3 is a 3×3 matrix stored in row-major order.
// The zero value is the zero matrix.
type Mat3 struct {
	x [9]float64
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 {
	return Mat3{x: [9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}}
}

// NewMat3 returns a Mat3 populated with the row-major values in a.
// A slice that is not 9 long is zero-filled or truncated and the
// mismatch is logged.
func NewMat3(a []float64) Mat3 {
	diag.ComponentCount("NewMat3", len(a), 9)
	var m Mat3
	copy(m.x[:], a)
	return m
}

// Mat3FromR3 copies a gonum r3.Mat into a Mat3.
func Mat3FromR3(a *r3.Mat) Mat3 {
	var m Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.x[3*i+j] = a.At(i, j)
		}
	}
	return m
}

// R3 returns a newly allocated gonum r3.Mat with the elements of m.
func (m Mat3) R3() *r3.Mat {
	a := m.x
	return r3.NewMat(a[:])
}

// Array returns the matrix elements in row-major order.
func (m Mat3) Array() [9]float64 { return m.x }

// Dims returns the dimensions of the matrix, always 3, 3.
func (m Mat3) Dims() (r, c int) { return 3, 3 }

// At returns the element at row i, column j.
func (m Mat3) At(i, j int) float64 {
	if uint(i) > 2 || uint(j) > 2 {
		panic(mat.ErrIndexOutOfRange)
	}
	return m.x[3*i+j]
}

// T returns the transpose as a mat.Matrix.
func (m Mat3) T() mat.Matrix { return m.Transpose() }

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	x := m.x
	return Mat3{x: [9]float64{
		x[0], x[3], x[6],
		x[1], x[4], x[7],
		x[2], x[5], x[8],
	}}
}

// Mul returns the matrix product m*b.
func (m Mat3) Mul(b Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.x[3*i+j] = m.x[3*i]*b.x[j] + m.x[3*i+1]*b.x[3+j] + m.x[3*i+2]*b.x[6+j]
		}
	}
	return r
}

// MulVec returns the matrix-vector product m*v.
func (m Mat3) MulVec(v r3.Vec) r3.Vec {
	x := m.x
	return r3.Vec{
		X: x[0]*v.X + x[1]*v.Y + x[2]*v.Z,
		Y: x[3]*v.X + x[4]*v.Y + x[5]*v.Z,
		Z: x[6]*v.X + x[7]*v.Y + x[8]*v.Z,
	}
}

// Scale returns every element of m multiplied by k.
func (m Mat3) Scale(k float64) Mat3 {
	return m.Map(func(_, _ int, v float64) float64 { return k * v })
}

// Add returns the element-wise sum m+b.
func (m Mat3) Add(b Mat3) Mat3 {
	return m.Map(func(i, j int, v float64) float64 { return v + b.At(i, j) })
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	x := m.x
	return x[0]*(x[4]*x[8]-x[5]*x[7]) -
		x[1]*(x[3]*x[8]-x[5]*x[6]) +
		x[2]*(x[3]*x[7]-x[4]*x[6])
}

// Inverse returns the inverse of m via its adjugate.
// It returns ErrSingular if the determinant is zero or the inverse
// is not representable.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Det()
	if det == 0 {
		return Mat3{}, ErrSingular
	}
	d := 1 / det
	x := m.x
	inv := Mat3{x: [9]float64{
		(x[4]*x[8] - x[5]*x[7]) * d, (x[2]*x[7] - x[1]*x[8]) * d, (x[1]*x[5] - x[2]*x[4]) * d,
		(x[5]*x[6] - x[3]*x[8]) * d, (x[0]*x[8] - x[2]*x[6]) * d, (x[2]*x[3] - x[0]*x[5]) * d,
		(x[3]*x[7] - x[4]*x[6]) * d, (x[1]*x[6] - x[0]*x[7]) * d, (x[0]*x[4] - x[1]*x[3]) * d,
	}}
	if !finite(inv.x[:]) {
		return Mat3{}, ErrSingular
	}
	return inv, nil
}

// Map returns a new matrix whose element (i, j) is f(i, j, m.At(i, j)).
// m is not modified.
func (m Mat3) Map(f func(i, j int, v float64) float64) Mat3 {
	var r Mat3
	for k, v := range m.x {
		r.x[k] = f(k/3, k%3, v)
	}
	return r
}

// EqualWithin tests the element-wise equality of the matrices to within a tolerance.
func (m Mat3) EqualWithin(b Mat3, tol float64) bool {
	return equalWithin(m.x[:], b.x[:], tol)
}

// String formats the matrix with gonum's mat.Formatted.
func (m Mat3) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m))
}
