package linalg

import (
	"fmt"
	"math"

	"github.com/soypat/closest/internal/diag"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

var _ mat.Matrix = Mat2{}

// Mat2 is a 2×2 matrix stored in row-major order.
// The zero value is the zero matrix.
type Mat2 struct {
	x [4]float64
}

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 {
	return Mat2{x: [4]float64{1, 0, 0, 1}}
}

// NewMat2 returns a Mat2 populated with the row-major values in a.
// A slice that is not 4 long is zero-filled or truncated and the
// mismatch is logged.
func NewMat2(a []float64) Mat2 {
	diag.ComponentCount("NewMat2", len(a), 4)
	var m Mat2
	copy(m.x[:], a)
	return m
}

// Array returns the matrix elements in row-major order.
func (m Mat2) Array() [4]float64 { return m.x }

// Dims returns the dimensions of the matrix, always 2, 2.
func (m Mat2) Dims() (r, c int) { return 2, 2 }

// At returns the element at row i, column j.
func (m Mat2) At(i, j int) float64 {
	if uint(i) > 1 || uint(j) > 1 {
		panic(mat.ErrIndexOutOfRange)
	}
	return m.x[2*i+j]
}

// T returns the transpose as a mat.Matrix.
func (m Mat2) T() mat.Matrix { return m.Transpose() }

// Transpose returns the transpose of m.
func (m Mat2) Transpose() Mat2 {
	return Mat2{x: [4]float64{
		m.x[0], m.x[2],
		m.x[1], m.x[3],
	}}
}

// Mul returns the matrix product m*b.
func (m Mat2) Mul(b Mat2) Mat2 {
	return Mat2{x: [4]float64{
		m.x[0]*b.x[0] + m.x[1]*b.x[2], m.x[0]*b.x[1] + m.x[1]*b.x[3],
		m.x[2]*b.x[0] + m.x[3]*b.x[2], m.x[2]*b.x[1] + m.x[3]*b.x[3],
	}}
}

// MulVec returns the matrix-vector product m*v.
func (m Mat2) MulVec(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: m.x[0]*v.X + m.x[1]*v.Y,
		Y: m.x[2]*v.X + m.x[3]*v.Y,
	}
}

// Scale returns every element of m multiplied by k.
func (m Mat2) Scale(k float64) Mat2 {
	return m.Map(func(_, _ int, v float64) float64 { return k * v })
}

// Add returns the element-wise sum m+b.
func (m Mat2) Add(b Mat2) Mat2 {
	return m.Map(func(i, j int, v float64) float64 { return v + b.At(i, j) })
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m.x[0]*m.x[3] - m.x[1]*m.x[2]
}

// Inverse returns the inverse of m such that m.Mul(inv) is the identity.
// It returns ErrSingular if the determinant is zero or the inverse
// is not representable.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Det()
	if det == 0 {
		return Mat2{}, ErrSingular
	}
	d := 1 / det
	inv := Mat2{x: [4]float64{
		m.x[3] * d, -m.x[1] * d,
		-m.x[2] * d, m.x[0] * d,
	}}
	if !finite(inv.x[:]) {
		return Mat2{}, ErrSingular
	}
	return inv, nil
}

// Map returns a new matrix whose element (i, j) is f(i, j, m.At(i, j)).
// m is not modified.
func (m Mat2) Map(f func(i, j int, v float64) float64) Mat2 {
	var r Mat2
	for k, v := range m.x {
		r.x[k] = f(k/2, k%2, v)
	}
	return r
}

// EqualWithin tests the element-wise equality of the matrices to within a tolerance.
func (m Mat2) EqualWithin(b Mat2, tol float64) bool {
	return equalWithin(m.x[:], b.x[:], tol)
}

// String formats the matrix with gonum's mat.Formatted.
func (m Mat2) String() string {
	return fmt.Sprintf("%v", mat.Formatted(m))
}

func equalWithin(a, b []float64, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func finite(a []float64) bool {
	for _, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
