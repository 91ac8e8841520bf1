// Package linalg provides the small dense linear algebra used alongside the
// closest-point queries: unit vectors that fail instead of producing NaN,
// tolerant vector comparison, and value-type 2×2 and 3×3 matrices.
//
// Vectors are gonum's r2.Vec and r3.Vec. Mat2 and Mat3 are plain values:
// every operation returns a new matrix and never aliases its receiver, so
// passing the same matrix as operand and destination is always safe.
// Both satisfy gonum's mat.Matrix and can be handed to any gonum routine
// accepting one.
package linalg
