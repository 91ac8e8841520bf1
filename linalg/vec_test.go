package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestUnit(t *testing.T) {
	u, err := Unit3(r3.Vec{X: 3, Y: 0, Z: 4})
	require.NoError(t, err)
	assert.True(t, EqualWithin3(u, r3.Vec{X: 0.6, Z: 0.8}, 1e-15))

	_, err = Unit3(r3.Vec{})
	require.ErrorIs(t, err, ErrZeroVector)
	_, err = Unit3(r3.Vec{X: math.NaN()})
	require.ErrorIs(t, err, ErrZeroVector)

	u2, err := Unit2(r2.Vec{X: 0, Y: -2})
	require.NoError(t, err)
	assert.True(t, EqualWithin2(u2, r2.Vec{Y: -1}, 0))
	_, err = Unit2(r2.Vec{})
	require.ErrorIs(t, err, ErrZeroVector)
}

func TestVecFromSlice(t *testing.T) {
	assert.Equal(t, r3.Vec{X: 1, Y: 2}, Vec3FromSlice([]float64{1, 2}))
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, Vec3FromSlice([]float64{1, 2, 3, 4}))
	assert.Equal(t, r3.Vec{}, Vec3FromSlice(nil))
	assert.Equal(t, r2.Vec{X: 5}, Vec2FromSlice([]float64{5}))
}
