package linalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func randMat3(rng *rand.Rand) Mat3 {
	var a [9]float64
	for i := range a {
		a[i] = rng.Float64()*20 - 10
	}
	return NewMat3(a[:])
}

func TestMat2Inverse(t *testing.T) {
	m := NewMat2([]float64{4, 7, 2, 6})
	require.InDelta(t, 10, m.Det(), 1e-12)
	inv, err := m.Inverse()
	require.NoError(t, err)
	want := NewMat2([]float64{0.6, -0.7, -0.2, 0.4})
	assert.True(t, inv.EqualWithin(want, 1e-12), "got %v want %v", inv, want)
	assert.True(t, m.Mul(inv).EqualWithin(Identity2(), 1e-12))

	back, err := inv.Inverse()
	require.NoError(t, err)
	assert.True(t, back.EqualWithin(m, 1e-12))
}

func TestMat2Singular(t *testing.T) {
	_, err := NewMat2([]float64{1, 2, 2, 4}).Inverse()
	require.ErrorIs(t, err, ErrSingular)
	_, err = Mat2{}.Inverse()
	require.ErrorIs(t, err, ErrSingular)
}

func TestMat2MulVec(t *testing.T) {
	m := NewMat2([]float64{0, -1, 1, 0}) // 90° counter-clockwise rotation.
	got := m.MulVec(r2.Vec{X: 1, Y: 0})
	assert.Equal(t, r2.Vec{X: 0, Y: 1}, got)
	assert.Equal(t, m, m.Mul(Identity2()))
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, [4]float64{0, 1, -1, 0}, m.Transpose().Array())
}

func TestMat3InverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		m := randMat3(rng)
		if m.Det() < 1e-3 && m.Det() > -1e-3 {
			continue
		}
		inv, err := m.Inverse()
		require.NoError(t, err)
		back, err := inv.Inverse()
		require.NoError(t, err)
		assert.True(t, back.EqualWithin(m, tol), "inverse(inverse(M)) = %v, want %v", back, m)
		assert.True(t, m.Mul(inv).EqualWithin(Identity3(), tol))
		assert.Equal(t, m, m.Mul(Identity3()))

		// Cross-check against gonum's LU based inverse.
		var dense mat.Dense
		require.NoError(t, dense.Inverse(m))
		assert.True(t, mat.EqualApprox(&dense, inv, tol))
		assert.InDelta(t, mat.Det(m), m.Det(), tol)
	}
}

func TestMat3Singular(t *testing.T) {
	m := NewMat3([]float64{
		1, 2, 3,
		2, 4, 6,
		0, 1, 1,
	})
	assert.Equal(t, 0.0, m.Det())
	_, err := m.Inverse()
	require.ErrorIs(t, err, ErrSingular)
}

func TestMat3MulVec(t *testing.T) {
	m := NewMat3([]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	got := m.MulVec(r3.Vec{X: 1, Y: 0, Z: -1})
	assert.Equal(t, r3.Vec{X: -2, Y: -2, Z: -2}, got)
	assert.Equal(t, 6.0, m.Transpose().At(2, 1))
	assert.Equal(t, m, m.T().(Mat3).Transpose())
}

func TestMat3R3Bridge(t *testing.T) {
	m := NewMat3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 10})
	rm := m.R3()
	assert.Equal(t, 10.0, rm.At(2, 2))
	assert.Equal(t, m, Mat3FromR3(rm))
}

func TestMapIsPure(t *testing.T) {
	m := NewMat3([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	orig := m
	doubled := m.Map(func(_, _ int, v float64) float64 { return 2 * v })
	assert.Equal(t, orig, m)
	assert.Equal(t, m.Scale(2), doubled)
	assert.Equal(t, m.Add(m), doubled)

	diagOnly := m.Map(func(i, j int, v float64) float64 {
		if i != j {
			return 0
		}
		return v
	})
	assert.Equal(t, NewMat3([]float64{1, 0, 0, 0, 5, 0, 0, 0, 9}), diagOnly)
}

func TestAtOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Identity2().At(2, 0) })
	assert.Panics(t, func() { Identity3().At(0, -1) })
}

func TestString(t *testing.T) {
	assert.Contains(t, Identity2().String(), "1")
	assert.NotEmpty(t, Identity3().String())
}

func TestMalformedArrayWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	m := NewMat2([]float64{1, 2, 3})
	assert.Equal(t, [4]float64{1, 2, 3, 0}, m.Array())
	m3 := NewMat3(make([]float64, 12))
	assert.Equal(t, Mat3{}, m3)
	_ = NewMat2([]float64{1, 2, 3, 4})

	entries := logs.FilterMessage("malformed component count").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "zero-fill", entries[0].ContextMap()["policy"])
	assert.Equal(t, "truncate", entries[1].ContextMap()["policy"])
	assert.Equal(t, int64(12), entries[1].ContextMap()["got"])
}
