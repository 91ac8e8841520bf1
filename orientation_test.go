package closest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestOrientLine(t *testing.T) {
	l := NewLine(vec(0, 0, 0), vec(1, 0, 0))
	for _, test := range []struct {
		p    Point
		want Orientation
	}{
		{p: Pt(0, 1, 0), want: Positive},
		{p: Pt(3, -1, 0), want: Negative},
		{p: Pt(5, 0, 3), want: Common}, // Z is ignored.
		{p: Pt(0, 0, 0), want: Common},
	} {
		got, err := OrientLine(test.p, l)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "point %v", test.p)
	}

	_, err := OrientLine(Pt(1, 0, 0), NewLine(vec(0, 0, 0), vec(0, 0, 1)))
	require.ErrorIs(t, err, ErrDegenerate)
	_, err = OrientLine(Pt(1, 0, 0), NewLine(vec(0, 0, 0), vec(0, 0, 0)))
	require.ErrorIs(t, err, ErrDegenerate)
}

// TestOrientLineNormalSweep sweeps a point across the dividing plane and
// checks the classification flips exactly once, through Common.
func TestOrientLineNormalSweep(t *testing.T) {
	l := NewLine(vec(1, 1, 1), vec(2, 1, 1))
	n := vec(0, 0, 1)
	var got []Orientation
	for i := -8; i <= 8; i++ {
		o, err := OrientLineNormal(Pt(3, 1+float64(i)/8, 1.5), l, n)
		require.NoError(t, err)
		got = append(got, o)
	}
	for i, o := range got {
		switch {
		case i < 8:
			assert.Equal(t, Negative, o, "step %d", i)
		case i == 8:
			assert.Equal(t, Common, o, "step %d", i)
		default:
			assert.Equal(t, Positive, o, "step %d", i)
		}
	}

	_, err := OrientLineNormal(Pt(0, 1, 0), l, r3.Vec{})
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestOrientLineNormalParallel(t *testing.T) {
	l := NewLine(vec(0, 0, 0), vec(1, 0, 0))
	for _, n := range []r3.Vec{vec(1, 0, 0), vec(-3, 0, 0)} {
		for _, p := range []Point{Pt(0, 5, 0), Pt(0, -5, 0), Pt(0, 0, 5), Pt(0, 0, -5)} {
			_, err := OrientLineNormal(p, l, n)
			require.ErrorIs(t, err, ErrDegenerate, "normal %v point %v", n, p)
		}
	}
}

func TestOrientRay(t *testing.T) {
	r := NewRay(vec(1, 1, 0), vec(0, 2, 0))
	for _, test := range []struct {
		p    Point
		want Orientation
	}{
		{p: Pt(0, 3, 0), want: Positive},
		{p: Pt(2, -4, 7), want: Negative}, // Behind the origin uses the supporting line.
		{p: Pt(1, -9, 0), want: Common},
	} {
		got, err := OrientRay(test.p, r)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "point %v", test.p)
	}
	_, err := OrientRay(Pt(1, 0, 0), NewRay(vec(0, 0, 0), vec(0, 0, 1)))
	require.ErrorIs(t, err, ErrDegenerate)
	_, err = OrientRay(Pt(1, 0, 0), NewRay(vec(0, 0, 0), r3.Vec{}))
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestOrientSegment(t *testing.T) {
	s := NewSegment(vec(0, 0, 0), vec(2, 2, 0))
	for _, test := range []struct {
		p    Point
		want Orientation
	}{
		{p: Pt(0, 1, 0), want: Positive},
		{p: Pt(1, 0, 0), want: Negative},
		{p: Pt(5, 5, -2), want: Common}, // Past b on the supporting line.
	} {
		got, err := OrientSegment(test.p, s)
		require.NoError(t, err)
		assert.Equal(t, test.want, got, "point %v", test.p)
	}
	_, err := OrientSegment(Pt(1, 0, 0), NewSegment(vec(3, 3, 3), vec(3, 3, 3)))
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestOrientTriangle(t *testing.T) {
	tri := NewTriangle(vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0))
	prev := Negative
	flips := 0
	for i := -4; i <= 4; i++ {
		o, err := OrientTriangle(Pt(0.2, 0.2, float64(i)/4), tri)
		require.NoError(t, err)
		if i == 0 {
			assert.Equal(t, Common, o)
		}
		if o != prev {
			flips++
			prev = o
		}
	}
	assert.Equal(t, 2, flips) // Negative -> Common -> Positive.
	assert.Equal(t, Positive, prev)

	_, err := OrientTriangle(Pt(0, 0, 1), NewTriangle(vec(0, 0, 0), vec(1, 1, 1), vec(2, 2, 2)))
	require.ErrorIs(t, err, ErrDegenerate)
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "common", Common.String())
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "Orientation(9)", Orientation(9).String())
}
