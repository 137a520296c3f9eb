package r3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNorm(t *testing.T) {
	tests := []struct {
		v    Vector
		want float64
	}{
		{Vector{0, 0, 0}, 0},
		{Vector{0, 1, 0}, 1},
		{Vector{3, -4, 12}, 13},
		{Vector{1, 1, 1}, math.Sqrt(3)},
	}
	for _, test := range tests {
		assert.InDelta(t, test.want, test.v.Norm(), 1e-14)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{1, 1, 1}.Normalize()
	require.True(t, v.IsUnit())
	assert.InDelta(t, 1.0, v.Norm(), 1e-15)

	// normalizing the zero vector should not panic or divide by zero.
	assert.Equal(t, Vector{}, Vector{}.Normalize())
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{0, 1, 0}
	c := a.Cross(b)
	assert.InDelta(t, 0.0, c.Dot(a), 1e-15)
	assert.InDelta(t, 0.0, c.Dot(b), 1e-15)
	assert.Equal(t, Vector{0, 0, 1}, c)
}

func TestDot(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -5, 6}
	assert.Equal(t, float64(1*4+2*-5+3*6), a.Dot(b))
}

func TestOrthoIsUnitAndOrthogonal(t *testing.T) {
	vectors := []Vector{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}, {-1, 2, -3},
	}
	for _, v := range vectors {
		o := v.Ortho()
		require.True(t, o.IsUnit())
		assert.InDelta(t, 0.0, o.Dot(v.Normalize()), 1e-9)
	}
}

func TestAngle(t *testing.T) {
	a := Vector{1, 0, 0}
	b := Vector{0, 1, 0}
	assert.InDelta(t, math.Pi/2, a.Angle(b), 1e-15)

	c := Vector{1, 0, 0}
	assert.InDelta(t, 0.0, a.Angle(c), 1e-15)
}

func TestLargestSmallestComponent(t *testing.T) {
	v := Vector{1, -5, 3}
	assert.Equal(t, yAxis, v.LargestComponent())
	assert.Equal(t, xAxis, v.SmallestComponent())
}
