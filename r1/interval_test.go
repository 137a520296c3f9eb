package r1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalIsEmpty(t *testing.T) {
	assert.True(t, EmptyInterval().IsEmpty())
	assert.False(t, Interval{0, 1}.IsEmpty())
	assert.True(t, Interval{1, 0}.IsEmpty())
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{0, 10}
	assert.True(t, iv.Contains(0))
	assert.True(t, iv.Contains(10))
	assert.True(t, iv.Contains(5))
	assert.False(t, iv.Contains(-1))
	assert.False(t, iv.InteriorContains(0))
	assert.True(t, iv.InteriorContains(5))
}

func TestIntervalUnion(t *testing.T) {
	a := Interval{0, 5}
	b := Interval{3, 10}
	got := a.Union(b)
	assert.Equal(t, Interval{0, 10}, got)

	assert.Equal(t, a, a.Union(EmptyInterval()))
	assert.Equal(t, a, EmptyInterval().Union(a))
}

func TestIntervalIntersection(t *testing.T) {
	a := Interval{0, 5}
	b := Interval{3, 10}
	assert.Equal(t, Interval{3, 5}, a.Intersection(b))

	c := Interval{6, 10}
	assert.True(t, a.Intersection(c).IsEmpty())
}

func TestIntervalAddPoint(t *testing.T) {
	iv := EmptyInterval()
	iv = iv.AddPoint(5)
	assert.Equal(t, Interval{5, 5}, iv)
	iv = iv.AddPoint(1)
	assert.Equal(t, Interval{1, 5}, iv)
	iv = iv.AddPoint(10)
	assert.Equal(t, Interval{1, 10}, iv)
}

func TestIntervalExpanded(t *testing.T) {
	iv := Interval{2, 4}
	assert.Equal(t, Interval{1, 5}, iv.Expanded(1))
	assert.True(t, iv.Expanded(-5).IsEmpty())
	assert.True(t, EmptyInterval().Expanded(1).IsEmpty())
}

func TestIntervalClampPoint(t *testing.T) {
	iv := Interval{0, 10}
	assert.Equal(t, 0.0, iv.ClampPoint(-5))
	assert.Equal(t, 10.0, iv.ClampPoint(15))
	assert.Equal(t, 5.0, iv.ClampPoint(5))
}
