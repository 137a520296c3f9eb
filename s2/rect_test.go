package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEmptyFull(t *testing.T) {
	empty := EmptyRect()
	full := FullRect()

	assert.True(t, empty.IsEmpty())
	assert.True(t, full.IsFull())
	assert.False(t, full.IsEmpty())
}

func TestRectContainsLatLng(t *testing.T) {
	r := EmptyRect().AddPoint(LatLngFromDegrees(-10, -10)).AddPoint(LatLngFromDegrees(10, 10))
	assert.True(t, r.ContainsLatLng(LatLngFromDegrees(0, 0)))
	assert.False(t, r.ContainsLatLng(LatLngFromDegrees(20, 0)))
}

func TestRectUnionContainsBoth(t *testing.T) {
	a := EmptyRect().AddPoint(LatLngFromDegrees(0, 0))
	b := EmptyRect().AddPoint(LatLngFromDegrees(10, 10))
	u := a.Union(b)
	assert.True(t, u.Contains(a))
	assert.True(t, u.Contains(b))
}

func TestRectExpandedGrowsBothAxes(t *testing.T) {
	r := RectFromLatLng(LatLngFromDegrees(0, 0))
	margin := LatLngFromDegrees(5, 5)
	expanded := r.Expanded(margin)

	assert.True(t, expanded.ContainsLatLng(LatLngFromDegrees(4, 4)))
	assert.False(t, expanded.ContainsLatLng(LatLngFromDegrees(6, 6)))
}

func TestRectExpandedNearPoleWidensToFullLongitude(t *testing.T) {
	r := RectFromLatLng(LatLngFromDegrees(89.9999, 0))
	expanded := r.Expanded(LatLngFromDegrees(1, 1))
	assert.True(t, expanded.Lng.IsFull())
}

func TestRectIntersects(t *testing.T) {
	a := EmptyRect().AddPoint(LatLngFromDegrees(-5, -5)).AddPoint(LatLngFromDegrees(5, 5))
	b := EmptyRect().AddPoint(LatLngFromDegrees(0, 0)).AddPoint(LatLngFromDegrees(10, 10))
	c := EmptyRect().AddPoint(LatLngFromDegrees(20, 20)).AddPoint(LatLngFromDegrees(30, 30))

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
}
