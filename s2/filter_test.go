package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/s2loop/s1"
)

func TestPointFilterWithin(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	f, err := NewPointFilter(QueryTypeWithin, center)
	require.NoError(t, err)

	assert.True(t, f.MatchesPoint(center))
	assert.False(t, f.MatchesPoint(PointFromLatLng(LatLngFromDegrees(1, 1))))
}

func TestPointFilterRejectsContains(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	_, err := NewPointFilter(QueryTypeContains, center)
	assert.Error(t, err)
}

func TestLoopFilterContains(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	region := RegularLoop(center, s1.Angle(20)*s1.Degree, 16)
	f := NewLoopFilter(QueryTypeContains, region)

	inner := RegularLoop(center, s1.Angle(5)*s1.Degree, 12)
	outer := RegularLoop(center, s1.Angle(40)*s1.Degree, 12)

	assert.True(t, f.MatchesLoop(inner))
	assert.False(t, f.MatchesLoop(outer))
}

func TestLoopFilterIntersects(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	region := RegularLoop(center, s1.Angle(10)*s1.Degree, 16)
	f := NewLoopFilter(QueryTypeIntersects, region)

	overlapping := RegularLoop(PointFromLatLng(LatLngFromDegrees(15, 0)), s1.Angle(10)*s1.Degree, 16)
	distant := RegularLoop(PointFromLatLng(LatLngFromDegrees(60, 0)), s1.Angle(5)*s1.Degree, 16)

	assert.True(t, f.MatchesLoop(overlapping))
	assert.False(t, f.MatchesLoop(distant))
}

func TestLoopFilterWithinUsingPointRegion(t *testing.T) {
	p := PointFromLatLng(LatLngFromDegrees(0, 0))
	f, err := NewPointFilter(QueryTypeWithin, p)
	require.NoError(t, err)

	enclosing := RegularLoop(p, s1.Angle(10)*s1.Degree, 16)
	assert.True(t, f.MatchesLoop(enclosing))
}
