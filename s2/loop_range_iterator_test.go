package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/s2loop/s1"
)

func TestRangeIteratorWalksEveryEdgeExactlyOnce(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(15)*s1.Degree, 48)
	idx := newEdgeIndex(l)

	r := newRangeIterator(idx)
	seen := map[int]bool{}
	for !r.Done() {
		for _, e := range r.EdgeIndices() {
			assert.False(t, seen[e], "edge %d visited twice", e)
			seen[e] = true
		}
		assert.True(t, r.RangeMin() <= r.RangeMax())
		r.Next()
	}
	assert.Equal(t, l.NumVertices(), len(seen))
}

func TestRangeIteratorSeekToSkipsNonOverlappingRanges(t *testing.T) {
	a := RegularLoop(PointFromLatLng(LatLngFromDegrees(0, 0)), s1.Angle(5)*s1.Degree, 24)
	b := RegularLoop(PointFromLatLng(LatLngFromDegrees(30, 90)), s1.Angle(5)*s1.Degree, 24)

	ai := newRangeIterator(newEdgeIndex(a))
	bi := newRangeIterator(newEdgeIndex(b))
	require.False(t, ai.Done())
	require.False(t, bi.Done())

	// b lies on a later cube face than a, so every range of a precedes
	// b's first range; seeking a toward it should run straight past the end.
	ai.SeekTo(bi)
	assert.True(t, ai.Done())
}

func TestRangeIteratorSeekBeyondAdvancesPastTarget(t *testing.T) {
	l := RegularLoop(PointFromLatLng(LatLngFromDegrees(0, 0)), s1.Angle(10)*s1.Degree, 32)
	idx := newEdgeIndex(l)

	r := newRangeIterator(idx)
	first := newRangeIterator(idx)
	r.SeekBeyond(first)
	if !r.Done() {
		assert.True(t, r.RangeMin() > first.RangeMax())
	}
}
