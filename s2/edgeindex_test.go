package s2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/s2loop/s1"
)

func TestEdgeIndexCandidateEdgesForQuery(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(20)*s1.Degree, 64)
	idx := newEdgeIndex(l)

	near := PointFromLatLng(LatLngFromDegrees(19, 0))
	far := PointFromLatLng(LatLngFromDegrees(19.1, 0))
	candidates := idx.candidateEdgesForQuery(near, far)
	require.NotEmpty(t, candidates)
	for _, i := range candidates {
		assert.True(t, i >= 0 && i < l.NumVertices())
	}
}

func TestEdgeIndexCandidateEdgesForQueryIsSafeSupersetAcrossWholeLoop(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(10)*s1.Degree, 40)
	idx := newEdgeIndex(l)

	// A query segment whose bound spans the whole loop must report every
	// edge as a candidate, since every edge's bound then necessarily
	// overlaps the segment's bound: no bucket-proximity-based filter keyed
	// only on the two endpoints could guarantee this for a crossing that
	// falls geometrically between them, but a filter keyed on the edges'
	// own bounds always can.
	a := PointFromLatLng(LatLngFromDegrees(-20, -20))
	b := PointFromLatLng(LatLngFromDegrees(20, 20))
	candidates := idx.candidateEdgesForQuery(a, b)
	assert.Equal(t, l.NumVertices(), len(candidates))
}

func TestEdgeIndexCandidateEdgesForQueryExcludesDisjointSegment(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(10)*s1.Degree, 40)
	idx := newEdgeIndex(l)

	a := PointFromLatLng(LatLngFromDegrees(80, 0))
	b := PointFromLatLng(LatLngFromDegrees(85, 0))
	candidates := idx.candidateEdgesForQuery(a, b)
	assert.Empty(t, candidates)
}

func TestEdgeIndexIteratorWalksAllBuckets(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(20)*s1.Degree, 64)
	idx := newEdgeIndex(l)

	it := idx.NewIterator()
	seen := 0
	totalEdges := 0
	for it.Next(); !it.Done(); it.Next() {
		seen++
		totalEdges += len(it.EdgeIndices())
		assert.NotEqual(t, SentinelCellID(), it.ID())
	}
	assert.Equal(t, len(idx.order), seen)
	assert.Equal(t, l.NumVertices(), totalEdges)
}

func TestEdgeIndexIteratorLocate(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(20)*s1.Degree, 64)
	idx := newEdgeIndex(l)

	it := idx.NewIterator()
	it.Locate(l.Vertex(0))
	assert.False(t, it.Done())
}
