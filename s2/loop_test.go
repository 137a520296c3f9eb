package s2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypermodeinc/s2loop/r3"
	"github.com/hypermodeinc/s2loop/s1"
)

func northPoleLoop(t *testing.T) *Loop {
	t.Helper()
	center := PointFromLatLng(LatLngFromDegrees(90, 0))
	return RegularLoop(center, s1.Angle(10)*s1.Degree, 8)
}

func TestLoopEmptyFull(t *testing.T) {
	empty := EmptyLoop()
	full := FullLoop()

	assert.True(t, empty.IsEmpty())
	assert.False(t, empty.IsFull())
	assert.True(t, full.IsFull())
	assert.False(t, full.IsEmpty())

	assert.False(t, empty.ContainsPoint(OriginPoint()))
	assert.True(t, full.ContainsPoint(OriginPoint()))
}

func TestLoopContainsPointBruteForce(t *testing.T) {
	l := northPoleLoop(t)
	require.Equal(t, 8, l.NumVertices())

	north := PointFromLatLng(LatLngFromDegrees(90, 0))
	south := PointFromLatLng(LatLngFromDegrees(-90, 0))

	assert.True(t, l.ContainsPoint(north))
	assert.False(t, l.ContainsPoint(south))
}

func TestLoopContainsPointIndexed(t *testing.T) {
	// A loop with enough vertices to clear bruteForceVertexThreshold, and
	// enough repeated queries to cross unindexedQueryThreshold, must answer
	// identically before and after its index is built.
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(20)*s1.Degree, 64)
	inside := PointFromLatLng(LatLngFromDegrees(0, 0))
	outside := PointFromLatLng(LatLngFromDegrees(80, 0))

	for i := 0; i < unindexedQueryThreshold+5; i++ {
		assert.True(t, l.ContainsPoint(inside))
		assert.False(t, l.ContainsPoint(outside))
	}
}

func TestLoopContainsPointIndexedAcrossLongSegment(t *testing.T) {
	// OriginPoint() sits near the north pole. Placing the loop on the
	// equator and the outside query point near the south pole puts the
	// crossing edges nowhere near either endpoint's own neighborhood,
	// unlike a loop and query point both close to the pole: this is the
	// shape of query that a bucket-proximity candidate filter keyed on
	// the endpoints alone could miss, but a filter keyed on the edges'
	// own bounds cannot.
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	l := RegularLoop(center, s1.Angle(20)*s1.Degree, 64)
	inside := PointFromLatLng(LatLngFromDegrees(0, 0))
	outside := PointFromLatLng(LatLngFromDegrees(-80, 0))

	for i := 0; i < unindexedQueryThreshold+5; i++ {
		assert.True(t, l.ContainsPoint(inside))
		assert.False(t, l.ContainsPoint(outside))
	}
}

func TestLoopVertexAndEdgeWrap(t *testing.T) {
	l := northPoleLoop(t)
	n := l.NumVertices()
	assert.Equal(t, l.Vertex(0), l.Vertex(n))
	a, b := l.Edge(n - 1)
	assert.Equal(t, l.Vertex(n-1), a)
	assert.Equal(t, l.Vertex(0), b)
}

func TestLoopCloneIndependent(t *testing.T) {
	l := northPoleLoop(t)
	clone := l.Clone()
	clone.SetDepth(3)
	assert.Equal(t, 0, l.Depth())
	assert.Equal(t, 3, clone.Depth())
	assert.True(t, l.Equals(clone))
}

func TestLoopAreaAndTurningAngleDuality(t *testing.T) {
	l := northPoleLoop(t)
	area := l.Area()
	turning := l.TurningAngle()
	// Gauss-Bonnet: turning angle + area == 2*pi for a CCW-oriented loop.
	assert.InDelta(t, 2*math.Pi, turning+area, 1e-6)
	assert.True(t, l.IsNormalized())
}

func TestLoopInvertSwapsInteriorAndExterior(t *testing.T) {
	l := northPoleLoop(t)
	north := PointFromLatLng(LatLngFromDegrees(90, 0))
	require.True(t, l.ContainsPoint(north))

	l.Invert()
	assert.False(t, l.ContainsPoint(north))
}

func TestLoopEmptyFullInvert(t *testing.T) {
	empty := EmptyLoop()
	empty.Invert()
	assert.True(t, empty.IsFull())

	full := FullLoop()
	full.Invert()
	assert.True(t, full.IsEmpty())
}

func TestLoopContainsSelf(t *testing.T) {
	l := northPoleLoop(t)
	assert.True(t, l.Contains(l))
	assert.True(t, l.Intersects(l))
	assert.Equal(t, 1, l.CompareBoundary(l))
}

func TestLoopContainsSmallerLoop(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	big := RegularLoop(center, s1.Angle(30)*s1.Degree, 16)
	small := RegularLoop(center, s1.Angle(5)*s1.Degree, 16)

	assert.True(t, big.Contains(small))
	assert.False(t, small.Contains(big))
	assert.True(t, big.Intersects(small))
	assert.Equal(t, 1, big.CompareBoundary(small))
	assert.Equal(t, -1, small.CompareBoundary(big))
}

func TestLoopDisjointLoops(t *testing.T) {
	a := RegularLoop(PointFromLatLng(LatLngFromDegrees(0, 0)), s1.Angle(5)*s1.Degree, 12)
	b := RegularLoop(PointFromLatLng(LatLngFromDegrees(40, 0)), s1.Angle(5)*s1.Degree, 12)

	assert.False(t, a.Contains(b))
	assert.False(t, a.Intersects(b))
	assert.Equal(t, -1, a.CompareBoundary(b))
}

// sharedVertexLoops returns a square loop a and a triangle loop b that
// shares a's vertex at index 1 and is otherwise nested entirely inside
// a, by building b's other two vertices as points partway from the
// shared vertex toward a's own neighboring vertices. This guarantees b's
// wedge at the shared vertex is a strict subset of a's wedge there,
// independent of the exact coordinates chosen for a.
func sharedVertexLoops(t *testing.T) (a, b *Loop) {
	t.Helper()
	a = LoopFromPoints([]Point{
		PointFromLatLng(LatLngFromDegrees(-10, -10)),
		PointFromLatLng(LatLngFromDegrees(-10, 10)),
		PointFromLatLng(LatLngFromDegrees(10, 10)),
		PointFromLatLng(LatLngFromDegrees(10, -10)),
	})
	require.NoError(t, a.Validate())

	shared := a.Vertex(1)
	toward := func(from, to Point, frac float64) Point {
		return Point{from.Vector.Add(to.Vector.Sub(from.Vector).Mul(frac)).Normalize()}
	}
	b0 := toward(shared, a.Vertex(0), 0.3)
	b2 := toward(shared, a.Vertex(2), 0.3)
	b = LoopFromPoints([]Point{b0, shared, b2})
	require.NoError(t, b.Validate())
	return a, b
}

func TestLoopContainsNestedUsesSharedVertexWedge(t *testing.T) {
	a, b := sharedVertexLoops(t)
	assert.True(t, a.ContainsNested(b))
}

func TestLoopContainsNonCrossingBoundaryUsesSharedVertexWedge(t *testing.T) {
	a, b := sharedVertexLoops(t)
	assert.True(t, a.ContainsNonCrossingBoundary(b, false))
}

func TestLoopContainsNestedFallsBackToPointTestWithoutSharedVertex(t *testing.T) {
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	big := RegularLoop(center, s1.Angle(30)*s1.Degree, 16)
	small := RegularLoop(center, s1.Angle(5)*s1.Degree, 16)
	assert.True(t, big.ContainsNested(small))
}

func TestLoopContainsRejectsComplementaryLoop(t *testing.T) {
	// b is the complement of a small disc concentric with a, so its
	// interior is nearly the whole sphere; a, a small cap, must not be
	// reported as containing it even though a's boundary never crosses
	// b's and a does contain b's first vertex.
	center := PointFromLatLng(LatLngFromDegrees(0, 0))
	a := RegularLoop(center, s1.Angle(20)*s1.Degree, 16)
	b := RegularLoop(center, s1.Angle(10)*s1.Degree, 16)
	b.Invert()

	assert.False(t, a.Contains(b))
}

func TestLoopBoundaryEquals(t *testing.T) {
	l := northPoleLoop(t)
	rotated := l.Clone()
	n := rotated.NumVertices()
	shifted := make([]Point, n)
	for i := 0; i < n; i++ {
		shifted[i] = rotated.Vertex(i + 2)
	}
	other := LoopFromPoints(shifted)

	assert.False(t, l.Equals(other))
	assert.True(t, l.BoundaryEquals(other))
	assert.True(t, l.BoundaryApproxEquals(other, 1e-9))
	assert.True(t, l.BoundaryNear(other, 1e-9))
}

func TestLoopDistanceAndProject(t *testing.T) {
	l := northPoleLoop(t)
	north := PointFromLatLng(LatLngFromDegrees(90, 0))
	south := PointFromLatLng(LatLngFromDegrees(-90, 0))

	assert.Equal(t, 0.0, l.Distance(north))
	assert.Greater(t, l.Distance(south), 0.0)

	projected := l.Project(south)
	assert.NotEqual(t, south, projected)
	assert.InDelta(t, l.DistanceToBoundary(south), south.Distance(projected).Radians(), 1e-9)
}

func TestLoopFindVertex(t *testing.T) {
	l := northPoleLoop(t)
	idx, ok := l.FindVertex(l.Vertex(3))
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = l.FindVertex(PointFromLatLng(LatLngFromDegrees(0, 0)))
	assert.False(t, ok)
}

func TestLoopValidateRejectsTooFewVertices(t *testing.T) {
	l := LoopFromPoints([]Point{
		PointFromLatLng(LatLngFromDegrees(0, 0)),
		PointFromLatLng(LatLngFromDegrees(0, 1)),
	})
	err := l.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrNotEnoughVertices, verr.Kind)
}

func TestLoopValidateRejectsDuplicateVertices(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, 0))
	b := PointFromLatLng(LatLngFromDegrees(0, 1))
	c := PointFromLatLng(LatLngFromDegrees(1, 1))
	l := LoopFromPoints([]Point{a, b, c, a, b})
	err := l.Validate()
	require.Error(t, err)
}

func TestLoopValidateAcceptsWellFormedLoop(t *testing.T) {
	l := northPoleLoop(t)
	assert.NoError(t, l.Validate())
}

func TestLoopValidateRejectsDegenerateEdgeAsDuplicateVertices(t *testing.T) {
	a := PointFromLatLng(LatLngFromDegrees(0, 0))
	b := PointFromLatLng(LatLngFromDegrees(0, 1))
	l := LoopFromPoints([]Point{a, a, b})
	err := l.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrDuplicateVertices, verr.Kind)
}

func TestLoopValidateChecksUnitLengthBeforeSentinelShortcut(t *testing.T) {
	l := &Loop{vertices: []Point{{r3.Vector{X: 2, Y: 0, Z: 0}}}}
	err := l.findVertexErrors()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ErrNotUnitLength, verr.Kind)
}
