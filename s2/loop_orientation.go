package s2

import (
	"math"

	"github.com/hypermodeinc/s2loop/r3"
	"github.com/hypermodeinc/s2loop/s1"
)

// initOriginAndBound computes whether OriginPoint() lies inside the loop
// and builds the loop's bounding rectangle, both of which are needed
// before any containment query can be answered. It is called once from
// init and again whenever the vertex sequence changes in place.
func (l *Loop) initOriginAndBound() {
	if len(l.vertices) < 3 {
		// Degenerate loop: the single sentinel vertex decides everything.
		// By convention the full loop's sentinel is placed so that
		// OriginPoint() is considered inside it, and the empty loop's
		// sentinel so that it is not.
		l.originInside = len(l.vertices) == 1 && l.vertices[0] == fullLoopPoint
		l.initBound()
		return
	}

	// Determine whether vertex(1) lies on the interior side of the wedge
	// formed by its two incident edges: this is a purely local test, fixed
	// by the fact that the loop's interior is on the left as its boundary
	// is traversed. Then walk the edge from vertex(1) to OriginPoint(),
	// flipping the parity every time it crosses a boundary edge, to arrive
	// at whether OriginPoint() itself is inside.
	v0, v1, v2 := l.vertices[0], l.vertices[1], l.vertices[2]
	inside := OrderedCCW(Point{v1.Ortho()}, v0, v2, v1)

	crosser := NewChainEdgeCrosser(v1, OriginPoint(), v0)
	n := len(l.vertices)
	for i := 1; i <= n; i++ {
		if crosser.EdgeOrVertexChainCrossing(l.vertices[i%n]) {
			inside = !inside
		}
	}
	l.originInside = inside

	l.initBound()
}

// initBound builds the loop's exact Rect bound (via RectBounder, which
// accounts for geodesic bulge between vertices) and its derived
// subregion bound, a slightly expanded rect safe to use when testing
// whether this loop's bound is contained within another bound.
func (l *Loop) initBound() {
	l.bound = boundFromVertices(l.vertices, l.originInside)
	l.subregionBound = expandForSubregions(l.bound)
}

// boundFromVertices computes the Rect bound a loop with the given vertices
// and origin_inside status would have, the re-derivation a compressed
// decode falls back to when the encoder decided the bound wasn't worth the
// bytes (see loop_codec.go).
func boundFromVertices(vertices []Point, originInside bool) Rect {
	if len(vertices) < 3 {
		if len(vertices) == 1 && vertices[0] == fullLoopPoint {
			return FullRect()
		}
		return EmptyRect()
	}

	rb := NewRectBounder()
	n := len(vertices)
	for i := 0; i <= n; i++ {
		idx := i
		if idx >= n {
			idx -= n
		}
		rb.AddPoint(vertices[idx])
	}
	bound := rb.RectBound()
	// The bound computed from the boundary alone misses a pole that lies
	// inside the loop, so extend it to each pole the loop contains.
	probe := &Loop{vertices: vertices, originInside: originInside}
	if probe.bruteForceContainsPoint(Point{r3.Vector{X: 0, Y: 0, Z: 1}}) {
		bound.Lat.Hi = math.Pi / 2
		bound.Lng = s1.FullInterval()
	}
	if bound.Lng.IsFull() && probe.bruteForceContainsPoint(Point{r3.Vector{X: 0, Y: 0, Z: -1}}) {
		bound.Lat.Lo = -math.Pi / 2
	}
	return bound
}

// pointLess reports whether a sorts before b in the lexicographic order
// (X, then Y, then Z) canonicalFirstVertex uses to pick a rotation- and
// reversal-stable starting vertex.
func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// canonicalFirstVertex returns (first, dir) such that walking
// l.Vertex(first), l.Vertex(first+dir), l.Vertex(first+2*dir), ...
// visits every vertex exactly once in an order that depends only on the
// loop's vertex set, not on which vertex happens to be stored first or
// which way the loop winds: first is the lexicographically smallest
// vertex, and dir points toward whichever of its two neighbors is
// smaller. A rotated copy of the same loop therefore picks the same
// starting vertex, and a reversed copy picks the opposite direction, so
// any running sum seeded this way is invariant under rotation and
// negated under reversal.
func (l *Loop) canonicalFirstVertex() (first, dir int) {
	n := len(l.vertices)
	first = 0
	for i := 1; i < n; i++ {
		if pointLess(l.vertices[i], l.vertices[first]) {
			first = i
		}
	}
	if pointLess(l.Vertex(first+1), l.Vertex(first+n-1)) {
		return first, 1
	}
	return first + n, -1
}

// expandForSubregions expands a bound so that it can be safely used to
// test whether some other region's bound is entirely contained within it,
// which requires a slightly more generous margin than testing simple
// intersection.
func expandForSubregions(b Rect) Rect {
	if b.IsFull() {
		return b
	}
	const maxErrorDeg = 1e-8
	return b.Expanded(LatLngFromDegrees(maxErrorDeg, maxErrorDeg))
}
