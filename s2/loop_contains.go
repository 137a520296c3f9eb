package s2

import "sync/atomic"

// ContainsPoint reports whether the loop contains p, including its
// boundary. Small loops, and the queries before the
// unindexedQueryThreshold-th against a lazily-indexed large loop, are
// answered by a brute-force edge-crossing-parity walk; the query that
// reaches the threshold builds the spatial index, and it and every later
// query are answered from it.
func (l *Loop) ContainsPoint(p Point) bool {
	if l.isEmptyOrFull() {
		return l.IsFull()
	}
	if !l.bound.ContainsPoint(p) {
		return false
	}

	if len(l.vertices) <= bruteForceVertexThreshold {
		return l.bruteForceContainsPoint(p)
	}

	if !l.options.LazyIndexing {
		l.buildIndex()
		return l.indexedContainsPoint(p)
	}

	n := atomic.AddInt32(&l.numUnindexedCalls, 1)
	if n < unindexedQueryThreshold {
		return l.bruteForceContainsPoint(p)
	}
	if n == unindexedQueryThreshold {
		l.buildIndex()
	}
	return l.indexedContainsPoint(p)
}

// bruteForceContainsPoint answers containment by counting how many
// boundary edges the segment from OriginPoint() to p crosses, starting
// from the known containment status of OriginPoint() and flipping parity
// on every crossing.
func (l *Loop) bruteForceContainsPoint(p Point) bool {
	origin := OriginPoint()
	inside := l.originInside
	crosser := NewChainEdgeCrosser(origin, p, l.vertices[len(l.vertices)-1])
	n := len(l.vertices)
	for i := 0; i < n; i++ {
		if crosser.EdgeOrVertexChainCrossing(l.vertices[i]) {
			inside = !inside
		}
	}
	return inside
}

// indexedContainsPoint answers containment the same way as the brute
// force path, but restricts the crossing walk to the edges whose
// precomputed bound could possibly cross the segment from OriginPoint()
// to p, a cheap filter that is the whole point of maintaining the index
// for loops with many vertices and sustained query volume.
func (l *Loop) indexedContainsPoint(p Point) bool {
	l.buildIndex()
	origin := OriginPoint()
	inside := l.originInside
	candidates := l.index.candidateEdgesForQuery(origin, p)
	for _, i := range candidates {
		a, b := l.Edge(i)
		if EdgeOrVertexCrossing(origin, p, a, b) {
			inside = !inside
		}
	}
	return inside
}

// buildIndex materializes the loop's spatial index exactly once, no
// matter how many goroutines race to call it concurrently.
func (l *Loop) buildIndex() {
	l.indexOnce.Do(func() {
		l.index = newEdgeIndex(l)
	})
}

// ContainsCell reports whether the loop entirely contains the given cell.
func (l *Loop) ContainsCell(c Cell) bool {
	if !l.bound.Contains(c.RectBound()) {
		return false
	}
	if l.isEmptyOrFull() {
		return l.IsFull()
	}
	for i := 0; i < 4; i++ {
		if !l.ContainsPoint(c.Vertex(i)) {
			return false
		}
	}
	// All four corners are inside; the loop can still fail to contain the
	// whole cell if its boundary lies wholly inside the cell, or if a loop
	// edge dips into the cell's interior between two corners that both
	// test as contained. Since loop edges are geodesics and the cell's
	// sides are also geodesics (in this package's simplified, non-Hilbert
	// cell layout), the latter can only happen if some loop edge actually
	// crosses one of the cell's four sides.
	if c.ContainsPoint(l.Vertex(0)) {
		return false
	}
	return !l.boundaryApproxIntersectsCell(c)
}

// MayIntersect reports whether the loop's boundary, interior, or both
// might intersect the given cell. It is deliberately conservative (it may
// return true when the loop and cell are in fact disjoint) so that it is
// safe to use as a quick-rejection test before a more exact check.
func (l *Loop) MayIntersect(c Cell) bool {
	if !l.bound.Intersects(c.RectBound()) {
		return false
	}
	if l.isEmptyOrFull() {
		return l.IsFull()
	}
	if l.ContainsPoint(c.Vertex(0)) {
		return true
	}
	if c.ContainsPoint(l.Vertex(0)) {
		return true
	}
	return l.boundaryApproxIntersectsCell(c)
}

// boundaryApproxIntersectsCell reports whether any edge of the loop
// crosses any edge of the cell.
func (l *Loop) boundaryApproxIntersectsCell(c Cell) bool {
	n := len(l.vertices)
	if l.isEmptyOrFull() {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := l.Edge(i)
		for k := 0; k < 4; k++ {
			if CrossingSign(a, b, c.Vertex(k), c.Vertex((k+1)%4)) == Cross {
				return true
			}
		}
	}
	return false
}
