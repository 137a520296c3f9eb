package s2

// loopRelation abstracts the different loop-pair queries (Contains,
// Intersects, CompareBoundary) that all reduce to the same boundary walk:
// do any edges cross, and if not, what do the shared vertices (if any)
// imply. wedgesCross is called once for every vertex the two boundaries
// share, with a0/ab1/a2 the three vertices of loop A's wedge at the
// shared vertex ab1 and b0/b2 the outer vertices of loop B's wedge there.
// It returns true once the relation has a definite answer and the walk
// should stop early.
type loopRelation interface {
	wedgesCross(a0, ab1, a2, b0, b2 Point) bool
}

// hasCrossingRelation reports whether any edge of a crosses any edge of
// b, invoking relation.wedgesCross at every vertex the two boundaries
// share. It co-walks each loop's edgeIndex in CellID order, the
// rangeIterator access pattern, seeking each side past whatever range of
// the other it cannot overlap before falling back to a direct comparison
// of the edges filed within an overlapping range.
func hasCrossingRelation(a, b *Loop, relation loopRelation) bool {
	a.buildIndex()
	b.buildIndex()
	ai := newRangeIterator(a.index)
	bi := newRangeIterator(b.index)
	for !ai.Done() && !bi.Done() {
		switch {
		case ai.RangeMax() < bi.RangeMin():
			ai.SeekTo(bi)
		case bi.RangeMax() < ai.RangeMin():
			bi.SeekTo(ai)
		default:
			if edgesCrossOrWedge(a, ai.EdgeIndices(), b, bi.EdgeIndices(), relation) {
				return true
			}
			if ai.RangeMax() <= bi.RangeMax() {
				ai.Next()
			} else {
				bi.Next()
			}
		}
	}
	return false
}

// edgesCrossOrWedge tests every edge named in aEdges against every edge
// named in bEdges, reporting true on the first actual crossing. When two
// edges share their trailing vertex (the case CrossingSign reports as
// MaybeCross once both edges' chain positions are accounted for), the two
// loops' wedges at that shared vertex are handed to relation instead,
// exactly as upstream's LoopCrosser.EdgeCrossesCell does.
func edgesCrossOrWedge(a *Loop, aEdges []int, b *Loop, bEdges []int, relation loopRelation) bool {
	for _, i := range aEdges {
		a0, a1 := a.Edge(i)
		for _, j := range bEdges {
			b0, b1 := b.Edge(j)
			switch CrossingSign(a0, a1, b0, b1) {
			case Cross:
				return true
			case MaybeCross:
				// Only check the wedge once per shared vertex, which happens
				// when the trailing vertex of each edge coincides.
				if a1 == b1 {
					a2 := a.Vertex(i + 2)
					b2 := b.Vertex(j + 2)
					if relation.wedgesCross(a0, a1, a2, b0, b2) {
						return true
					}
				}
			}
		}
	}
	return false
}

// containsRelation answers Contains: A contains B's boundary if every
// wedge of A at a vertex shared with B contains B's wedge there. Finding
// any wedge that does not settles the question immediately; otherwise
// foundSharedVertex records that at least one shared vertex was seen, in
// which case A locally contains B at every one of them and therefore
// globally contains B's boundary.
type containsRelation struct {
	foundSharedVertex bool
}

func (c *containsRelation) wedgesCross(a0, ab1, a2, b0, b2 Point) bool {
	c.foundSharedVertex = true
	return !WedgeContains(a0, ab1, a2, b0, b2)
}

// intersectsRelation answers Intersects: A and B's boundaries intersect
// at a shared vertex whenever their wedges there overlap.
type intersectsRelation struct {
	foundSharedVertex bool
}

func (r *intersectsRelation) wedgesCross(a0, ab1, a2, b0, b2 Point) bool {
	r.foundSharedVertex = true
	return WedgeIntersects(a0, ab1, a2, b0, b2)
}

// compareBoundaryRelation answers CompareBoundary. reverseB matches
// upstream's handling of a polygon hole: when true, "CCW" is interpreted
// as though B's direction were reversed.
type compareBoundaryRelation struct {
	reverseB          bool
	foundSharedVertex bool
	containsEdge      bool
	excludesEdge      bool
}

func (r *compareBoundaryRelation) wedgesCross(a0, ab1, a2, b0, b2 Point) bool {
	r.foundSharedVertex = true
	if wedgeContainsSemiwedge(a0, ab1, a2, b2, r.reverseB) {
		r.containsEdge = true
	} else {
		r.excludesEdge = true
	}
	return r.containsEdge && r.excludesEdge
}

// wedgeContainsSemiwedge reports whether the wedge (a0, ab1, a2) contains
// the "semiwedge" defined as any non-empty open set of rays immediately
// counterclockwise from the edge (ab1, b2). If reverseB is true,
// "clockwise" is substituted for "counterclockwise", simulating loop B
// having its direction reversed.
func wedgeContainsSemiwedge(a0, ab1, a2, b2 Point, reverseB bool) bool {
	if b2 == a0 || b2 == a2 {
		return (b2 == a0) == reverseB
	}
	return OrderedCCW(a0, a2, b2, ab1)
}

// Contains reports whether this loop contains other, i.e. every point of
// other is also a point of this loop.
func (l *Loop) Contains(other *Loop) bool {
	if l.isEmptyOrFull() || other.isEmptyOrFull() {
		return l.containsDegenerate(other)
	}
	if !l.subregionRectBound().Contains(other.RectBound()) {
		return false
	}

	relation := &containsRelation{}
	if hasCrossingRelation(l, other, relation) {
		return false
	}
	if relation.foundSharedVertex {
		return true
	}
	if !l.ContainsPoint(other.vertices[0]) {
		return false
	}

	// No edges crossed and no vertices were shared, so other lies either
	// entirely inside or entirely outside l. That leaves one more case
	// upstream guards against: if the union of the two bounds covers the
	// whole sphere and other also contains l's first vertex, then l and
	// other are actually on opposite sides of a shared boundary rather
	// than nested, and l does not contain other after all.
	if (other.subregionRectBound().Contains(l.RectBound()) || other.RectBound().Union(l.RectBound()).IsFull()) &&
		other.ContainsPoint(l.vertices[0]) {
		return false
	}
	return true
}

// Intersects reports whether this loop and other have any point in
// common.
func (l *Loop) Intersects(other *Loop) bool {
	if l.isEmptyOrFull() || other.isEmptyOrFull() {
		return l.intersectsDegenerate(other)
	}
	if !l.bound.Intersects(other.bound) {
		return false
	}

	relation := &intersectsRelation{}
	if hasCrossingRelation(l, other, relation) {
		return true
	}
	if relation.foundSharedVertex {
		return false
	}
	return l.ContainsPoint(other.vertices[0]) || other.ContainsPoint(l.vertices[0])
}

// CompareBoundary reports +1 if this loop strictly contains other, -1 if
// this loop is disjoint from other (including their boundaries), and 0 if
// the two boundaries cross, meaning neither strict relationship holds.
// This matches the three-way distinction a caller assembling a polygon
// from nested loops needs: whether to nest other inside this loop, treat
// them as siblings, or reject the input as invalid.
func (l *Loop) CompareBoundary(other *Loop) int {
	if l.isEmptyOrFull() || other.isEmptyOrFull() {
		if l.containsDegenerate(other) {
			return 1
		}
		if l.intersectsDegenerate(other) {
			return 0
		}
		return -1
	}
	if !l.bound.Intersects(other.bound) {
		return -1
	}

	relation := &compareBoundaryRelation{reverseB: false}
	if hasCrossingRelation(l, other, relation) {
		return 0
	}
	if relation.foundSharedVertex {
		if relation.containsEdge {
			return 1
		}
		return -1
	}
	if l.ContainsPoint(other.vertices[0]) {
		return 1
	}
	return -1
}

func (l *Loop) containsDegenerate(other *Loop) bool {
	if l.IsFull() {
		return true
	}
	if l.IsEmpty() {
		return other.IsEmpty()
	}
	if other.IsFull() {
		return false
	}
	// other is the empty loop; any non-degenerate loop trivially contains
	// the empty set of points.
	return true
}

func (l *Loop) intersectsDegenerate(other *Loop) bool {
	if l.IsEmpty() || other.IsEmpty() {
		return false
	}
	if l.IsFull() || other.IsFull() {
		return true
	}
	return false
}

// ContainsNonCrossingBoundary reports whether this loop contains other's
// boundary, under the precondition (not re-checked here) that the two
// boundaries are already known not to cross. reverseB matches
// CompareBoundary's handling of a polygon hole: when true, other's
// direction is treated as reversed for the purposes of the edge-order
// check below.
func (l *Loop) ContainsNonCrossingBoundary(other *Loop, reverseB bool) bool {
	if !l.bound.Intersects(other.bound) {
		return false
	}
	if l.IsFull() {
		return true
	}
	if other.IsFull() {
		return false
	}

	m, ok := l.FindVertex(other.vertices[0])
	if !ok {
		// other's first vertex isn't shared with l, so containment reduces
		// to a single point test.
		return l.ContainsPoint(other.vertices[0])
	}
	// Otherwise check whether the edge (other.vertices[0], other.vertices[1])
	// is contained by l's wedge at the shared vertex.
	n := l.NumVertices()
	return wedgeContainsSemiwedge(l.Vertex(m-1+n), l.Vertex(m), l.Vertex(m+1), other.Vertex(1), reverseB)
}

// ContainsNested reports whether this loop contains other, under the
// precondition (not re-checked here) that other's boundary is already
// known not to cross this loop's boundary, e.g. because both loops came
// from the same polygon and were built to nest cleanly. This skips the
// boundary-crossing scan that the general Contains must do, using the
// same FindVertex + WedgeContains fast path as upstream: since the
// boundaries don't cross, other's second vertex settles containment
// either directly (if unshared) or via the wedge at the shared vertex.
func (l *Loop) ContainsNested(other *Loop) bool {
	if !l.subregionRectBound().Contains(other.RectBound()) {
		return false
	}
	if l.isEmptyOrFull() || other.NumVertices() < 2 {
		return l.IsFull() || other.IsEmpty()
	}

	m, ok := l.FindVertex(other.Vertex(1))
	if !ok {
		return l.ContainsPoint(other.Vertex(1))
	}
	n := l.NumVertices()
	return WedgeContains(l.Vertex(m-1+n), l.Vertex(m), l.Vertex(m+1), other.Vertex(0), other.Vertex(2))
}
