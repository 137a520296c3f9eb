package s2

import "sort"

// indexCellLevel is the CellID level used to bucket edges for the spatial
// index. It is coarse enough that most loops produce a modest number of
// buckets, and fine enough to prune the vast majority of edges from a
// containment or relation query on a large loop.
const indexCellLevel = 12

// clippedEdge is one edge of the indexed shape together with the cell id
// bucket it was filed under.
type clippedEdge struct {
	edge   int
	cellID CellID
	bound  Rect
}

// edgeIndex is a coarse spatial index over a Loop's edges: each edge is
// filed under the CellID of its bounding rectangle's center at
// indexCellLevel, which the bucket-ordered Iterator and the relation
// framework's rangeIterator walk instead of testing every edge. Point
// queries (candidateEdgesForQuery) instead filter on each edge's own
// precomputed bound, a correctness guarantee the bucket keys alone can't
// give a segment of arbitrary length. It plays the same quick-rejection
// role as the upstream ShapeIndex, traded down in sophistication (no
// adaptive cell subdivision, no per-cell clipped-edge tracking) for a much
// smaller implementation.
type edgeIndex struct {
	loop    *Loop
	edges   []clippedEdge
	buckets map[CellID][]int // cellID -> indices into edges
	order   []CellID         // buckets' keys, sorted for range queries
}

func newEdgeIndex(l *Loop) *edgeIndex {
	idx := &edgeIndex{loop: l, buckets: make(map[CellID][]int)}
	n := l.NumVertices()
	for i := 0; i < n; i++ {
		a, b := l.Edge(i)
		rb := NewRectBounder()
		rb.AddPoint(a)
		rb.AddPoint(b)
		bound := rb.RectBound()
		cell := CellIDFromPoint(PointFromLatLng(bound.Center())).Parent(indexCellLevel)
		ce := clippedEdge{edge: i, cellID: cell, bound: bound}
		idx.edges = append(idx.edges, ce)
		idx.buckets[cell] = append(idx.buckets[cell], len(idx.edges)-1)
	}
	idx.order = make([]CellID, 0, len(idx.buckets))
	for id := range idx.buckets {
		idx.order = append(idx.order, id)
	}
	sort.Slice(idx.order, func(i, j int) bool { return idx.order[i] < idx.order[j] })
	return idx
}

// candidateEdgesForQuery returns every edge whose precomputed bound
// overlaps the bound of the segment from a to b. A geodesic edge always
// lies entirely within its own bound, so an edge whose bound does not
// touch the query segment's bound cannot possibly cross it anywhere
// along its length — this holds no matter how far apart a and b are,
// unlike a filter keyed on the two endpoints' own bucket neighborhoods,
// which can silently miss a crossing that falls between them. The bound
// check itself is a handful of interval comparisons, far cheaper than
// the exact crossing test each surviving candidate is about to get.
func (idx *edgeIndex) candidateEdgesForQuery(a, b Point) []int {
	rb := NewRectBounder()
	rb.AddPoint(a)
	rb.AddPoint(b)
	segBound := rb.RectBound()

	var out []int
	for _, ce := range idx.edges {
		if ce.bound.Intersects(segBound) {
			out = append(out, ce.edge)
		}
	}
	return out
}

// Iterator walks the edge index's buckets in CellID order, the same access
// pattern the RangeWalker uses to co-iterate two loops' indexes during a
// relation query.
type Iterator struct {
	idx *edgeIndex
	pos int
}

// NewIterator returns an Iterator positioned before the first bucket.
func (idx *edgeIndex) NewIterator() *Iterator { return &Iterator{idx: idx, pos: -1} }

// Locate positions the iterator at the bucket containing p, or the next
// bucket after it if p's own cell is empty.
func (it *Iterator) Locate(p Point) {
	target := CellIDFromPoint(p).Parent(indexCellLevel)
	it.pos = sort.Search(len(it.idx.order), func(i int) bool { return it.idx.order[i] >= target })
}

// LocateCellID positions the iterator at the first bucket whose cell is
// greater than or equal to id.
func (it *Iterator) LocateCellID(id CellID) {
	it.pos = sort.Search(len(it.idx.order), func(i int) bool { return it.idx.order[i] >= id })
}

// Done reports whether the iterator has advanced past the last bucket.
func (it *Iterator) Done() bool { return it.pos >= len(it.idx.order) }

// Next advances the iterator to the next bucket.
func (it *Iterator) Next() { it.pos++ }

// Prev moves the iterator to the previous bucket; it is a no-op at the
// start of the sequence.
func (it *Iterator) Prev() bool {
	if it.pos <= 0 {
		return false
	}
	it.pos--
	return true
}

// ID returns the CellID of the iterator's current bucket.
func (it *Iterator) ID() CellID {
	if it.Done() || it.pos < 0 {
		return SentinelCellID()
	}
	return it.idx.order[it.pos]
}

// EdgeIndices returns the edge indices filed under the iterator's current
// bucket.
func (it *Iterator) EdgeIndices() []int {
	if it.Done() || it.pos < 0 {
		return nil
	}
	return it.idx.buckets[it.idx.order[it.pos]]
}
