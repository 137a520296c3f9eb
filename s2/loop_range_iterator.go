package s2

import "sort"

// rangeIteratorLevel is the ancestor level at which a rangeIterator groups
// an edgeIndex's buckets: coarse enough to keep the number of distinct
// groups two loops' co-walk has to seek through small, while still fine
// enough to prune most of a large loop's edges from any one group.
const rangeIteratorLevel = indexCellLevel - 4

type rangeGroup struct {
	id    CellID // ancestor cell at rangeIteratorLevel
	edges []int
}

// rangeIterator walks an edgeIndex grouped into coarse CellID ranges, the
// access pattern used to co-iterate two loops' indexes during a relation
// query: hasCrossingRelation seeks each side forward past whatever range
// of the other side it cannot overlap, the way upstream's RangeIterator
// does over an S2ShapeIndex.
type rangeIterator struct {
	groups []rangeGroup
	pos    int
}

// newRangeIterator returns a rangeIterator over idx's buckets, positioned
// at the first group.
func newRangeIterator(idx *edgeIndex) *rangeIterator {
	level := rangeIteratorLevel
	if level < 0 {
		level = 0
	}
	byAncestor := make(map[CellID][]int)
	var order []CellID
	for _, id := range idx.order {
		anc := id.Parent(level)
		if _, ok := byAncestor[anc]; !ok {
			order = append(order, anc)
		}
		byAncestor[anc] = append(byAncestor[anc], idx.buckets[id]...)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	r := &rangeIterator{groups: make([]rangeGroup, len(order))}
	for i, id := range order {
		r.groups[i] = rangeGroup{id: id, edges: byAncestor[id]}
	}
	return r
}

// Done reports whether the iterator has advanced past the last group.
func (r *rangeIterator) Done() bool { return r.pos >= len(r.groups) }

// ID returns the current group's ancestor CellID.
func (r *rangeIterator) ID() CellID {
	if r.Done() {
		return SentinelCellID()
	}
	return r.groups[r.pos].id
}

// RangeMin returns the minimum leaf CellID covered by the current group.
// If Done reports true, this returns a value larger than any valid id.
func (r *rangeIterator) RangeMin() CellID {
	if r.Done() {
		return SentinelCellID()
	}
	return r.groups[r.pos].id.RangeMin()
}

// RangeMax returns the maximum leaf CellID covered by the current group.
func (r *rangeIterator) RangeMax() CellID {
	if r.Done() {
		return SentinelCellID()
	}
	return r.groups[r.pos].id.RangeMax()
}

// EdgeIndices returns the edge indices filed under the current group.
func (r *rangeIterator) EdgeIndices() []int {
	if r.Done() {
		return nil
	}
	return r.groups[r.pos].edges
}

// Next advances the iterator to the next group.
func (r *rangeIterator) Next() { r.pos++ }

// SeekTo positions the iterator at the first group that overlaps or
// follows target, i.e. such that RangeMax() >= target.RangeMin().
func (r *rangeIterator) SeekTo(target *rangeIterator) {
	lo := target.RangeMin()
	r.pos = sort.Search(len(r.groups), func(i int) bool {
		return r.groups[i].id.RangeMax() >= lo
	})
}

// SeekBeyond positions the iterator at the first group such that
// RangeMin() > target.RangeMax().
func (r *rangeIterator) SeekBeyond(target *rangeIterator) {
	hi := target.RangeMax()
	r.pos = sort.Search(len(r.groups), func(i int) bool {
		return r.groups[i].id.RangeMin() > hi
	})
}
