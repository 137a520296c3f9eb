package s2

// Validate checks the loop's invariants and returns the first violation
// found, or nil if the loop is well-formed. Construction itself never
// validates; callers that accept loop data from an untrusted source
// (decode, GeoJSON import) should call Validate explicitly.
func (l *Loop) Validate() error {
	if err := l.findVertexErrors(); err != nil {
		return err
	}
	return l.findSelfIntersection()
}

// findVertexErrors checks per-vertex and per-edge invariants: unit length,
// a minimum vertex count, no degenerate edges, and no duplicate
// non-adjacent vertices.
func (l *Loop) findVertexErrors() error {
	// Unit length is checked over every stored vertex before anything else,
	// including the single sentinel vertex of an empty or full loop: a
	// corrupted sentinel is still a validation failure, not something the
	// isEmptyOrFull shortcut below should hide.
	for i, v := range l.vertices {
		if !v.IsUnit() {
			return &ValidationError{Kind: ErrNotUnitLength, Index: i}
		}
	}

	if l.isEmptyOrFull() {
		// A single-vertex loop is always interpreted as the empty or full
		// loop and needs no further checking.
		return nil
	}
	if len(l.vertices) < 3 {
		return &ValidationError{Kind: ErrNotEnoughVertices, Index: len(l.vertices)}
	}

	n := len(l.vertices)
	for i := 0; i < n; i++ {
		a, b := l.vertices[i], l.vertices[(i+1)%n]
		if a == b || a.Vector == b.Vector.Mul(-1) {
			return &ValidationError{Kind: ErrDuplicateVertices, Index: i, OtherIndex: (i + 1) % n}
		}
	}

	seen := make(map[Point]int, n)
	for i, v := range l.vertices {
		if j, ok := seen[v]; ok {
			return &ValidationError{Kind: ErrDuplicateVertices, Index: j, OtherIndex: i}
		}
		seen[v] = i
	}

	return nil
}

// findSelfIntersection checks that no two non-adjacent edges of the loop
// cross. It is the most expensive validation check (quadratic in the
// naive case) so it runs last, after the cheap per-vertex checks have
// already ruled out the common failure modes.
func (l *Loop) findSelfIntersection() error {
	if l.isEmptyOrFull() {
		return nil
	}
	crossing, ok := FindSelfIntersection(l.vertices)
	if !ok {
		return nil
	}
	return &ValidationError{Kind: ErrSelfIntersects, Index: crossing.i, OtherIndex: crossing.j}
}
