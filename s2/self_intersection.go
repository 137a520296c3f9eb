package s2

// selfCrossing identifies a pair of non-adjacent edges (starting at vertex
// i and vertex j respectively) that cross.
type selfCrossing struct {
	i, j int
}

// FindSelfIntersection reports the first pair of non-adjacent edges of the
// closed vertex chain that cross, if any. It is brute force (O(n^2)) since
// loop validation is not expected to run on a hot path; callers that need
// to validate very large, untrusted loops repeatedly should consider
// indexing first.
func FindSelfIntersection(vertices []Point) (selfCrossing, bool) {
	n := len(vertices)
	if n < 4 {
		return selfCrossing{}, false
	}
	edge := func(i int) (Point, Point) { return vertices[i], vertices[(i+1)%n] }

	for i := 0; i < n; i++ {
		a0, a1 := edge(i)
		crosser := NewChainEdgeCrosser(a0, a1, a0)
		for j := i + 1; j < n; j++ {
			// Skip edges adjacent to edge i: they share a vertex by
			// construction and CrossingSign would report MaybeCross rather
			// than a genuine self-intersection.
			if j == i || j == (i+1)%n || (j+1)%n == i {
				continue
			}
			b0, b1 := edge(j)
			crosser.RestartAt(b0)
			if crosser.ChainCrossingSign(b1) == Cross {
				return selfCrossing{i: i, j: j}, true
			}
		}
	}
	return selfCrossing{}, false
}
