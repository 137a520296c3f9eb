package s2

// Equals reports whether this loop and other have the same vertices in
// the same order, starting from the same first vertex (not merely the
// same enclosed region). BoundaryEquals allows a different start.
func (l *Loop) Equals(other *Loop) bool {
	if len(l.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range l.vertices {
		if v != other.vertices[i] {
			return false
		}
	}
	return true
}

// BoundaryEquals reports whether this loop and other have the same
// boundary, allowing the vertex sequence to start at a different offset
// (but not allowing it to be reversed).
func (l *Loop) BoundaryEquals(other *Loop) bool {
	if len(l.vertices) != len(other.vertices) {
		return false
	}
	n := len(l.vertices)
	for offset := 0; offset < n; offset++ {
		if l.vertices[0] != other.Vertex(offset) {
			continue
		}
		match := true
		for i := 0; i < n; i++ {
			if l.Vertex(i) != other.Vertex(offset+i) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return n == 0
}

// BoundaryApproxEquals reports whether this loop's boundary can be
// transformed into other's by moving each vertex by no more than
// maxError, allowing the starting offset (but not the direction) to
// differ.
func (l *Loop) BoundaryApproxEquals(other *Loop, maxError float64) bool {
	if len(l.vertices) != len(other.vertices) {
		return false
	}
	n := len(l.vertices)
	for offset := 0; offset < n; offset++ {
		match := true
		for i := 0; i < n; i++ {
			if l.Vertex(i).Distance(other.Vertex(offset+i)).Radians() > maxError {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return n == 0
}

// BoundaryNear reports whether every vertex of this loop is within
// maxError of some point on other's boundary and vice versa, which is a
// looser test than BoundaryApproxEquals: it tolerates the two loops
// having been built from different numbers of vertices along the same
// boundary, as happens after simplification.
func (l *Loop) BoundaryNear(other *Loop, maxError float64) bool {
	return l.vertexChainNear(other, maxError) && other.vertexChainNear(l, maxError)
}

// vertexChainNear reports whether every vertex of l lies within maxError
// of some edge of other.
func (l *Loop) vertexChainNear(other *Loop, maxError float64) bool {
	for i := 0; i < len(l.vertices); i++ {
		v := l.Vertex(i)
		best := InfAngleRadians
		for j := 0; j < len(other.vertices); j++ {
			a, b := other.Edge(j)
			d := distanceToEdge(v, a, b)
			if d < best {
				best = d
			}
		}
		if best > maxError {
			return false
		}
	}
	return true
}
