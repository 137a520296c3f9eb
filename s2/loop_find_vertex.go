package s2

// FindVertex returns the index of the first vertex of the loop equal to
// p, and true, or false if no vertex matches. Useful when assembling
// polygons that need to detect loops sharing a vertex.
func (l *Loop) FindVertex(p Point) (int, bool) {
	for i, v := range l.vertices {
		if v == p {
			return i, true
		}
	}
	return 0, false
}
