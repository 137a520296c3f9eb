package s2

import "math"

// TurningAngle returns the sum of the loop's exterior angles, i.e. the
// total amount a traveler walking the boundary turns, in radians. By the
// Gauss-Bonnet theorem this equals 2*pi minus the loop's area (when the
// loop's vertices are ordered counterclockwise around its interior); a
// clockwise-ordered loop's turning angle is the negation of that. The
// empty loop has turning angle 2*pi; the full loop has turning angle
// -2*pi, by the same convention used upstream.
func (l *Loop) TurningAngle() float64 {
	if l.isEmptyOrFull() {
		if l.IsFull() {
			return -2 * math.Pi
		}
		return 2 * math.Pi
	}

	n := len(l.vertices)
	if n < 3 {
		return 0
	}

	// vertexMod wraps an index by the full vertex count in either
	// direction, unlike Vertex (which only wraps once, assuming a
	// nonnegative index less than 2*n): canonicalFirstVertex's dir can
	// walk the index either up or down across the wrap point repeatedly.
	vertexMod := func(i int) Point {
		i %= n
		if i < 0 {
			i += n
		}
		return l.vertices[i]
	}

	first, dir := l.canonicalFirstVertex()
	sum, comp := 0.0, 0.0
	add := func(x float64) {
		y := x - comp
		s := sum + y
		comp = (s - sum) - y
		sum = s
	}

	i := first
	add(float64(TurnAngle(vertexMod(i-dir), vertexMod(i), vertexMod(i+dir))))
	for k := 1; k < n; k++ {
		i += dir
		add(float64(TurnAngle(vertexMod(i-dir), vertexMod(i), vertexMod(i+dir))))
	}
	return float64(dir) * (sum + comp)
}

// turningAngleMaxError bounds the numerical error in TurningAngle, scaled
// by vertex count, and is used by Area to disambiguate a loop's area from
// its complement's when the signed-area sum alone is too close to 0 or
// 4*pi to trust.
func (l *Loop) turningAngleMaxError() float64 {
	const perVertexError = 9.73 * dblEpsilon
	return perVertexError * float64(len(l.vertices))
}

// IsNormalized reports whether the loop encloses at most half the sphere,
// i.e. whether its area is at most 2*pi. Loops are conventionally
// normalized so that the smaller of a region and its complement is the
// one represented directly.
func (l *Loop) IsNormalized() bool {
	if l.isEmptyOrFull() {
		return l.IsEmpty()
	}
	// A turning angle close to 0 indicates a degenerate loop for which the
	// sign is ambiguous; treat it as normalized by convention, matching
	// the area-side convention of rounding degenerate cases to empty.
	return l.TurningAngle() >= -l.turningAngleMaxError()
}

// Normalize inverts the loop in place if it is not already normalized, so
// that afterward it always encloses the smaller of the region and its
// complement.
func (l *Loop) Normalize() {
	if !l.IsNormalized() {
		l.Invert()
	}
}

// Invert reverses the loop's vertex order in place, which swaps its
// interior and exterior. The first vertex is left unchanged so that
// ownership of the starting point is preserved for callers that track it.
func (l *Loop) Invert() {
	if l.isEmptyOrFull() {
		if l.IsFull() {
			l.vertices[0] = emptyLoopPoint
		} else {
			l.vertices[0] = fullLoopPoint
		}
	} else {
		for i, j := 0, len(l.vertices)-1; i < j; i, j = i+1, j-1 {
			l.vertices[i], l.vertices[j] = l.vertices[j], l.vertices[i]
		}
	}
	l.resetIndex()
	l.initOriginAndBound()
}
