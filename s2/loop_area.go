package s2

import "math"

// Area returns the area of the loop's interior, in steradians, in the
// range [0, 4*pi]. The empty loop has area 0 and the full loop has area
// 4*pi.
func (l *Loop) Area() float64 {
	if l.isEmptyOrFull() {
		if l.IsFull() {
			return 4 * math.Pi
		}
		return 0
	}

	area := l.surfaceIntegralFloat64(SignedArea)

	// SignedArea sums to a small positive number for a loop enclosing the
	// smaller of the two possible regions, but if the loop actually
	// encloses the larger region (its complement), the sum comes out
	// negative; in that case the correct area is 4*pi plus the (negative)
	// sum.
	if area < 0 {
		area += 4 * math.Pi
	}
	if area < 0 {
		area = 0
	} else if area > 4*math.Pi {
		area = 4 * math.Pi
	}

	// The clamp above cannot by itself tell a loop that truly encloses
	// near-zero area from one that truly encloses nearly the whole sphere,
	// since both land the raw signed sum near one end of the valid range
	// for the same reason: rounding error swamping a genuinely tiny
	// magnitude. IsNormalized, derived independently from the turning
	// angle, disambiguates the two ends.
	maxErr := l.turningAngleMaxError()
	switch {
	case area < maxErr && !l.IsNormalized():
		return 4 * math.Pi
	case area > 4*math.Pi-maxErr && l.IsNormalized():
		return 0
	default:
		return area
	}
}

// Centroid returns the true centroid of the loop multiplied by its area.
// Dividing by Area() and normalizing yields the loop's surface centroid.
// The unnormalized, area-weighted form is what composes correctly when
// summing centroids of multiple loops (for example the loops of a
// polygon).
func (l *Loop) Centroid() Point {
	if l.isEmptyOrFull() {
		return Point{}
	}
	return l.surfaceIntegralPoint(TrueCentroid)
}

// surfaceIntegralFloat64 implements the generic surface-integral
// algorithm for a scalar per-triangle function (Centroid uses the
// vector-valued surfaceIntegralPoint): it triangulates the loop fan-wise
// from its first
// vertex and sums f(v0, vi, vi+1) over the fan triangles, using Kahan
// summation to keep rounding error from accumulating across loops with
// many vertices.
func (l *Loop) surfaceIntegralFloat64(f func(a, b, c Point) float64) float64 {
	origin := l.vertices[0]
	sum, comp := 0.0, 0.0
	n := len(l.vertices)
	for i := 1; i < n-1; i++ {
		term := f(origin, l.vertices[i], l.vertices[i+1])
		y := term - comp
		s := sum + y
		comp = (s - sum) - y
		sum = s
	}
	return sum
}

// surfaceIntegralPoint is surfaceIntegralFloat64's counterpart for a
// vector-valued per-triangle function.
func (l *Loop) surfaceIntegralPoint(f func(a, b, c Point) Point) Point {
	origin := l.vertices[0]
	var sum Point
	n := len(l.vertices)
	for i := 1; i < n-1; i++ {
		t := f(origin, l.vertices[i], l.vertices[i+1])
		sum = Point{sum.Add(t.Vector)}
	}
	return sum
}
