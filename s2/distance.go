package s2

import "math"

// InfAngleRadians is a distance larger than any two points on the sphere
// can actually be apart, used as the starting value for nearest-edge
// searches.
const InfAngleRadians = 4.0

// Distance returns the distance from p to the loop: zero if p is inside
// or on the boundary, otherwise the distance to the nearest point on the
// boundary. This is one of the features the distilled containment-only
// specification leaves out but that every practical polygon library
// needs, since "how far outside" is what most callers actually want once
// ContainsPoint says no.
func (l *Loop) Distance(p Point) float64 {
	if l.ContainsPoint(p) {
		return 0
	}
	return l.DistanceToBoundary(p)
}

// DistanceToBoundary returns the distance from p to the nearest point on
// the loop's boundary, in radians, regardless of whether p is inside or
// outside the loop.
func (l *Loop) DistanceToBoundary(p Point) float64 {
	if l.isEmptyOrFull() {
		return InfAngleRadians
	}
	best := InfAngleRadians
	n := len(l.vertices)
	for i := 0; i < n; i++ {
		a, b := l.Edge(i)
		if d := distanceToEdge(p, a, b); d < best {
			best = d
		}
	}
	return best
}

// Project returns the closest point to p that lies inside the loop: p
// itself if it is already inside, otherwise its projection onto the
// boundary.
func (l *Loop) Project(p Point) Point {
	if l.ContainsPoint(p) {
		return p
	}
	return l.ProjectToBoundary(p)
}

// ProjectToBoundary returns the closest point to p that lies on the
// loop's boundary.
func (l *Loop) ProjectToBoundary(p Point) Point {
	if l.isEmptyOrFull() {
		return p
	}
	best := InfAngleRadians
	var closest Point
	n := len(l.vertices)
	for i := 0; i < n; i++ {
		a, b := l.Edge(i)
		if d := distanceToEdge(p, a, b); d < best {
			best = d
			closest = projectToEdge(p, a, b)
		}
	}
	return closest
}

// distanceToEdge returns the distance in radians from p to the geodesic
// edge AB (the shortest arc between A and B, not the full great circle).
func distanceToEdge(p, a, b Point) float64 {
	return projectToEdge(p, a, b).Distance(p).Radians()
}

// projectToEdge returns the closest point to p on the geodesic edge AB.
func projectToEdge(p, a, b Point) Point {
	// The closest point on the great circle through A and B is p projected
	// onto the plane of that circle, renormalized. If that point does not
	// lie on the minor arc between A and B, the closest point on the edge
	// is instead whichever endpoint is nearer.
	n := a.Cross(b.Vector)
	if n.Norm() == 0 {
		// A and B coincide (degenerate edge); either endpoint is the answer.
		return a
	}
	proj := p.Sub(n.Mul(p.Dot(n) / n.Dot(n)))
	if proj.Norm() == 0 {
		return a
	}
	candidate := Point{proj.Normalize()}

	if isOnArc(candidate, a, b) {
		return candidate
	}
	if a.Distance(candidate).Radians() < b.Distance(candidate).Radians() {
		return a
	}
	return b
}

// isOnArc reports whether p, known to lie on the great circle through a
// and b, lies on the minor arc between them rather than the major arc on
// the far side of the sphere.
func isOnArc(p, a, b Point) bool {
	ab := a.Vector.Angle(b.Vector)
	ap := a.Vector.Angle(p.Vector)
	pb := p.Vector.Angle(b.Vector)
	return math.Abs(ap+pb-ab) < 1e-9
}
