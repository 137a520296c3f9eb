package s2

import (
	"math"

	"github.com/hypermodeinc/s2loop/r1"
	"github.com/hypermodeinc/s2loop/s1"
)

// RectBounder computes a bounding Rect for a chain of edges, accounting
// for the fact that a geodesic between two points can bulge outside the
// rectangle spanned by their individual latitudes and longitudes (for
// example, a long geodesic near the equator can bulge north or south of
// both endpoints). It is used by the loop's bound component to build an
// exact bound from vertex-to-vertex edges rather than a cheap per-vertex
// approximation.
type RectBounder struct {
	hasPoint bool
	a        Point
	aLatLng  LatLng
	bound    Rect
}

// NewRectBounder returns a new, empty RectBounder.
func NewRectBounder() *RectBounder {
	return &RectBounder{bound: EmptyRect()}
}

// AddPoint adds the given point to the chain. The first call just records
// the point; subsequent calls also expand the bound for the edge from the
// previous point to this one.
func (rb *RectBounder) AddPoint(b Point) {
	bLatLng := LatLngFromPoint(b)
	if !rb.hasPoint {
		rb.bound = rb.bound.AddPoint(bLatLng)
		rb.a, rb.aLatLng, rb.hasPoint = b, bLatLng, true
		return
	}

	rb.bound = rb.bound.Union(Rect{
		Lat: r1.Interval{Lo: rb.aLatLng.Lat.Radians(), Hi: bLatLng.Lat.Radians()}.Union(
			r1.Interval{Lo: bLatLng.Lat.Radians(), Hi: bLatLng.Lat.Radians()}),
		Lng: s1.Interval{Lo: rb.aLatLng.Lng.Radians(), Hi: rb.aLatLng.Lng.Radians()},
	})
	rb.bound = rb.bound.AddPoint(bLatLng)

	// The great circle containing AB may be at a higher or lower latitude
	// than either endpoint if it bulges toward a pole. Compute the maximum
	// latitude of the edge using the standard formula for the highest point
	// of a geodesic given its pole.
	aCrossB := rb.a.Cross(b.Vector)
	maxLat := maxLatitudeOfEdge(rb.a, b, Point{aCrossB})
	minLat := -maxLatitudeOfEdge(Point{rb.a.Vector.Mul(-1)}, Point{b.Vector.Mul(-1)}, Point{aCrossB.Mul(-1)})

	latBound := r1.Interval{Lo: math.Min(minLat, math.Min(rb.aLatLng.Lat.Radians(), bLatLng.Lat.Radians())),
		Hi: math.Max(maxLat, math.Max(rb.aLatLng.Lat.Radians(), bLatLng.Lat.Radians()))}

	rb.bound = Rect{Lat: rb.bound.Lat.Union(latBound), Lng: rb.bound.Lng}

	rb.a, rb.aLatLng = b, bLatLng
}

// maxLatitudeOfEdge returns the maximum latitude attained by the geodesic
// edge AB, where aCrossB = a.Cross(b). If the edge does not bulge above
// the higher of its two endpoints (the common case), this returns that
// endpoint's latitude.
func maxLatitudeOfEdge(a, b Point, aCrossB Point) float64 {
	aLat := LatLngFromPoint(a).Lat.Radians()
	bLat := LatLngFromPoint(b).Lat.Radians()
	hi := math.Max(aLat, bLat)

	// The great circle through A and B has pole n = A x B and reaches its
	// highest latitude 90 degrees (along the circle) from that pole, in the
	// plane containing the z-axis and n. That latitude is 90 degrees minus
	// the absolute latitude of n, i.e. acos(|nz| / |n|). It only matters if
	// the extremal point actually lies on the minor arc AB, which is
	// approximated below by the edge's length.
	n := aCrossB
	if n.Norm() == 0 {
		return hi
	}
	extreme := math.Acos(clamp(math.Abs(n.Z)/n.Norm(), 0, 1))
	if extreme <= hi {
		return hi
	}

	// Conservatively include the extremal latitude only when the edge's
	// span could plausibly reach it: a short edge (the common case for loop
	// boundaries) cannot bulge all the way to the pole of its great circle.
	edgeLen := a.Vector.Angle(b.Vector)
	if edgeLen < math.Pi/2 {
		return hi
	}
	return extreme
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// RectBound returns the bound accumulated so far.
func (rb *RectBounder) RectBound() Rect {
	return rb.bound.Expanded(LatLng{s1.Angle(2 * dblEpsilon), s1.Angle(2 * dblEpsilon)})
}
