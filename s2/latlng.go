package s2

import (
	"math"

	"github.com/hypermodeinc/s2loop/r3"
	"github.com/hypermodeinc/s2loop/s1"
)

// LatLng represents a point on the unit sphere as a pair of angles.
type LatLng struct {
	Lat, Lng s1.Angle
}

// LatLngFromDegrees returns a LatLng for the given pair of degree values.
func LatLngFromDegrees(lat, lng float64) LatLng {
	return LatLng{s1.Angle(lat) * s1.Degree, s1.Angle(lng) * s1.Degree}
}

// IsValid reports whether the LatLng is within valid ranges.
func (ll LatLng) IsValid() bool {
	return math.Abs(ll.Lat.Radians()) <= math.Pi/2 && math.Abs(ll.Lng.Radians()) <= math.Pi
}

// Normalized returns the LatLng with its latitude clamped to [-pi/2, pi/2]
// and its longitude wrapped into [-pi, pi].
func (ll LatLng) Normalized() LatLng {
	lat := ll.Lat
	if lat > s1.Angle(math.Pi/2) {
		lat = s1.Angle(math.Pi / 2)
	} else if lat < s1.Angle(-math.Pi/2) {
		lat = s1.Angle(-math.Pi / 2)
	}
	return LatLng{lat, ll.Lng.Normalized()}
}

// PointFromLatLng converts a LatLng to a Point.
func PointFromLatLng(ll LatLng) Point {
	phi := ll.Lat.Radians()
	theta := ll.Lng.Radians()
	cosphi := math.Cos(phi)
	return Point{r3.Vector{
		X: math.Cos(theta) * cosphi,
		Y: math.Sin(theta) * cosphi,
		Z: math.Sin(phi),
	}}
}

// LatLngFromPoint converts a Point to a LatLng.
func LatLngFromPoint(p Point) LatLng {
	return LatLng{
		Lat: s1.Angle(math.Atan2(p.Z, math.Sqrt(p.X*p.X+p.Y*p.Y))),
		Lng: s1.Angle(math.Atan2(p.Y, p.X)),
	}
}

// Distance returns the great-circle distance between two LatLngs using the
// Haversine formula, which stays numerically stable for both nearby and
// antipodal points.
func (ll LatLng) Distance(ol LatLng) s1.Angle {
	lat1, lat2 := ll.Lat.Radians(), ol.Lat.Radians()
	lng1, lng2 := ll.Lng.Radians(), ol.Lng.Radians()
	dlat := math.Sin(0.5 * (lat2 - lat1))
	dlng := math.Sin(0.5 * (lng2 - lng1))
	x := dlat*dlat + dlng*dlng*math.Cos(lat1)*math.Cos(lat2)
	return s1.Angle(2 * math.Atan2(math.Sqrt(x), math.Sqrt(math.Max(0, 1-x))))
}
