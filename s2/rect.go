package s2

import (
	"math"

	"github.com/hypermodeinc/s2loop/r1"
	"github.com/hypermodeinc/s2loop/s1"
)

// Rect represents a closed latitude-longitude rectangle, used throughout
// the package as a cheap bounding region for quick-rejection tests before
// falling back to exact predicates. Lat is a r1.Interval clamped to
// [-pi/2, pi/2]; Lng is a s1.Interval, which supports wraparound at ±π so
// a rectangle can straddle the antimeridian.
type Rect struct {
	Lat r1.Interval
	Lng s1.Interval
}

// EmptyRect returns the canonical empty rectangle.
func EmptyRect() Rect { return Rect{r1.EmptyInterval(), s1.EmptyInterval()} }

// FullRect returns the full rectangle, covering the entire sphere.
func FullRect() Rect { return Rect{validRectLatRange, s1.FullInterval()} }

var validRectLatRange = r1.Interval{Lo: -math.Pi / 2, Hi: math.Pi / 2}

// RectFromLatLng constructs a single-point Rect.
func RectFromLatLng(ll LatLng) Rect {
	return Rect{
		Lat: r1.Interval{Lo: ll.Lat.Radians(), Hi: ll.Lat.Radians()},
		Lng: s1.Interval{Lo: ll.Lng.Radians(), Hi: ll.Lng.Radians()},
	}
}

// IsValid reports whether the rectangle's latitude range is within
// [-pi/2, pi/2] and its longitude range is a valid s1.Interval.
func (r Rect) IsValid() bool {
	return math.Abs(r.Lat.Lo) <= math.Pi/2 && math.Abs(r.Lat.Hi) <= math.Pi/2 &&
		r.Lng.IsValid() && r.Lat.IsEmpty() == r.Lng.IsEmpty()
}

// IsEmpty reports whether the rectangle is empty.
func (r Rect) IsEmpty() bool { return r.Lat.IsEmpty() }

// IsFull reports whether the rectangle covers the entire sphere.
func (r Rect) IsFull() bool { return r.Lat.Equal(validRectLatRange) && r.Lng.IsFull() }

// IsPoint reports whether the rectangle is a single point.
func (r Rect) IsPoint() bool { return r.Lat.Lo == r.Lat.Hi && r.Lng.Lo == r.Lng.Hi }

// Center returns the center of the rectangle.
func (r Rect) Center() LatLng {
	return LatLng{s1.Angle(r.Lat.Center()), s1.Angle(r.Lng.Center())}
}

// ContainsLatLng reports whether the rectangle contains the given point.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return r.Lat.Contains(ll.Lat.Radians()) && r.Lng.Contains(ll.Lng.Radians())
}

// ContainsPoint reports whether the rectangle contains the given Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.ContainsLatLng(LatLngFromPoint(p))
}

// Contains reports whether the rectangle contains other.
func (r Rect) Contains(other Rect) bool {
	return r.Lat.ContainsInterval(other.Lat) && r.Lng.ContainsInterval(other.Lng)
}

// Intersects reports whether the rectangle and other have any points in
// common.
func (r Rect) Intersects(other Rect) bool {
	return r.Lat.Intersects(other.Lat) && r.Lng.Intersects(other.Lng)
}

// Union returns the smallest rectangle containing the union of r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{r.Lat.Union(other.Lat), r.Lng.Union(other.Lng)}
}

// AddPoint returns the smallest rectangle containing r and ll.
func (r Rect) AddPoint(ll LatLng) Rect {
	return Rect{r.Lat.AddPoint(ll.Lat.Radians()), r.Lng.AddPoint(ll.Lng.Radians())}
}

// Expanded returns a rectangle expanded by margin on every side. A
// negative component shrinks the rectangle and may produce an empty
// result.
func (r Rect) Expanded(margin LatLng) Rect {
	if r.IsEmpty() {
		return r
	}
	lat := r.Lat.Expanded(margin.Lat.Radians()).Intersection(validRectLatRange)
	lng := r.Lng.Expanded(margin.Lng.Radians())
	if lat.IsEmpty() {
		return EmptyRect()
	}
	if lat.Lo <= -math.Pi/2+1e-15 || lat.Hi >= math.Pi/2-1e-15 {
		// The latitude range approximately reaches a pole: every longitude is
		// represented near that pole, so widen to full.
		return Rect{lat, s1.FullInterval()}
	}
	return Rect{lat, lng}
}
