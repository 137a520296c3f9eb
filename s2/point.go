// Package s2 implements a spherical polygon boundary primitive, Loop, and
// the supporting geometric machinery (predicates, bounds, spatial indexing)
// it needs for validation, containment, area, and relation queries.
package s2

import (
	"fmt"
	"math"

	"github.com/hypermodeinc/s2loop/r3"
	"github.com/hypermodeinc/s2loop/s1"
)

// Point represents a point on the unit sphere as a normalized 3-D vector.
type Point struct {
	r3.Vector
}

// PointFromCoords creates a new normalized point from coordinates. If the
// coordinates cannot be normalized (all zero), the origin point is
// returned, matching the convention used throughout the edge-crossing and
// containment machinery of never producing a NaN point.
func PointFromCoords(x, y, z float64) Point {
	if x == 0 && y == 0 && z == 0 {
		return OriginPoint()
	}
	return Point{r3.Vector{X: x, Y: y, Z: z}.Normalize()}
}

// OriginPoint returns a fixed point used as the reference point for
// point-in-polygon containment tests (edge crossing counts against a ray
// to this point). It lies about 0.6 degrees from the north pole, close to
// it but not on it, and off any low-level cell boundary, so that
// degenerate cases in edge-crossing logic are not triggered by accident.
func OriginPoint() Point {
	return Point{r3.Vector{X: -0.0099994664350250197, Y: 0.0025924542609324121, Z: 0.99994664350250195}}
}

func (p Point) String() string {
	return fmt.Sprintf("Point{%s}", p.Vector.String())
}

// ApproxEqual reports whether p and op are close enough to be treated as
// identical points.
func (p Point) ApproxEqual(op Point) bool {
	const epsilon = 1e-15
	return p.Vector.Angle(op.Vector) <= epsilon
}

// PointCross returns a point orthogonal to both p and op that is more
// numerically robust than p.Cross(op) when the two points are nearly
// parallel or antiparallel: it never returns the zero vector.
func (p Point) PointCross(op Point) Point {
	x := p.Add(op.Vector).Cross(op.Sub(p.Vector))
	if x == (r3.Vector{}) {
		return Point{p.Ortho()}
	}
	return Point{x}
}

// Distance returns the angle between p and op, measured as the great
// circle distance on the unit sphere.
func (p Point) Distance(op Point) s1.Angle {
	return s1.Angle(p.Vector.Angle(op.Vector))
}

// regularPoints constructs the vertices of a regular polygon inscribed in
// a circle of the given angular radius centered on center.
func regularPoints(center Point, radius s1.Angle, numVertices int) []Point {
	frame := getFrame(center)
	z := math.Cos(radius.Radians())
	r := math.Sin(radius.Radians())
	step := 2 * math.Pi / float64(numVertices)
	vertices := make([]Point, numVertices)
	for i := 0; i < numVertices; i++ {
		angle := float64(i) * step
		p := r3.Vector{X: r * math.Cos(angle), Y: r * math.Sin(angle), Z: z}
		vertices[i] = Point{fromFrame(frame, p).Normalize()}
	}
	return vertices
}

// matrix3x3 is a 3x3 matrix whose columns form an orthonormal frame, used
// to place regular polygons and random test points at an arbitrary
// orientation on the sphere.
type matrix3x3 [3]r3.Vector

// getFrame returns a right-handed orthonormal frame whose z-axis is z.
func getFrame(z Point) matrix3x3 {
	x := Point{z.Ortho()}
	y := Point{z.Cross(x.Vector)}
	return matrix3x3{x.Vector, y.Vector, z.Vector}
}

// fromFrame converts a point in the given frame's local coordinates back
// into the ambient coordinate system.
func fromFrame(m matrix3x3, p r3.Vector) r3.Vector {
	return m[0].Mul(p.X).Add(m[1].Mul(p.Y)).Add(m[2].Mul(p.Z))
}
