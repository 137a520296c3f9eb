package s2

import (
	"github.com/paulmach/go.geojson"
	"github.com/twpayne/go-geom"
	gogeojson "github.com/twpayne/go-geom/encoding/geojson"

	"github.com/hypermodeinc/s2loop/internal/xerr"
)

// LoopFromGeoJSONPolygon decodes a single-ring GeoJSON Polygon geometry
// (as raw JSON bytes) into a Loop. Holes (additional rings beyond the
// first) are rejected: assembling a polygon-with-holes out of several
// Loops is explicitly out of scope for this package, which models a
// single boundary, not a polygon.
//
// go-geom is used for the actual GeoJSON parsing since it already
// validates ring structure and coordinate shape; this function's own job
// is just the geographic-to-spherical conversion go-geom has no opinion
// about.
func LoopFromGeoJSONPolygon(data []byte) (*Loop, error) {
	var t geom.T
	if err := gogeojson.Unmarshal(data, &t); err != nil {
		return nil, xerr.Wrapf(err, "s2: decoding GeoJSON polygon")
	}
	polygon, ok := t.(*geom.Polygon)
	if !ok {
		return nil, xerr.Errorf("s2: GeoJSON geometry is a %T, not a Polygon", t)
	}
	if polygon.NumLinearRings() != 1 {
		return nil, xerr.Errorf("s2: GeoJSON polygon has %d rings, want exactly 1 (holes are unsupported)", polygon.NumLinearRings())
	}

	ring := polygon.LinearRing(0)
	n := ring.NumCoords()
	if n > 0 {
		n-- // GeoJSON rings repeat their first point as their last; Loop does not.
	}
	vertices := make([]Point, n)
	for i := 0; i < n; i++ {
		c := ring.Coord(i)
		vertices[i] = PointFromLatLng(LatLngFromDegrees(c.Y(), c.X()))
	}
	return LoopFromPoints(vertices), nil
}

// ToGeoJSONPolygon encodes the loop as a GeoJSON Polygon geometry (a
// single linear ring, with the first point repeated at the end as the
// GeoJSON spec requires). It returns the raw marshaled JSON bytes.
//
// go.geojson is used here instead of go-geom's own encoder because its
// Geometry type marshals directly to the bare geometry object this
// function promises, without requiring the caller to first wrap it in a
// Feature.
func (l *Loop) ToGeoJSONPolygon() ([]byte, error) {
	if l.isEmptyOrFull() {
		return nil, xerr.Errorf("s2: cannot encode the empty or full loop as a GeoJSON polygon")
	}
	n := l.NumVertices()
	ring := make([][]float64, n+1)
	for i := 0; i < n; i++ {
		ll := LatLngFromPoint(l.Vertex(i))
		ring[i] = []float64{ll.Lng.Degrees(), ll.Lat.Degrees()}
	}
	ring[n] = ring[0]

	g := geojson.NewPolygonGeometry([][][]float64{ring})
	return g.MarshalJSON()
}
