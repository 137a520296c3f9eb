package s2

import "github.com/hypermodeinc/s2loop/r3"

// Cell is a quadrilateral region on the sphere corresponding to a CellID.
// It caches its four vertices since they are needed repeatedly by the
// cell/loop containment and relation queries.
type Cell struct {
	id       CellID
	vertices [4]Point
}

// CellFromCellID constructs the Cell for the given id.
func CellFromCellID(id CellID) Cell {
	face, i, j := id.faceIJ()
	size := uint32(1) << uint(MaxLevel-id.Level())
	c := Cell{id: id}
	corners := [4][2]uint32{{i, j}, {i + size, j}, {i + size, j + size}, {i, j + size}}
	for k, corner := range corners {
		u := 2*float64(corner[0])/float64(maxSize) - 1
		v := 2*float64(corner[1])/float64(maxSize) - 1
		c.vertices[k] = Point{pointFromFaceUV(face, u, v).Normalize()}
	}
	// On some faces the (u, v) axes map to a clockwise frame; reverse the
	// order there so the vertices are always CCW.
	if RobustSign(c.vertices[0], c.vertices[1], c.vertices[2]) == Clockwise {
		c.vertices[1], c.vertices[3] = c.vertices[3], c.vertices[1]
	}
	return c
}

// ID returns the cell's identifier.
func (c Cell) ID() CellID { return c.id }

// Vertex returns the i-th vertex of the cell, in CCW order.
func (c Cell) Vertex(i int) Point { return c.vertices[i%4] }

// RectBound returns a bounding Rect for the cell, built from its four
// vertices exactly as the loop's own bound component builds a bound from
// a vertex chain.
func (c Cell) RectBound() Rect {
	rb := NewRectBounder()
	for i := 0; i < 4; i++ {
		rb.AddPoint(c.vertices[i])
	}
	rb.AddPoint(c.vertices[0])
	return rb.RectBound()
}

// ContainsPoint reports whether the cell contains p, treating the cell's
// boundary as part of the cell.
func (c Cell) ContainsPoint(p Point) bool {
	for i := 0; i < 4; i++ {
		if RobustSign(c.vertices[i], c.vertices[(i+1)%4], p) == Clockwise {
			return false
		}
	}
	return true
}

// pointFromFaceUV maps (u, v) coordinates on the given cube face back to
// an un-normalized point in ambient coordinates, inverting faceUV.
func pointFromFaceUV(face int, u, v float64) r3.Vector {
	switch face {
	case 0:
		return r3.Vector{X: 1, Y: u, Z: v}
	case 1:
		return r3.Vector{X: -1, Y: -u, Z: -v}
	case 2:
		return r3.Vector{X: -u, Y: 1, Z: v}
	case 3:
		return r3.Vector{X: u, Y: -1, Z: -v}
	case 4:
		return r3.Vector{X: u, Y: -v, Z: 1}
	default:
		return r3.Vector{X: -u, Y: v, Z: -1}
	}
}
