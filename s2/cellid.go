package s2

import (
	"math"
	"math/bits"

	"github.com/hypermodeinc/s2loop/r3"
)

// CellID uniquely identifies a cell in a hierarchical decomposition of the
// sphere into six root faces, each recursively subdivided into four
// children per level. Unlike the upstream S2 library, which threads cells
// along a Hilbert space-filling curve for its locality properties, this
// package threads them along a Morton (Z-order) curve instead: cell-id
// arithmetic proper is a concern that sits outside this package's scope
// (see the face/level bit layout below), and Morton order is far simpler
// to construct while preserving every ordering, nesting, and range
// property that the spatial-index walk (RangeWalker) actually depends on:
// a cell's descendants form a contiguous [RangeMin, RangeMax] id range,
// sibling cells are adjacent in id order, and Level/Parent/Contains behave
// identically to a curve-based scheme. What Morton order does NOT give up
// is any algorithmic property used here; what it gives up is the spatial
// locality that makes the real S2 useful for *storage* layouts, which is
// irrelevant to an in-memory Loop.
//
// Bit layout (64 bits, most to least significant):
//
//	3 bits face (0-5)
//	60 bits of interleaved (u, v) position within the face, most
//	  significant pair first
//	1 bit: always set in a valid leaf-level id before trailing zeros are
//	  applied by a parent at a coarser level (the "sentinel" trailing 1
//	  bit, exactly as upstream S2 uses to mark the level of a cell)
type CellID uint64

// MaxLevel is the deepest level of subdivision supported.
const MaxLevel = 30

const (
	faceBits  = 3
	numFaces  = 6
	posBits   = 2*MaxLevel + 1
	maxSize   = 1 << MaxLevel
)

// CellIDFromFace returns the cell at the given face's root.
func CellIDFromFace(face int) CellID {
	return CellID((uint64(face) << posBits) + lsbForLevel(0))
}

func lsbForLevel(level int) uint64 {
	return uint64(1) << uint(2*(MaxLevel-level))
}

// CellIDFromFaceIJ constructs a leaf CellID from a face and integer (i, j)
// coordinates in [0, maxSize).
func CellIDFromFaceIJ(face, i, j int) CellID {
	pos := interleave(uint32(i), uint32(j))
	return CellID((uint64(face) << posBits) | (pos << 1) | 1)
}

// interleave bit-interleaves the low 30 bits of i and j: i0 j0 i1 j1 ...
func interleave(i, j uint32) uint64 {
	var result uint64
	for b := 0; b < MaxLevel; b++ {
		result |= uint64((i>>uint(b))&1) << uint(2*b)
		result |= uint64((j>>uint(b))&1) << uint(2*b+1)
	}
	return result
}

func deinterleave(pos uint64) (i, j uint32) {
	for b := 0; b < MaxLevel; b++ {
		i |= uint32((pos>>uint(2*b))&1) << uint(b)
		j |= uint32((pos>>uint(2*b+1))&1) << uint(b)
	}
	return
}

// Face returns the root face (0-5) that contains the cell.
func (id CellID) Face() int { return int(uint64(id) >> posBits) }

// Pos returns the position of the cell center along the Morton curve, as
// a value in [0, 2^61).
func (id CellID) Pos() uint64 { return uint64(id) & (uint64(1)<<posBits - 1) }

// Lsb returns the value of the cell's least-significant set bit, which
// encodes its level.
func (id CellID) Lsb() uint64 { return uint64(id) & -uint64(id) }

// IsValid reports whether the id represents a valid cell.
func (id CellID) IsValid() bool {
	return id.Face() < numFaces && (id.Lsb()&0x1555555555555555 != 0)
}

// Level returns the subdivision level of the cell, in [0, MaxLevel].
func (id CellID) Level() int {
	if id == 0 {
		return -1
	}
	return MaxLevel - bits.TrailingZeros64(uint64(id))/2
}

// IsLeaf reports whether the cell is a leaf cell (level == MaxLevel).
func (id CellID) IsLeaf() bool { return uint64(id)&1 != 0 }

// ChildBegin returns the first child of the cell at its own level+1.
func (id CellID) ChildBegin() CellID {
	lsb := id.Lsb()
	return CellID(uint64(id) - lsb + lsb>>2)
}

// ChildEnd returns the id just beyond the last child of the cell.
func (id CellID) ChildEnd() CellID {
	lsb := id.Lsb()
	return CellID(uint64(id) + lsb + lsb>>2)
}

// Parent returns the cell at the given ancestor level, which must not
// exceed the cell's own level.
func (id CellID) Parent(level int) CellID {
	lsb := lsbForLevel(level)
	return CellID((uint64(id) & -lsb) | lsb)
}

// ImmediateParent returns the cell at level()-1.
func (id CellID) ImmediateParent() CellID { return id.Parent(id.Level() - 1) }

// RangeMin returns the minimum leaf-level CellID contained within the
// cell, inclusive.
func (id CellID) RangeMin() CellID { return CellID(uint64(id) - (id.Lsb() - 1)) }

// RangeMax returns the maximum leaf-level CellID contained within the
// cell, inclusive.
func (id CellID) RangeMax() CellID { return CellID(uint64(id) + (id.Lsb() - 1)) }

// Contains reports whether the cell contains other, i.e. other is a
// descendant of the cell (or equal to it).
func (id CellID) Contains(other CellID) bool {
	return uint64(id.RangeMin()) <= uint64(other) && uint64(other) <= uint64(id.RangeMax())
}

// Intersects reports whether the cell and other have any leaf descendants
// in common.
func (id CellID) Intersects(other CellID) bool {
	return uint64(other.RangeMin()) <= uint64(id.RangeMax()) && uint64(id.RangeMin()) <= uint64(other.RangeMax())
}

// Next returns the next cell id in Morton order at the same level.
func (id CellID) Next() CellID {
	return CellID(uint64(id) + id.Lsb()*2)
}

// Prev returns the previous cell id in Morton order at the same level.
func (id CellID) Prev() CellID {
	return CellID(uint64(id) - id.Lsb()*2)
}

// SentinelCellID returns an id beyond the last valid cell on any face, used
// as the past-the-end marker by rangeIterator.
func SentinelCellID() CellID { return CellID(math.MaxUint64) }

// faceIJ returns the face and the (i, j) leaf-level coordinates of the
// cell's minimum corner, from which CellFromCellID builds the cell's
// vertices.
func (id CellID) faceIJ() (face int, i, j uint32) {
	face = id.Face()
	i, j = deinterleave(id.RangeMin().Pos() >> 1)
	return
}

// CellIDFromPoint returns the leaf CellID containing p, selecting the
// root face whose axis the point projects onto most strongly and mapping
// the remaining two coordinates onto the face's [0,1)x[0,1) square via a
// straightforward (non-Hilbert) linear projection.
func CellIDFromPoint(p Point) CellID {
	face, u, v := faceUV(p.Vector)
	i := uint32(clamp(math.Floor((u+1)*0.5*float64(maxSize)), 0, maxSize-1))
	j := uint32(clamp(math.Floor((v+1)*0.5*float64(maxSize)), 0, maxSize-1))
	return CellIDFromFaceIJ(face, int(i), int(j))
}

// faceUV projects v onto the cube face it points into most strongly and
// returns that face's index along with the (u, v) coordinates in [-1, 1]
// of the projection.
func faceUV(v r3.Vector) (face int, u, v2 float64) {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case ax >= ay && ax >= az:
		if v.X > 0 {
			return 0, v.Y / v.X, v.Z / v.X
		}
		return 1, v.Y / v.X, v.Z / v.X
	case ay >= az:
		if v.Y > 0 {
			return 2, -v.X / v.Y, v.Z / v.Y
		}
		return 3, -v.X / v.Y, v.Z / v.Y
	default:
		if v.Z > 0 {
			return 4, v.X / v.Z, -v.Y / v.Z
		}
		return 5, v.X / v.Z, -v.Y / v.Z
	}
}
