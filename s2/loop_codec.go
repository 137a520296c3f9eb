package s2

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/hypermodeinc/s2loop/internal/xerr"
	"github.com/hypermodeinc/s2loop/r1"
	"github.com/hypermodeinc/s2loop/r3"
	"github.com/hypermodeinc/s2loop/s1"
)

// encodingVersion identifies the wire format of an encoded loop so that a
// future format change can still decode loops written by this one.
const (
	losslessEncodingVersion  = 1
	compressedEncodingVersion = 2
)

// Encode writes a lossless encoding of the loop to w: full float64
// precision for every vertex, plus origin_inside, depth, and the bound.
// This is the cheaper encoding to produce and decode, at the cost of 24
// bytes per vertex.
func (l *Loop) Encode(w io.Writer) error {
	if err := writeByte(w, losslessEncodingVersion); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(l.vertices))); err != nil {
		return err
	}
	for _, v := range l.vertices {
		if err := writeFloat64(w, v.X); err != nil {
			return err
		}
		if err := writeFloat64(w, v.Y); err != nil {
			return err
		}
		if err := writeFloat64(w, v.Z); err != nil {
			return err
		}
	}
	originInside := byte(0)
	if l.originInside {
		originInside = 1
	}
	if err := writeByte(w, originInside); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(l.depth)); err != nil {
		return err
	}
	return encodeRect(w, l.bound)
}

// DecodeLoop reads a loop previously written by Encode or
// EncodeCompressed. maxNumVertices bounds the vertex count accepted, so
// decoding an untrusted or corrupt payload cannot be abused to force an
// unbounded allocation; the module's default is
// config.Defaults().DecodeMaxNumVertices.
func DecodeLoop(r io.Reader, maxNumVertices int) (*Loop, error) {
	version, err := readByte(r)
	if err != nil {
		return nil, err
	}
	switch version {
	case losslessEncodingVersion:
		return decodeLossless(r, maxNumVertices)
	case compressedEncodingVersion:
		return decodeCompressed(r, maxNumVertices)
	default:
		return nil, xerr.Errorf("s2: unsupported loop encoding version %d", version)
	}
}

func decodeLossless(r io.Reader, maxNumVertices int) (*Loop, error) {
	n32, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	n := uint64(n32)
	if err := checkVertexCount(n, maxNumVertices); err != nil {
		return nil, err
	}
	vertices := make([]Point, n)
	for i := range vertices {
		x, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		y, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		z, err := readFloat64(r)
		if err != nil {
			return nil, err
		}
		vertices[i] = Point{r3.Vector{X: x, Y: y, Z: z}}
	}
	originInsideByte, err := readByte(r)
	if err != nil {
		return nil, err
	}
	depth, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	bound, err := decodeRect(r)
	if err != nil {
		return nil, err
	}
	return loopFromDecoded(vertices, originInsideByte != 0, bound, int(depth)), nil
}

// boundEncodeThreshold is the minimum vertex count at which EncodeCompressed
// bothers writing the bound rather than leaving the decoder to re-derive it
// via RectBounder, which is cheap enough below this size that spending the
// bytes on it isn't worth it.
const boundEncodeThreshold = 64

const (
	propOriginInside = 1 << 0
	propBoundEncoded = 1 << 1
)

// EncodeCompressed writes a compact encoding of the loop: each vertex is
// snapped to the nearest point on a fine CellID grid (snapLevel) and
// stored as a varint-encoded delta from the previous vertex's cell,
// rather than three raw float64s. This trades a small amount of precision
// (bounded by the grid's cell size at snapLevel) for a large reduction in
// size on loops with many vertices, which matters for loops transmitted
// or stored at scale rather than built and consumed in-process.
func (l *Loop) EncodeCompressed(w io.Writer, snapLevel int) error {
	if err := writeByte(w, compressedEncodingVersion); err != nil {
		return err
	}
	if err := writeByte(w, byte(snapLevel)); err != nil {
		return err
	}
	n := len(l.vertices)
	if err := writeVarint(w, uint64(n)); err != nil {
		return err
	}
	var prev CellID
	for _, v := range l.vertices {
		id := CellIDFromPoint(v).Parent(snapLevel)
		delta := zigzagEncode(int64(id) - int64(prev))
		if err := writeVarint(w, delta); err != nil {
			return err
		}
		prev = id
	}

	boundEncoded := n >= boundEncodeThreshold
	props := uint64(0)
	if l.originInside {
		props |= propOriginInside
	}
	if boundEncoded {
		props |= propBoundEncoded
	}
	if err := writeVarint(w, props); err != nil {
		return err
	}
	if err := writeVarint(w, uint64(l.depth)); err != nil {
		return err
	}
	if boundEncoded {
		return encodeRect(w, l.bound)
	}
	return nil
}

func decodeCompressed(r io.Reader, maxNumVertices int) (*Loop, error) {
	_, err := readByte(r)
	if err != nil {
		return nil, err
	}
	n, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	if err := checkVertexCount(n, maxNumVertices); err != nil {
		return nil, err
	}
	vertices := make([]Point, n)
	var prev CellID
	for i := range vertices {
		delta, err := readVarint(r)
		if err != nil {
			return nil, err
		}
		prev = CellID(int64(prev) + zigzagDecode(delta))
		cell := CellFromCellID(prev)
		center := cell.Vertex(0).Add(cell.Vertex(1).Vector).Add(cell.Vertex(2).Vector).Add(cell.Vertex(3).Vector)
		vertices[i] = Point{center.Normalize()}
	}
	props, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	depth, err := readVarint(r)
	if err != nil {
		return nil, err
	}

	originInside := props&propOriginInside != 0
	var bound Rect
	if props&propBoundEncoded != 0 {
		bound, err = decodeRect(r)
		if err != nil {
			return nil, err
		}
	} else {
		bound = boundFromVertices(vertices, originInside)
	}
	return loopFromDecoded(vertices, originInside, bound, int(depth)), nil
}

func checkVertexCount(n uint64, max int) error {
	if max > 0 && n > uint64(max) {
		return xerr.Errorf("s2: encoded loop has %d vertices, exceeding the configured maximum of %d", n, max)
	}
	return nil
}

func zigzagEncode(x int64) uint64 { return uint64((x << 1) ^ (x >> 63)) }
func zigzagDecode(x uint64) int64 { return int64(x>>1) ^ -int64(x&1) }

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func writeVarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

func readVarint(r io.Reader) (uint64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = byteReaderFrom(r)
	}
	return binary.ReadUvarint(br)
}

func byteReaderFrom(r io.Reader) io.ByteReader {
	return &singleByteReader{r: r}
}

type singleByteReader struct{ r io.Reader }

func (s *singleByteReader) ReadByte() (byte, error) { return readByte(s.r) }

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// encodeRect writes a Rect as its four interval endpoints, in the order a
// decodeRect call expects: lat.lo, lat.hi, lng.lo, lng.hi.
func encodeRect(w io.Writer, b Rect) error {
	for _, f := range [4]float64{b.Lat.Lo, b.Lat.Hi, b.Lng.Lo, b.Lng.Hi} {
		if err := writeFloat64(w, f); err != nil {
			return err
		}
	}
	return nil
}

func decodeRect(r io.Reader) (Rect, error) {
	var vals [4]float64
	for i := range vals {
		f, err := readFloat64(r)
		if err != nil {
			return Rect{}, err
		}
		vals[i] = f
	}
	return Rect{
		Lat: r1.Interval{Lo: vals[0], Hi: vals[1]},
		Lng: s1.Interval{Lo: vals[2], Hi: vals[3]},
	}, nil
}

func writeFloat64(w io.Writer, f float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
	_, err := w.Write(buf[:])
	return err
}

func readFloat64(r io.Reader) (float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:])), nil
}
