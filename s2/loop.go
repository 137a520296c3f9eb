package s2

import (
	"sync"
	"sync/atomic"

	"github.com/hypermodeinc/s2loop/r3"
)

// LoopOptions controls how a Loop builds and maintains its spatial index.
type LoopOptions struct {
	// LazyIndexing, when true, defers building the loop's spatial index
	// until the ContainsPoint call count reaches unindexedQueryThreshold.
	// When false, a loop with more than bruteForceVertexThreshold vertices
	// builds its index on its first query; smaller loops are answered by
	// brute force either way.
	LazyIndexing bool
}

// DefaultLoopOptions returns the options used when a Loop is constructed
// without an explicit LoopOptions.
func DefaultLoopOptions() LoopOptions {
	return LoopOptions{LazyIndexing: true}
}

// unindexedQueryThreshold is the ContainsPoint call count at which a loop
// with lazy indexing builds its spatial index; the calls before it are
// served by brute force. It
// exists because building the index has a fixed cost that is only worth
// paying if the loop will be queried repeatedly; a one-off containment
// check on a large loop is cheaper done by brute force.
const unindexedQueryThreshold = 20

// bruteForceVertexThreshold is the vertex count at or below which
// ContainsPoint always uses brute force, regardless of query volume: for
// small loops, building and walking a spatial index costs more than just
// checking every edge.
const bruteForceVertexThreshold = 32

// emptyLoopPoint and fullLoopPoint are the sentinel single vertices used to
// represent the two degenerate loops that contain, respectively, no
// points and every point. They are deliberately placed at the poles,
// where they can never collide with a real query point's edge-crossing
// ray toward OriginPoint.
var (
	emptyLoopPoint = Point{r3.Vector{X: 0, Y: 0, Z: 1}}
	fullLoopPoint  = Point{r3.Vector{X: 0, Y: 0, Z: -1}}
)

// Loop represents a closed boundary on the sphere: a sequence of vertices
// where the last vertex is implicitly connected to the first. A Loop with
// no vertices at all is not a valid state; the empty and full loops are
// each represented by a single sentinel vertex so that all the machinery
// that walks edges keeps working without special-casing "no boundary".
//
// Loops may be convex or concave; the interior is whichever side keeps the
// loop boundary traversed counterclockwise, by convention, which the
// factory and codec constructors are responsible for maintaining. Cycles
// may be degenerate (a single vertex) to represent the empty or full loop.
type Loop struct {
	vertices []Point

	// originInside records whether OriginPoint() is inside the loop. This
	// is computed once at construction and is the seed value that the
	// edge-crossing-parity walk in ContainsPoint flips from.
	originInside bool

	// depth is the nesting depth of this loop within a polygon, used only
	// by callers assembling loops into polygons; a bare Loop never
	// consults it itself, but Clone and the codec preserve it.
	depth int

	bound           Rect
	subregionBound  Rect

	options LoopOptions

	indexOnce   sync.Once
	index       *edgeIndex
	numUnindexedCalls int32
}

// LoopFromPoints constructs a loop from the given vertices using the
// default options. The vertices must already be unit length and should be
// ordered so that the loop's interior is on the left as you walk the
// boundary; Init panics^Wreports invalid loops only when Validate is
// called explicitly, matching the teacher's convention of separating
// construction from validation.
func LoopFromPoints(vertices []Point) *Loop {
	return LoopFromPointsWithOptions(vertices, DefaultLoopOptions())
}

// LoopFromPointsWithOptions is LoopFromPoints with explicit LoopOptions.
func LoopFromPointsWithOptions(vertices []Point, opts LoopOptions) *Loop {
	l := &Loop{options: opts}
	l.init(vertices)
	return l
}

// EmptyLoop returns the special loop that contains no points.
func EmptyLoop() *Loop {
	l := &Loop{options: DefaultLoopOptions()}
	l.init([]Point{emptyLoopPoint})
	return l
}

// FullLoop returns the special loop that contains every point.
func FullLoop() *Loop {
	l := &Loop{options: DefaultLoopOptions()}
	l.init([]Point{fullLoopPoint})
	return l
}

func (l *Loop) init(vertices []Point) {
	l.vertices = vertices
	l.index = nil
	l.numUnindexedCalls = 0
	l.indexOnce = sync.Once{}
	l.initOriginAndBound()
}

// loopFromDecoded builds a loop directly from previously-encoded state,
// skipping the originInside/bound recomputation that LoopFromPoints does:
// a decode that already read those fields off the wire would otherwise
// throw away the work that encoding them was for.
func loopFromDecoded(vertices []Point, originInside bool, bound Rect, depth int) *Loop {
	l := &Loop{
		vertices:       vertices,
		originInside:   originInside,
		bound:          bound,
		subregionBound: expandForSubregions(bound),
		depth:          depth,
		options:        DefaultLoopOptions(),
	}
	return l
}

// IsEmpty reports whether this is the special empty loop.
func (l *Loop) IsEmpty() bool { return l.isEmptyOrFull() && !l.originInside }

// IsFull reports whether this is the special full loop.
func (l *Loop) IsFull() bool { return l.isEmptyOrFull() && l.originInside }

func (l *Loop) isEmptyOrFull() bool {
	return len(l.vertices) == 1
}

// NumVertices returns the number of vertices in the loop.
func (l *Loop) NumVertices() int { return len(l.vertices) }

// Vertex returns the vertex at the given index, modulo the vertex count so
// that Vertex(NumVertices()) wraps back to Vertex(0), which is convenient
// for edge iteration.
func (l *Loop) Vertex(i int) Point {
	if i >= len(l.vertices) {
		i -= len(l.vertices)
	}
	return l.vertices[i]
}

// Edge returns the i-th directed edge of the loop, from Vertex(i) to
// Vertex(i+1).
func (l *Loop) Edge(i int) (a, b Point) {
	return l.Vertex(i), l.Vertex(i + 1)
}

// Depth returns the nesting depth of the loop.
func (l *Loop) Depth() int { return l.depth }

// SetDepth sets the nesting depth of the loop.
func (l *Loop) SetDepth(depth int) { l.depth = depth }

// Clone returns a deep copy of the loop. The clone starts with a fresh,
// unbuilt spatial index: cached index state is an implementation detail of
// query performance, not part of the loop's identity.
func (l *Loop) Clone() *Loop {
	vertices := make([]Point, len(l.vertices))
	copy(vertices, l.vertices)
	clone := &Loop{
		vertices: vertices,
		originInside: l.originInside,
		depth:    l.depth,
		bound:    l.bound,
		subregionBound: l.subregionBound,
		options:  l.options,
	}
	return clone
}

// resetIndex invalidates the loop's cached spatial index, forcing the next
// query to rebuild it. Call this after any in-place mutation of vertices
// (Normalize, Invert).
func (l *Loop) resetIndex() {
	l.index = nil
	atomic.StoreInt32(&l.numUnindexedCalls, 0)
	l.indexOnce = sync.Once{}
}
