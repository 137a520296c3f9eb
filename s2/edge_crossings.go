package s2

// Crossing indicates how two edges relate to each other.
type Crossing int

const (
	// Cross means the edges cross at a point interior to both.
	Cross Crossing = iota
	// MaybeCross means two vertices from different edges coincide.
	MaybeCross
	// DoNotCross means the edges do not cross.
	DoNotCross
)

// CrossingSign reports whether edge AB crosses edge CD. It implements an
// exact, consistent perturbation model (via RobustSign) such that no three
// points are ever treated as exactly collinear, so the result is always
// well-defined and antisymmetric in the appropriate ways.
func CrossingSign(a, b, c, d Point) Crossing {
	crosser := NewEdgeCrosser(a, b)
	crosser.RestartAt(c)
	return crosser.CrossingSign(d)
}

// VertexCrossing reports whether edges AB and CD "cross" in a way that
// supports point-in-polygon tests by counting crossings, for the case
// where the two edges share at least one vertex (i.e. CrossingSign would
// return MaybeCross). When all four points are distinct, or either edge is
// degenerate, it returns false.
func VertexCrossing(a, b, c, d Point) bool {
	if a == b || c == d {
		return false
	}
	switch {
	case a == d:
		return OrderedCCW(Point{a.Ortho()}, c, b, a)
	case b == c:
		return OrderedCCW(Point{b.Ortho()}, d, a, b)
	case a == c:
		return OrderedCCW(Point{a.Ortho()}, d, b, a)
	case b == d:
		return OrderedCCW(Point{b.Ortho()}, c, a, b)
	}
	return false
}

// EdgeOrVertexCrossing combines CrossingSign and VertexCrossing into a
// single boolean crossing test, suitable for the edge-crossing-parity
// point-in-polygon algorithm.
func EdgeOrVertexCrossing(a, b, c, d Point) bool {
	switch CrossingSign(a, b, c, d) {
	case DoNotCross:
		return false
	case Cross:
		return true
	default:
		return VertexCrossing(a, b, c, d)
	}
}

// EdgeCrosser is a stateful helper for testing a chain of edges B0B1,
// B1B2, ... for crossings against a fixed edge A0A1. Reusing an
// EdgeCrosser across a chain amortizes the setup cost of each crossing
// test, which matters because loop containment and relation queries test
// every edge of one loop against a chain of edges from another.
type EdgeCrosser struct {
	a, b    Point
	haveACB bool
	c       Point
	acb    Direction
}

// NewEdgeCrosser returns an EdgeCrosser for testing crossings against the
// fixed edge AB. Call RestartAt (or ChainCrossingSign from a prior point)
// before calling CrossingSign.
func NewEdgeCrosser(a, b Point) *EdgeCrosser {
	return &EdgeCrosser{a: a, b: b}
}

// NewChainEdgeCrosser returns an EdgeCrosser for edge AB with the chain
// already positioned at c, matching the convenience constructor used by
// the free-function CrossingSign.
func NewChainEdgeCrosser(a, b, c Point) *EdgeCrosser {
	e := NewEdgeCrosser(a, b)
	e.RestartAt(c)
	return e
}

// RestartAt sets the current point of the edge chain to c, without
// assuming anything about the previous point. The cached sign for the
// previous edge is discarded, so the next crossing call recomputes it.
func (e *EdgeCrosser) RestartAt(c Point) {
	e.c = c
	e.haveACB = false
}

// CrossingSign reports whether the edge AB crosses the edge CD, where C is
// the crosser's current point and D is the given point. After the call,
// the crosser's current point becomes D, so a chain of calls can walk
// along a polyline without recomputing shared state.
func (e *EdgeCrosser) CrossingSign(d Point) Crossing {
	if !e.haveACB {
		e.acb = -RobustSign(e.a, e.b, e.c)
		e.haveACB = true
	}
	bda := RobustSign(e.a, e.b, d)
	if e.acb == -bda && e.acb != Indeterminate {
		// AB does not separate C and D, so there is no crossing.
		result := e.crossingSignInternal(d, bda)
		e.c = d
		e.acb = -bda
		return result
	}
	result := e.crossingSignInternal(d, bda)
	e.c = d
	e.acb = -bda
	return result
}

func (e *EdgeCrosser) crossingSignInternal(d Point, bda Direction) Crossing {
	c := e.c
	if c == e.a || c == e.b || d == e.a || d == e.b {
		return MaybeCross
	}

	acb := e.acb
	if acb == Indeterminate {
		acb = -RobustSign(e.a, e.b, c)
	}
	if bda == Indeterminate {
		bda = RobustSign(e.a, e.b, d)
	}
	if acb != bda {
		return DoNotCross
	}

	cbd := -RobustSign(c, d, e.b)
	dac := RobustSign(c, d, e.a)
	if cbd != dac {
		return DoNotCross
	}
	if cbd == Indeterminate {
		return MaybeCross
	}
	return Cross
}

// ChainCrossingSign is equivalent to CrossingSign but is named to match
// the chain-walking usage pattern: each call advances the crosser's
// current point to d.
func (e *EdgeCrosser) ChainCrossingSign(d Point) Crossing {
	return e.CrossingSign(d)
}

// EdgeOrVertexChainCrossing is like EdgeOrVertexCrossing but uses (and
// advances) the crosser's chain state, combining CrossingSign results with
// VertexCrossing for the shared-vertex case.
func (e *EdgeCrosser) EdgeOrVertexChainCrossing(d Point) bool {
	c := e.c
	switch e.ChainCrossingSign(d) {
	case DoNotCross:
		return false
	case Cross:
		return true
	default:
		return VertexCrossing(e.a, e.b, c, d)
	}
}
