package s2

import "fmt"

// ErrorKind classifies why a Loop failed validation.
type ErrorKind int

const (
	// ErrNotUnitLength means a vertex is not a unit-length vector.
	ErrNotUnitLength ErrorKind = iota
	// ErrNotEnoughVertices means the loop has fewer than the minimum
	// number of vertices required (1, interpreted as empty/full, or at
	// least 3 for a proper boundary).
	ErrNotEnoughVertices
	// ErrDuplicateVertices means two vertices coincide, whether adjacent
	// (a degenerate edge) or not.
	ErrDuplicateVertices
	// ErrSelfIntersects means two non-adjacent edges of the loop cross.
	ErrSelfIntersects
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNotUnitLength:
		return "vertex is not unit length"
	case ErrNotEnoughVertices:
		return "loop has too few vertices"
	case ErrDuplicateVertices:
		return "loop has duplicate vertices"
	case ErrSelfIntersects:
		return "loop has a self-intersection"
	default:
		return "unknown loop validation error"
	}
}

// ValidationError reports why a Loop is invalid, identifying the offending
// vertex index(es) so callers can point a user at the exact problem.
type ValidationError struct {
	Kind    ErrorKind
	Index   int
	OtherIndex int
}

func (e *ValidationError) Error() string {
	if e.OtherIndex != 0 || e.Kind == ErrDuplicateVertices || e.Kind == ErrSelfIntersects {
		return fmt.Sprintf("%s: vertex %d and vertex %d", e.Kind, e.Index, e.OtherIndex)
	}
	return fmt.Sprintf("%s: vertex %d", e.Kind, e.Index)
}
