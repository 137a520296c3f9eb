package s2

import "github.com/hypermodeinc/s2loop/internal/xerr"

// QueryType names the kind of spatial relationship a Filter tests for.
type QueryType byte

const (
	// QueryTypeWithin matches when the candidate point lies within the
	// filter's region.
	QueryTypeWithin QueryType = iota
	// QueryTypeContains matches when the filter's region contains the
	// candidate loop.
	QueryTypeContains
	// QueryTypeIntersects matches when the candidate and the filter's
	// region share any point.
	QueryTypeIntersects
)

// Filter answers MatchesFilter queries against a fixed reference region,
// either a single Point or a Loop. It exists so that callers screening
// many candidate geometries against one fixed query region (the common
// shape of a geofencing check) can build the reference region once and
// reuse it, rather than repeating Loop/Point plumbing at every call site.
type Filter struct {
	qtype QueryType
	pt    *Point
	loop  *Loop
}

// NewPointFilter returns a Filter whose reference region is a single
// point. Only QueryTypeWithin and QueryTypeIntersects are meaningful
// against a point region.
func NewPointFilter(qtype QueryType, p Point) (*Filter, error) {
	if qtype == QueryTypeContains {
		return nil, xerr.Errorf("s2: a point region cannot be used in a contains query")
	}
	return &Filter{qtype: qtype, pt: &p}, nil
}

// NewLoopFilter returns a Filter whose reference region is a Loop.
func NewLoopFilter(qtype QueryType, l *Loop) *Filter {
	return &Filter{qtype: qtype, loop: l}
}

// MatchesPoint reports whether p satisfies the filter.
func (f *Filter) MatchesPoint(p Point) bool {
	switch f.qtype {
	case QueryTypeWithin, QueryTypeIntersects:
		if f.pt != nil {
			return f.pt.ApproxEqual(p)
		}
		return f.loop.ContainsPoint(p)
	default:
		return false
	}
}

// MatchesLoop reports whether candidate satisfies the filter.
func (f *Filter) MatchesLoop(candidate *Loop) bool {
	switch f.qtype {
	case QueryTypeContains:
		if f.loop == nil {
			// A point region cannot contain a polygon with any area.
			return false
		}
		return f.loop.Contains(candidate)
	case QueryTypeWithin:
		if f.loop != nil {
			return f.loop.Contains(candidate)
		}
		return f.pt != nil && candidate.ContainsPoint(*f.pt)
	case QueryTypeIntersects:
		if f.loop != nil {
			return f.loop.Intersects(candidate)
		}
		return f.pt != nil && candidate.ContainsPoint(*f.pt)
	default:
		return false
	}
}
