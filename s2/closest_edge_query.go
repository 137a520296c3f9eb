package s2

import "github.com/hypermodeinc/s2loop/s1"

// ClosestEdgeQuery answers nearest-edge questions against a fixed Loop. It
// exists as a named, reusable query object (rather than the bare
// Loop.Distance/Project methods) for callers that want to issue many
// queries against the same loop and may, in the future, want query-level
// options such as a maximum search radius; today it is a thin wrapper,
// but it is the extension point for that.
type ClosestEdgeQuery struct {
	loop *Loop
}

// NewClosestEdgeQuery returns a query bound to loop.
func NewClosestEdgeQuery(loop *Loop) *ClosestEdgeQuery {
	return &ClosestEdgeQuery{loop: loop}
}

// GetDistance returns the distance from p to the loop's boundary.
func (q *ClosestEdgeQuery) GetDistance(p Point) s1.Angle {
	return s1.Angle(q.loop.DistanceToBoundary(p))
}

// Project returns the closest point on the loop's boundary to p.
func (q *ClosestEdgeQuery) Project(p Point) Point {
	return q.loop.ProjectToBoundary(p)
}
