package s2

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/hypermodeinc/s2loop/s1"
)

// RegularLoop constructs a loop shaped as a regular polygon inscribed in
// a circle of the given angular radius, centered at center, with
// numVertices vertices. It is the standard way test code and callers
// needing a quick synthetic loop (coverage approximations, fixtures)
// build one without hand-listing vertices.
func RegularLoop(center Point, radius s1.Angle, numVertices int) *Loop {
	return RegularLoopWithOptions(center, radius, numVertices, DefaultLoopOptions())
}

// RegularLoopWithOptions is RegularLoop with explicit LoopOptions.
func RegularLoopWithOptions(center Point, radius s1.Angle, numVertices int, opts LoopOptions) *Loop {
	key := regularLoopKey{center: center, radius: radius, numVertices: numVertices}.String()
	if cached, ok := regularLoopCache.Get(key); ok {
		clone := cached.Clone()
		clone.options = opts
		return clone
	}

	vertices := regularPoints(center, radius, numVertices)
	l := LoopFromPointsWithOptions(vertices, opts)
	regularLoopCache.Set(key, l.Clone(), 1)
	return l
}

// regularLoopKey identifies a RegularLoop call's parameters for caching
// purposes. Loops built from the same parameters are geometrically
// identical, so repeated calls (common in test fixtures and in any
// caller that synthesizes many same-shaped coverage loops) can share the
// underlying vertex computation.
type regularLoopKey struct {
	center      Point
	radius      s1.Angle
	numVertices int
}

func (k regularLoopKey) String() string {
	return fmt.Sprintf("%v/%v/%d", k.center, k.radius, k.numVertices)
}

// regularLoopCache bounds the memory spent memoizing RegularLoop results:
// without a cache, a caller building many coverage approximations at the
// same radius and vertex count (a common pattern when approximating caps
// or disks) would recompute and reallocate the same vertex slice
// repeatedly.
var regularLoopCache = mustNewCache()

func mustNewCache() *ristretto.Cache[string, *Loop] {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *Loop]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		panic(err)
	}
	return cache
}
