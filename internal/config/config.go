// Package config exposes the module's runtime tunables as pflag flags, in
// the style of the teacher's x.FillCommonFlags helper: a package-level set
// of defaults that a host binary can register onto its own flag set and
// override from the command line.
package config

import (
	"github.com/spf13/pflag"
)

// Options holds the tunables that influence Loop construction and
// decoding. Callers that don't use RegisterFlags can still build one by
// hand via Defaults().
type Options struct {
	// LazyIndexing controls whether a loop's spatial index is built only
	// once query volume crosses the unindexed-query threshold, rather than
	// eagerly at construction time.
	LazyIndexing bool

	// DecodeMaxNumVertices caps the vertex count accepted by the codec's
	// decode path, so decoding an untrusted or corrupt payload cannot be
	// used to force an unbounded allocation.
	DecodeMaxNumVertices int

	// UnindexedQueryThreshold is the query count at which a loop
	// materializes its spatial index; the queries before it are served by
	// brute force.
	UnindexedQueryThreshold int32
}

// Defaults returns the module's default Options.
func Defaults() Options {
	return Options{
		LazyIndexing:            true,
		DecodeMaxNumVertices:    50_000_000,
		UnindexedQueryThreshold: 20,
	}
}

// RegisterFlags registers this package's tunables onto flag, using opts as
// the default values. The parsed values are written into *opts, so the
// caller reads them back out of opts after flag.Parse().
func RegisterFlags(flag *pflag.FlagSet, opts *Options) {
	flag.BoolVar(&opts.LazyIndexing, "lazy_indexing", opts.LazyIndexing,
		"defer building a loop's spatial index until query volume justifies it")
	flag.IntVar(&opts.DecodeMaxNumVertices, "decode_max_num_vertices", opts.DecodeMaxNumVertices,
		"maximum vertex count accepted when decoding a loop")
	flag.Int32Var(&opts.UnindexedQueryThreshold, "unindexed_query_threshold", opts.UnindexedQueryThreshold,
		"number of brute-force queries served before a loop builds its spatial index")
}
