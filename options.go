package kdt

import (
	"github.com/nh2/kdt/distance"
)

// CoordsFunc projects a point to its coordinate vector.
//
// It must be pure and total: for every point ever passed to one tree it must
// return a vector of the same fixed length. The length of the first point's
// vector fixes the tree's dimensionality; every other point is checked
// against it at build time.
type CoordsFunc[A distance.Number, P any] func(p P) []A

// DistanceFunc computes the squared distance between two points.
//
// It must be pure and symmetric, and smaller results must mean closer
// points. Tree pruning additionally assumes the function decomposes along
// axes the way squared Euclidean distance does; axis-separable functions
// such as weighted squared Euclidean keep queries exact, while functions
// without that property may cause pruning to miss true answers.
type DistanceFunc[A distance.Number, P any] func(a, b P) A

// Options contains configuration options shared by KdMap and KdTree.
type Options[A distance.Number, P any] struct {
	// Distance is the squared-distance function used by all queries.
	// If nil, squared Euclidean distance over the projected coordinate
	// vectors is used.
	Distance DistanceFunc[A, P]

	// Logger receives structured build and query logs.
	// If nil, logging is disabled.
	Logger *Logger
}

func applyOptions[A distance.Number, P any](coords CoordsFunc[A, P], optFns []func(o *Options[A, P])) Options[A, P] {
	opts := Options[A, P]{}

	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}

	if opts.Distance == nil {
		opts.Distance = func(a, b P) A {
			return distance.SquaredL2(coords(a), coords(b))
		}
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	return opts
}
