// Package distance provides squared-distance functions over coordinate
// vectors. All functions return squared distances: callers compare against
// squared thresholds instead of paying for a square root per comparison.
package distance

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the scalar axis type of a coordinate vector.
//
// Unsigned integers are excluded: hyperplane pruning subtracts axis values,
// which would wrap around for unsigned types.
type Number interface {
	constraints.Signed | constraints.Float
}

// Func is a function type for squared-distance calculation between two
// coordinate vectors of equal length.
type Func[A Number] func(a, b []A) A

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// vectors. Assumes vectors are the same length (caller's responsibility).
func SquaredL2[A Number](a, b []A) A {
	var sum A
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// WeightedSquaredL2 returns a squared L2 distance function that scales the
// squared difference along each axis by the corresponding weight. Weights
// must be non-negative for the result to behave like a distance.
//
// The returned function still decomposes along axes, so k-d tree pruning
// remains exact for it.
func WeightedSquaredL2[A Number](weights []A) Func[A] {
	return func(a, b []A) A {
		var sum A
		for i := range a {
			d := a[i] - b[i]
			sum += weights[i] * d * d
		}
		return sum
	}
}
