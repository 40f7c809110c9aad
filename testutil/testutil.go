// Package testutil provides seeded random point generators and brute-force
// reference searches used to validate the tree against ground truth.
package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/nh2/kdt/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates random points with axis values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// UniformRangePoints generates random points with axis values in range
// [minVal, maxVal).
func (r *RNG) UniformRangePoints(num, dim int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates random points with axis values from a standard
// normal distribution.
func (r *RNG) GaussianPoints(num, dim int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// IntPoints generates random integer points with axis values in [0, bound).
// Small bounds produce many duplicate axis values, which exercises the
// tie-breaking paths of a build.
func (r *RNG) IntPoints(num, dim, bound int) [][]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]int, num)
	for i := range num {
		p := make([]int, dim)
		for j := range p {
			p[j] = r.rand.Intn(bound)
		}
		points[i] = p
	}

	return points
}

// Neighbor pairs a point's position in the input slice with its squared
// distance to the query.
type Neighbor[A distance.Number] struct {
	Index    int
	Distance A
}

// BruteNearest performs an exact linear scan for ground truth and returns
// the closest point's index and squared distance. The first of several
// equally close points wins. Panics on an empty slice.
func BruteNearest[A distance.Number, P any](points []P, query P, dist func(a, b P) A) (int, A) {
	bestIdx := 0
	bestDist := dist(query, points[0])
	for i, p := range points[1:] {
		if d := dist(query, p); d < bestDist {
			bestIdx = i + 1
			bestDist = d
		}
	}
	return bestIdx, bestDist
}

// BruteKNearest performs an exact linear scan for ground truth and returns
// the k nearest neighbors ascending by squared distance. Ties keep input
// order.
func BruteKNearest[A distance.Number, P any](k int, points []P, query P, dist func(a, b P) A) []Neighbor[A] {
	neighbors := make([]Neighbor[A], len(points))
	for i, p := range points {
		neighbors[i] = Neighbor[A]{Index: i, Distance: dist(query, p)}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// BruteInRadius performs an exact linear scan for ground truth and returns
// the indices of all points within radius of the query, in input order.
func BruteInRadius[A distance.Number, P any](radius A, points []P, query P, dist func(a, b P) A) []int {
	threshold := radius * radius
	var out []int
	for i, p := range points {
		if dist(query, p) <= threshold {
			out = append(out, i)
		}
	}
	return out
}
