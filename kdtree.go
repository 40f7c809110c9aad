package kdt

import (
	"iter"

	"github.com/nh2/kdt/distance"
)

// KdTree is a static k-d tree over bare points.
//
// It is a thin adapter over KdMap with a unit value bound to every point;
// the tree logic is not duplicated. See KdMap for the semantics of each
// operation.
type KdTree[A distance.Number, P any] struct {
	m *KdMap[A, P, struct{}]
}

// NewKdTree builds a KdTree from points. It fails with ErrEmptyInput for
// zero points and with *ErrDimensionMismatch for inconsistent projections.
func NewKdTree[A distance.Number, P any](points []P, coords CoordsFunc[A, P], optFns ...func(o *Options[A, P])) (*KdTree[A, P], error) {
	entries := make([]Entry[P, struct{}], len(points))
	for i, p := range points {
		entries[i] = Entry[P, struct{}]{Point: p}
	}

	m, err := NewKdMap(entries, coords, optFns...)
	if err != nil {
		return nil, err
	}
	return &KdTree[A, P]{m: m}, nil
}

// Nearest returns the stored point closest to query.
func (t *KdTree[A, P]) Nearest(query P) (P, error) {
	p, _, err := t.m.Nearest(query)
	return p, err
}

// InRadius returns every stored point whose squared distance to query is at
// most radius squared, in unspecified order.
func (t *KdTree[A, P]) InRadius(radius A, query P) ([]P, error) {
	entries, err := t.m.InRadius(radius, query)
	if err != nil {
		return nil, err
	}
	return points(entries), nil
}

// KNearest returns the k stored points closest to query, ascending by
// squared distance.
func (t *KdTree[A, P]) KNearest(k int, query P) ([]P, error) {
	entries, err := t.m.KNearest(k, query)
	if err != nil {
		return nil, err
	}
	return points(entries), nil
}

// All returns an in-order iterator over every stored point. It is lazy,
// finite, and restartable.
func (t *KdTree[A, P]) All() iter.Seq[P] {
	return func(yield func(P) bool) {
		for p := range t.m.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// Points returns all stored points in traversal order.
func (t *KdTree[A, P]) Points() []P {
	return t.m.Points()
}

// Size returns the number of stored points in O(1).
func (t *KdTree[A, P]) Size() int {
	return t.m.Size()
}

// Dimension returns the coordinate-vector length k.
func (t *KdTree[A, P]) Dimension() int {
	return t.m.Dimension()
}

// Stats returns a snapshot of the tree's shape.
func (t *KdTree[A, P]) Stats() Stats {
	return t.m.Stats()
}

func points[P, V any](entries []Entry[P, V]) []P {
	out := make([]P, len(entries))
	for i, e := range entries {
		out[i] = e.Point
	}
	return out
}
