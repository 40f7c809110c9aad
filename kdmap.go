package kdt

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/nh2/kdt/distance"
	"github.com/nh2/kdt/internal/searcher"
)

// Entry pairs a point with its stored value.
type Entry[P, V any] struct {
	Point P
	Value V
}

// node is one stored pair plus the split it owns. Left descendants are
// strictly below the split value on the node's axis, right descendants are
// at or above it.
type node[A distance.Number, P, V any] struct {
	coords []A // projected once at build time
	point  P
	value  V
	axis   int
	left   *node[A, P, V]
	right  *node[A, P, V]
}

// KdMap is a static k-d tree mapping points to values.
//
// It is built once from a non-empty set of entries and never mutated
// afterwards, so any number of goroutines may query it concurrently without
// locking. The coordinate projection and distance function are fixed at
// build time.
type KdMap[A distance.Number, P, V any] struct {
	root   *node[A, P, V]
	size   int
	dim    int
	depth  int
	coords CoordsFunc[A, P]
	dist   DistanceFunc[A, P]
	logger *Logger
}

// Stats describes a built tree.
type Stats struct {
	Size      int // number of stored entries
	Dimension int // coordinate-vector length k
	Depth     int // number of levels; ceil(log2(Size+1)) when balanced
}

// NewKdMap builds a KdMap from entries.
//
// The coordinate-vector length of the first entry fixes the tree's
// dimensionality; every entry is validated against it. Construction fails
// with ErrEmptyInput for zero entries and with *ErrDimensionMismatch for
// inconsistent projections.
//
// The tree shape is deterministic: building twice from the same slice
// yields structurally identical trees.
func NewKdMap[A distance.Number, P, V any](entries []Entry[P, V], coords CoordsFunc[A, P], optFns ...func(o *Options[A, P])) (*KdMap[A, P, V], error) {
	if coords == nil {
		return nil, ErrNilCoords
	}
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	opts := applyOptions(coords, optFns)

	dim := len(coords(entries[0].Point))
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	nodes := make([]*node[A, P, V], len(entries))
	backing := make([]node[A, P, V], len(entries))
	for i, e := range entries {
		c := coords(e.Point)
		if len(c) != dim {
			return nil, &ErrDimensionMismatch{Expected: dim, Actual: len(c)}
		}
		backing[i] = node[A, P, V]{coords: c, point: e.Point, value: e.Value}
		nodes[i] = &backing[i]
	}

	m := &KdMap[A, P, V]{
		root:   build(nodes, 0, dim),
		size:   len(entries),
		dim:    dim,
		coords: coords,
		dist:   opts.Distance,
		logger: opts.Logger,
	}
	m.depth = height(m.root)
	m.logger.LogBuild(m.size, m.dim, m.depth)

	return m, nil
}

// build recursively partitions nodes at the median of the cycling axis.
//
// The working set is stable-sorted on the axis value and the node is the
// first element holding the median value. That keeps everything strictly
// below the split on the left, everything equal or above on the right, and
// makes the resulting shape reproducible for a given input order.
func build[A distance.Number, P, V any](nodes []*node[A, P, V], depth, dim int) *node[A, P, V] {
	if len(nodes) == 0 {
		return nil
	}

	axis := depth % dim
	if len(nodes) == 1 {
		n := nodes[0]
		n.axis = axis
		return n
	}

	slices.SortStableFunc(nodes, func(a, b *node[A, P, V]) int {
		return cmp.Compare(a.coords[axis], b.coords[axis])
	})

	mid := len(nodes) / 2
	for mid > 0 && nodes[mid-1].coords[axis] == nodes[mid].coords[axis] {
		mid--
	}

	n := nodes[mid]
	n.axis = axis
	n.left = build(nodes[:mid], depth+1, dim)
	n.right = build(nodes[mid+1:], depth+1, dim)
	return n
}

func height[A distance.Number, P, V any](n *node[A, P, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// queryCoords projects a query point and validates its length.
func (m *KdMap[A, P, V]) queryCoords(query P) ([]A, error) {
	qc := m.coords(query)
	if len(qc) != m.dim {
		return nil, &ErrDimensionMismatch{Expected: m.dim, Actual: len(qc)}
	}
	return qc, nil
}

// Nearest returns the stored entry closest to query.
//
// The only failure mode is a query that projects to the wrong coordinate
// length; a valid query on a built tree always succeeds.
func (m *KdMap[A, P, V]) Nearest(query P) (P, V, error) {
	qc, err := m.queryCoords(query)
	if err != nil {
		var zp P
		var zv V
		return zp, zv, err
	}

	best := m.root
	bestDist := m.dist(query, m.root.point)
	m.nearest(m.root, query, qc, &best, &bestDist)
	return best.point, best.value, nil
}

// nearest descends into the subtree on the query's side of the split first,
// then into the far side only if a point there could still beat the current
// best. The far side's lower bound is the squared gap to the splitting
// hyperplane; a strict comparison keeps the first-found candidate on ties.
func (m *KdMap[A, P, V]) nearest(n *node[A, P, V], query P, qc []A, best **node[A, P, V], bestDist *A) {
	if n == nil {
		return
	}

	if d := m.dist(query, n.point); d < *bestDist {
		*best = n
		*bestDist = d
	}

	near, far := n.left, n.right
	if qc[n.axis] >= n.coords[n.axis] {
		near, far = far, near
	}

	m.nearest(near, query, qc, best, bestDist)

	gap := qc[n.axis] - n.coords[n.axis]
	if gap*gap < *bestDist {
		m.nearest(far, query, qc, best, bestDist)
	}
}

// InRadius returns every stored entry whose squared distance to query is at
// most radius squared. The result order is traversal order and carries no
// meaning. A negative radius fails with ErrNegativeRadius.
func (m *KdMap[A, P, V]) InRadius(radius A, query P) ([]Entry[P, V], error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeRadius, radius)
	}
	qc, err := m.queryCoords(query)
	if err != nil {
		return nil, err
	}

	threshold := radius * radius
	var out []Entry[P, V]
	m.inRadius(m.root, query, qc, threshold, &out)
	return out, nil
}

func (m *KdMap[A, P, V]) inRadius(n *node[A, P, V], query P, qc []A, threshold A, out *[]Entry[P, V]) {
	if n == nil {
		return
	}

	if d := m.dist(query, n.point); d <= threshold {
		*out = append(*out, Entry[P, V]{Point: n.point, Value: n.value})
	}

	near, far := n.left, n.right
	if qc[n.axis] >= n.coords[n.axis] {
		near, far = far, near
	}

	m.inRadius(near, query, qc, threshold, out)

	// The threshold is fixed, so points exactly on the boundary behind the
	// hyperplane must still be visited.
	gap := qc[n.axis] - n.coords[n.axis]
	if gap*gap <= threshold {
		m.inRadius(far, query, qc, threshold, out)
	}
}

// KNearest returns the k stored entries closest to query, ascending by
// squared distance. Fewer than k entries are returned only when the tree
// holds fewer; k == 0 yields an empty result and k < 0 fails with
// ErrInvalidK.
func (m *KdMap[A, P, V]) KNearest(k int, query P) ([]Entry[P, V], error) {
	if k < 0 {
		err := fmt.Errorf("%w: %d", ErrInvalidK, k)
		m.logger.LogSearch(k, 0, err)
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}
	qc, err := m.queryCoords(query)
	if err != nil {
		m.logger.LogSearch(k, 0, err)
		return nil, err
	}

	q := searcher.New[A, Entry[P, V]](min(k, m.size))
	m.kNearest(m.root, query, qc, k, q)

	// Popping a max-heap yields worst-first; fill back to front.
	out := make([]Entry[P, V], q.Len())
	for i := len(out) - 1; i >= 0; i-- {
		item, _ := q.Pop()
		out[i] = item.Value
	}
	m.logger.LogSearch(k, len(out), nil)
	return out, nil
}

func (m *KdMap[A, P, V]) kNearest(n *node[A, P, V], query P, qc []A, k int, q *searcher.Queue[A, Entry[P, V]]) {
	if n == nil {
		return
	}

	q.PushBounded(searcher.Item[A, Entry[P, V]]{
		Value:    Entry[P, V]{Point: n.point, Value: n.value},
		Distance: m.dist(query, n.point),
	}, k)

	near, far := n.left, n.right
	if qc[n.axis] >= n.coords[n.axis] {
		near, far = far, near
	}

	m.kNearest(near, query, qc, k, q)

	// The far side is prunable only once the queue is full: until then any
	// point improves the result.
	gap := qc[n.axis] - n.coords[n.axis]
	if q.Len() < k {
		m.kNearest(far, query, qc, k, q)
	} else if worst, _ := q.Top(); gap*gap <= worst.Distance {
		m.kNearest(far, query, qc, k, q)
	}
}

// All returns an in-order (left, node, right) iterator over every stored
// pair. The iterator is lazy, finite, and restartable: ranging over it again
// replays the same sequence. Breaking out of the loop stops the walk early.
func (m *KdMap[A, P, V]) All() iter.Seq2[P, V] {
	return func(yield func(P, V) bool) {
		m.root.walk(yield)
	}
}

func (n *node[A, P, V]) walk(yield func(P, V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walk(yield) && yield(n.point, n.value) && n.right.walk(yield)
}

// Entries returns all stored entries in traversal order.
func (m *KdMap[A, P, V]) Entries() []Entry[P, V] {
	out := make([]Entry[P, V], 0, m.size)
	for p, v := range m.All() {
		out = append(out, Entry[P, V]{Point: p, Value: v})
	}
	return out
}

// Points returns all stored points in traversal order.
func (m *KdMap[A, P, V]) Points() []P {
	out := make([]P, 0, m.size)
	for p := range m.All() {
		out = append(out, p)
	}
	return out
}

// Values returns all stored values in traversal order.
func (m *KdMap[A, P, V]) Values() []V {
	out := make([]V, 0, m.size)
	for _, v := range m.All() {
		out = append(out, v)
	}
	return out
}

// Size returns the number of stored entries in O(1).
func (m *KdMap[A, P, V]) Size() int {
	return m.size
}

// Dimension returns the coordinate-vector length k.
func (m *KdMap[A, P, V]) Dimension() int {
	return m.dim
}

// Stats returns a snapshot of the tree's shape.
func (m *KdMap[A, P, V]) Stats() Stats {
	return Stats{
		Size:      m.size,
		Dimension: m.dim,
		Depth:     m.depth,
	}
}
