package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		q := New[float64, string](4)
		assert.Equal(t, 0, q.Len())

		_, ok := q.Top()
		assert.False(t, ok)
		_, ok = q.Pop()
		assert.False(t, ok)
	})

	t.Run("TopIsWorst", func(t *testing.T) {
		q := New[float64, string](4)
		q.Push(Item[float64, string]{Value: "a", Distance: 1})
		q.Push(Item[float64, string]{Value: "b", Distance: 9})
		q.Push(Item[float64, string]{Value: "c", Distance: 4})

		top, ok := q.Top()
		require.True(t, ok)
		assert.Equal(t, "b", top.Value)
	})

	t.Run("PopOrderDescending", func(t *testing.T) {
		q := New[int, int](8)
		for _, d := range []int{5, 1, 9, 3, 7} {
			q.Push(Item[int, int]{Value: d, Distance: d})
		}

		var popped []int
		for q.Len() > 0 {
			item, ok := q.Pop()
			require.True(t, ok)
			popped = append(popped, item.Distance)
		}
		assert.Equal(t, []int{9, 7, 5, 3, 1}, popped)
	})

	t.Run("PushBoundedKeepsSmallest", func(t *testing.T) {
		const capacity = 3
		q := New[float64, int](capacity)
		for i, d := range []float64{8, 3, 6, 1, 9, 2} {
			q.PushBounded(Item[float64, int]{Value: i, Distance: d}, capacity)
		}
		require.Equal(t, capacity, q.Len())

		var kept []float64
		for q.Len() > 0 {
			item, _ := q.Pop()
			kept = append(kept, item.Distance)
		}
		assert.Equal(t, []float64{3, 2, 1}, kept)
	})

	t.Run("PushBoundedSkipsWorse", func(t *testing.T) {
		const capacity = 2
		q := New[float64, string](capacity)
		q.PushBounded(Item[float64, string]{Value: "near", Distance: 1}, capacity)
		q.PushBounded(Item[float64, string]{Value: "mid", Distance: 2}, capacity)
		q.PushBounded(Item[float64, string]{Value: "far", Distance: 3}, capacity)

		// Equal distance must not replace: first-found wins.
		q.PushBounded(Item[float64, string]{Value: "tie", Distance: 2}, capacity)

		require.Equal(t, capacity, q.Len())
		top, _ := q.Top()
		assert.Equal(t, "mid", top.Value)
	})

	t.Run("Reset", func(t *testing.T) {
		q := New[float64, int](2)
		q.Push(Item[float64, int]{Value: 1, Distance: 1})
		q.Reset()
		assert.Equal(t, 0, q.Len())
	})
}
