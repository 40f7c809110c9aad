package kdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nh2/kdt/distance"
	"github.com/nh2/kdt/testutil"
)

func fixturePoints() []point2 {
	return []point2{{0, 0}, {1, 1}, {5, 5}, {3, 1}}
}

func TestNewKdTree(t *testing.T) {
	t.Run("EmptyInput", func(t *testing.T) {
		_, err := NewKdTree([]point2(nil), point2Coords)
		require.ErrorIs(t, err, ErrEmptyInput)
	})

	t.Run("Size", func(t *testing.T) {
		tr, err := NewKdTree(fixturePoints(), point2Coords)
		require.NoError(t, err)
		assert.Equal(t, 4, tr.Size())
		assert.Equal(t, 2, tr.Dimension())
		assert.Equal(t, 4, tr.Stats().Size)
	})
}

func TestKdTreeQueries(t *testing.T) {
	tr, err := NewKdTree(fixturePoints(), point2Coords)
	require.NoError(t, err)

	t.Run("Nearest", func(t *testing.T) {
		p, err := tr.Nearest(point2{0.1, 0.1})
		require.NoError(t, err)
		assert.Equal(t, point2{0, 0}, p)
	})

	t.Run("KNearest", func(t *testing.T) {
		got, err := tr.KNearest(2, point2{2, 1})
		require.NoError(t, err)
		assert.Equal(t, []point2{{3, 1}, {1, 1}}, got)
	})

	t.Run("InRadius", func(t *testing.T) {
		got, err := tr.InRadius(2, point2{1, 1})
		require.NoError(t, err)
		assert.ElementsMatch(t, []point2{{0, 0}, {1, 1}, {3, 1}}, got)
	})

	t.Run("All", func(t *testing.T) {
		var collected []point2
		for p := range tr.All() {
			collected = append(collected, p)
		}
		assert.ElementsMatch(t, fixturePoints(), collected)
		assert.Equal(t, collected, tr.Points())
	})

	t.Run("EarlyBreak", func(t *testing.T) {
		var seen int
		for range tr.All() {
			seen++
			break
		}
		assert.Equal(t, 1, seen)
	})
}

// TestKdTreeMatchesKdMap pins the facade to the engine: both views over the
// same data must answer identically.
func TestKdTreeMatchesKdMap(t *testing.T) {
	rng := testutil.NewRNG(31)
	points := rng.UniformPoints(120, 2)

	tr, err := NewKdTree(points, identityCoords)
	require.NoError(t, err)
	m, err := NewKdMap(asEntries(points), identityCoords)
	require.NoError(t, err)

	for _, q := range rng.UniformPoints(20, 2) {
		fromTree, err := tr.KNearest(5, q)
		require.NoError(t, err)
		fromMap, err := m.KNearest(5, q)
		require.NoError(t, err)

		require.Len(t, fromTree, len(fromMap))
		for i := range fromTree {
			assert.Equal(t, distance.SquaredL2(q, fromMap[i].Point), distance.SquaredL2(q, fromTree[i]))
		}
	}
}
