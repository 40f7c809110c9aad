// Package kdt provides static k-d trees for exact nearest-neighbor search.
//
// A k-d tree is a balanced binary tree over points in k-dimensional space.
// Each level splits on one axis, cycling through the axes by depth, which
// lets queries prune whole subtrees that provably cannot contain a better
// answer. The structures here are built once from a fixed data set and are
// immutable afterwards: concurrent queries need no locking.
//
// Two front ends share one engine:
//
//   - KdMap associates a value with every point (a spatial key/value map).
//   - KdTree stores points only.
//
// Points are opaque to the package. The caller supplies a CoordsFunc that
// projects a point to its coordinate vector, and optionally a squared
// distance function (squared Euclidean derived from the projection is the
// default).
//
// # Quick Start
//
//	type City struct {
//	    Name     string
//	    Lat, Lon float64
//	}
//
//	cities := []kdt.Entry[City, int]{
//	    {Point: City{"Berlin", 52.52, 13.40}, Value: 3_700_000},
//	    {Point: City{"Paris", 48.86, 2.35}, Value: 2_100_000},
//	}
//
//	m, err := kdt.NewKdMap(cities, func(c City) []float64 {
//	    return []float64{c.Lat, c.Lon}
//	})
//	if err != nil {
//	    return err
//	}
//
//	city, population, _ := m.Nearest(City{Lat: 50.11, Lon: 8.68})
//
// # Queries
//
//   - Nearest: the single closest point.
//   - KNearest: the k closest points, ascending by distance.
//   - InRadius: every point within a fixed radius, unordered.
//   - All: a lazy in-order iterator over every stored pair.
//
// Batch variants (NearestBatch, KNearestBatch, InRadiusBatch) fan queries
// out across CPUs; the tree's immutability makes that safe.
//
// # Axis Types
//
// The axis type is generic over signed numbers, so trees over ints work the
// same as trees over floats. Distances are always squared, avoiding root
// extraction in the hot path.
package kdt
