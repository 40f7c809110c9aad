package kdt_test

import (
	"fmt"
	"log"

	"github.com/nh2/kdt"
)

type city struct {
	Name     string
	Lat, Lon float64
}

func cityCoords(c city) []float64 {
	return []float64{c.Lat, c.Lon}
}

// Example demonstrates a spatial key/value lookup with KdMap.
func Example() {
	cities := []kdt.Entry[city, int]{
		{Point: city{"Berlin", 52.52, 13.40}, Value: 3_700_000},
		{Point: city{"Paris", 48.86, 2.35}, Value: 2_100_000},
		{Point: city{"Madrid", 40.42, -3.70}, Value: 3_200_000},
		{Point: city{"Rome", 41.90, 12.50}, Value: 2_800_000},
	}

	m, err := kdt.NewKdMap(cities, cityCoords)
	if err != nil {
		log.Fatal(err)
	}

	frankfurt := city{Lat: 50.11, Lon: 8.68}
	nearest, population, err := m.Nearest(frankfurt)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s (%d inhabitants)\n", nearest.Name, population)
	// Output: Berlin (3700000 inhabitants)
}

// ExampleKdMap_KNearest returns the k closest points ascending by distance.
func ExampleKdMap_KNearest() {
	cities := []kdt.Entry[city, int]{
		{Point: city{"Berlin", 52.52, 13.40}, Value: 3_700_000},
		{Point: city{"Paris", 48.86, 2.35}, Value: 2_100_000},
		{Point: city{"Madrid", 40.42, -3.70}, Value: 3_200_000},
		{Point: city{"Rome", 41.90, 12.50}, Value: 2_800_000},
	}

	m, err := kdt.NewKdMap(cities, cityCoords)
	if err != nil {
		log.Fatal(err)
	}

	results, err := m.KNearest(2, city{Lat: 50.11, Lon: 8.68})
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range results {
		fmt.Println(e.Point.Name)
	}
	// Output:
	// Berlin
	// Paris
}

// ExampleKdTree demonstrates the point-only view.
func ExampleKdTree() {
	points := []city{
		{"Berlin", 52.52, 13.40},
		{"Paris", 48.86, 2.35},
		{"Madrid", 40.42, -3.70},
	}

	tr, err := kdt.NewKdTree(points, cityCoords)
	if err != nil {
		log.Fatal(err)
	}

	within, err := tr.InRadius(9, city{Lat: 48.0, Lon: 6.0})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tr.Size(), len(within))
	// Output: 3 2
}
