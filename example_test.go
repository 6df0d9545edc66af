package lloyd_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/random"
)

// Example demonstrates a reproducible run with fixed centroid seeds.
func Example() {
	points := []model.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 1}}

	// Seeds centroid 0 at (0,0) and centroid 1 at (10,0).
	eng := lloyd.New(lloyd.WithRandomSource(random.NewSequence(0, 0, 10, 0)))

	res, err := eng.Run(points, lloyd.Config{K: 2, MaxIterations: 5})
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range res.Points {
		fmt.Println(p.Cluster)
	}
	fmt.Printf("inertia: %.1f\n", res.Inertia)
	// Output:
	// 0
	// 0
	// 1
	// 1
	// inertia: 1.0
}

// Example_silhouette demonstrates requesting the silhouette coefficient.
func Example_silhouette() {
	points := []model.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 10, Y: 0}, {X: 10, Y: 1}}
	eng := lloyd.New(lloyd.WithRandomSource(random.NewSequence(0, 0, 10, 0)))

	res, err := eng.Run(points, lloyd.Config{K: 2, MaxIterations: 5, Silhouette: true})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("silhouette: %.3f\n", *res.Silhouette)
	// Output: silhouette: 0.900
}
