package generate_test

import (
	"fmt"

	"github.com/matzehuels/graphgen/pkg/generate"
)

func ExampleGrid() {
	g, err := generate.Grid(2, 3, generate.WithSeed(1), generate.WithWeights(1, 1))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("V=%d E=%d\n", g.Vertices, g.NumEdges())
	fmt.Println(g.Edges[0])
	// Output:
	// V=6 E=14
	// {0 1 1}
}

func ExampleDense() {
	g, err := generate.Dense(3, 6, generate.WithSeed(1))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	s := g.ComputeStats()
	fmt.Printf("V=%d E=%d loops=%d duplicates=%d\n", s.Vertices, s.Edges, s.SelfLoops, s.Duplicates)
	// Output:
	// V=3 E=6 loops=0 duplicates=0
}

func ExampleDense_tooManyEdges() {
	_, err := generate.Dense(3, 7, generate.WithSeed(1))
	fmt.Println(err)
	// Output:
	// CONFIGURATION: Dense: 7 edges exceed the maximum 6 for 3 vertices
}
