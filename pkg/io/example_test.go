package io_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
	graphio "github.com/matzehuels/graphgen/pkg/io"
)

func ExampleWriteEdgeList() {
	g, _ := generate.Grid(1, 2, generate.WithWeights(3, 3))
	if err := graphio.WriteEdgeList(os.Stdout, graph.NewInstance(g)); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// 2 2
	// 0 1 3
	// 1 0 3
	// 0 1
}

func ExampleReadEdgeList() {
	in, err := graphio.ReadEdgeList(strings.NewReader("3 2\n0 1 4\n1 2 6\n0 2\n"))
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("V=%d E=%d query=%d->%d\n", in.Graph.Vertices, in.Graph.NumEdges(), in.Source, in.Destination)
	// Output:
	// V=3 E=2 query=0->2
}
