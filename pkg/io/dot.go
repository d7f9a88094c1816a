package io

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// DefaultDOTMaxEdges is the largest edge list [ToDOT] accepts by default.
// Graphviz layouts of bigger graphs take minutes and are unreadable anyway.
const DefaultDOTMaxEdges = 2000

// DOTOptions configures Graphviz export.
type DOTOptions struct {
	// MaxEdges refuses larger instances; zero means DefaultDOTMaxEdges.
	MaxEdges int
	// Weights labels every edge with its weight.
	Weights bool
}

// ToDOT converts an instance to Graphviz DOT format.
// The source vertex is filled green and the destination red. The resulting
// DOT string can be rendered with [RenderSVG].
func ToDOT(in graph.Instance, opts DOTOptions) (string, error) {
	if in.Graph == nil {
		return "", errs.New(errs.ErrCodeInvalidInput, "instance has no graph")
	}
	limit := opts.MaxEdges
	if limit <= 0 {
		limit = DefaultDOTMaxEdges
	}
	g := in.Graph
	if len(g.Edges) > limit {
		return "", errs.New(errs.ErrCodeInvalidInput, "%d edges exceed the DOT export limit of %d", len(g.Edges), limit)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=8, arrowsize=0.5];\n")
	buf.WriteString("\n")

	for v := 0; v < g.Vertices; v++ {
		switch v {
		case in.Source:
			fmt.Fprintf(&buf, "  %d [fillcolor=palegreen];\n", v)
		case in.Destination:
			fmt.Fprintf(&buf, "  %d [fillcolor=salmon];\n", v)
		default:
			fmt.Fprintf(&buf, "  %d;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if opts.Weights {
			fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", e.From, e.To, e.Weight)
		} else {
			fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
