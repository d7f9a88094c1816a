package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxSimpleEdges(t *testing.T) {
	tests := []struct {
		vertices int
		want     int64
	}{
		{-1, 0},
		{0, 0},
		{1, 0},
		{2, 2},
		{3, 6},
		{1500, 2_248_500},
		{100_000, 9_999_900_000},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, MaxSimpleEdges(tt.vertices), "vertices=%d", tt.vertices)
	}
}

func TestGraphValidate(t *testing.T) {
	g := New(3, 2)
	g.AddEdge(0, 1, 5)
	g.AddEdge(2, 0, 1)
	require.NoError(t, g.Validate())

	g.AddEdge(1, 3, 1)
	require.Error(t, g.Validate())

	require.Error(t, (&Graph{Vertices: -1}).Validate())
}

func TestInstanceValidate(t *testing.T) {
	g := New(4, 0)

	require.NoError(t, NewInstance(g).Validate())
	require.NoError(t, Instance{Graph: g, Source: 3, Destination: 0}.Validate())
	require.Error(t, Instance{Graph: g, Source: 4, Destination: 0}.Validate())
	require.Error(t, Instance{Graph: g, Source: 0, Destination: -1}.Validate())
	require.Error(t, Instance{}.Validate())

	// An empty graph has no vertices to route between.
	empty := NewInstance(New(0, 0))
	require.Equal(t, -1, empty.Destination)
	require.NoError(t, empty.Validate())
}

func TestComputeStats(t *testing.T) {
	g := New(5, 0)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 9)
	g.AddEdge(0, 1, 2)
	g.AddEdge(3, 3, 7)

	s := g.ComputeStats()
	require.Equal(t, Stats{
		Vertices:   5,
		Edges:      4,
		MinWeight:  2,
		MaxWeight:  9,
		SelfLoops:  1,
		MaxOutDeg:  3,
		Duplicates: 1,
		Isolated:   1,
	}, s)
}

func TestComputeStatsEmpty(t *testing.T) {
	s := New(3, 0).ComputeStats()
	require.Equal(t, 0, s.Edges)
	require.Equal(t, 3, s.Isolated)
	require.Zero(t, s.MinWeight)
	require.Zero(t, s.MaxWeight)
}

func TestEdgeHelpers(t *testing.T) {
	require.True(t, Edge{From: 2, To: 2}.IsLoop())
	require.False(t, Edge{From: 2, To: 1}.IsLoop())
	require.Equal(t, [2]int{2, 1}, Edge{From: 2, To: 1, Weight: 8}.Pair())
}
