package io

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/generate"
	"github.com/matzehuels/graphgen/pkg/graph"
)

func TestWriteEdgeListFormat(t *testing.T) {
	g, err := generate.Grid(2, 2, generate.WithWeights(1, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteEdgeList(&buf, graph.NewInstance(g)))

	want := "4 8\n" +
		"0 1 1\n0 2 1\n" +
		"1 3 1\n1 0 1\n" +
		"2 3 1\n2 0 1\n" +
		"3 2 1\n3 1 1\n" +
		"0 3\n"
	require.Equal(t, want, buf.String())
}

func TestWriteEdgeListEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEdgeList(&buf, graph.NewInstance(graph.New(0, 0))))
	require.Equal(t, "0 0\n0 -1\n", buf.String())

	require.Error(t, WriteEdgeList(&buf, graph.Instance{}))
}

func TestRoundTrip(t *testing.T) {
	dense, err := generate.Dense(50, 900, generate.WithSeed(17))
	require.NoError(t, err)
	grid, err := generate.Grid(7, 5, generate.WithSeed(17))
	require.NoError(t, err)

	for _, in := range []graph.Instance{
		graph.NewInstance(dense),
		graph.NewInstance(grid),
		{Graph: grid, Source: 12, Destination: 3},
		graph.NewInstance(graph.New(0, 0)),
	} {
		var buf bytes.Buffer
		require.NoError(t, WriteEdgeList(&buf, in))

		got, err := ReadEdgeList(&buf)
		require.NoError(t, err)
		require.Equal(t, in.Graph.Vertices, got.Graph.Vertices)
		require.Equal(t, len(in.Graph.Edges), len(got.Graph.Edges))
		if len(in.Graph.Edges) > 0 {
			require.Equal(t, in.Graph.Edges, got.Graph.Edges)
		}
		require.Equal(t, in.Source, got.Source)
		require.Equal(t, in.Destination, got.Destination)
	}
}

func TestReadEdgeListTolerantWhitespace(t *testing.T) {
	in, err := ReadEdgeList(strings.NewReader("3 2\n0 1 5   1 2 7\n\n0\t2"))
	require.NoError(t, err)
	require.Equal(t, 3, in.Graph.Vertices)
	require.Equal(t, []graph.Edge{{From: 0, To: 1, Weight: 5}, {From: 1, To: 2, Weight: 7}}, in.Graph.Edges)
	require.Equal(t, 0, in.Source)
	require.Equal(t, 2, in.Destination)
}

func TestReadEdgeListErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short header", "3"},
		{"negative header", "-3 1\n0 1 1\n0 2\n"},
		{"not a number", "3 x\n"},
		{"missing edge", "3 2\n0 1 1\n0 2\n"},
		{"truncated edge", "3 1\n0 1\n"},
		{"missing query", "3 1\n0 1 1\n"},
		{"endpoint out of range", "3 1\n0 3 1\n0 2\n"},
		{"trailing tokens", "3 1\n0 1 1\n0 2\n9\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadEdgeList(strings.NewReader(tt.input))
			require.Error(t, err)
			require.True(t, errs.Is(err, errs.ErrCodeInvalidFormat), "got %v", err)
		})
	}
}

func TestExportImportFile(t *testing.T) {
	g, err := generate.Dense(30, 400, generate.WithSeed(4))
	require.NoError(t, err)
	in := graph.NewInstance(g)

	path := filepath.Join(t.TempDir(), "denso_test.txt")
	w, err := ExportEdgeList(in, path)
	require.NoError(t, err)
	require.Equal(t, path, w.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), w.Bytes)
	sum := sha256.Sum256(data)
	require.Equal(t, hex.EncodeToString(sum[:]), w.SHA256)

	got, err := ImportEdgeList(path)
	require.NoError(t, err)
	require.Equal(t, in.Graph.Edges, got.Graph.Edges)
	require.Equal(t, 29, got.Destination)
}

func TestExportOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("stale\n", 100)), 0o644))

	_, err := ExportEdgeList(graph.NewInstance(graph.New(1, 0)), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "1 0\n0 0\n", string(data))
}

func TestExportUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "graph.txt")
	_, err := ExportEdgeList(graph.NewInstance(graph.New(1, 0)), path)
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.ErrCodeIO))
	require.Contains(t, err.Error(), path)
	require.False(t, errs.IsFatal(err))

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestImportMissing(t *testing.T) {
	_, err := ImportEdgeList(filepath.Join(t.TempDir(), "nope.txt"))
	require.True(t, errs.Is(err, errs.ErrCodeFileNotFound))
}

func TestToDOT(t *testing.T) {
	g, err := generate.Grid(1, 3, generate.WithWeights(2, 2))
	require.NoError(t, err)

	dot, err := ToDOT(graph.NewInstance(g), DOTOptions{Weights: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	require.Contains(t, dot, "  0 [fillcolor=palegreen];\n")
	require.Contains(t, dot, "  2 [fillcolor=salmon];\n")
	require.Contains(t, dot, "  1;\n")
	require.Contains(t, dot, "  0 -> 1 [label=\"2\"];\n")
	require.Contains(t, dot, "  1 -> 0 [label=\"2\"];\n")
	require.Equal(t, 4, strings.Count(dot, "->"))

	plain, err := ToDOT(graph.NewInstance(g), DOTOptions{})
	require.NoError(t, err)
	require.Contains(t, plain, "  2 -> 1;\n")
}

func TestToDOTLimit(t *testing.T) {
	g, err := generate.Grid(3, 3, generate.WithSeed(1))
	require.NoError(t, err)

	_, err = ToDOT(graph.NewInstance(g), DOTOptions{MaxEdges: 10})
	require.True(t, errs.Is(err, errs.ErrCodeInvalidInput))

	_, err = ToDOT(graph.Instance{}, DOTOptions{})
	require.Error(t, err)
}
