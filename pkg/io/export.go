package io

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strconv"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// writeBufferSize is the bufio buffer used for edge-list output.
// Dense files run to millions of short lines.
const writeBufferSize = 64 << 10

// Written describes a file produced by [ExportEdgeList].
type Written struct {
	Path   string `json:"path"`
	Bytes  int64  `json:"bytes"`
	SHA256 string `json:"sha256"`
}

// WriteEdgeList encodes in as an edge list and writes it to w:
//
//	V E
//	u v w      (E lines, in edge list order)
//	source destination
//
// Values are decimal, separated by one space, and every line ends in '\n'.
// WriteEdgeList writes what it is given; it does not validate the instance.
func WriteEdgeList(w io.Writer, in graph.Instance) error {
	if in.Graph == nil {
		return errs.New(errs.ErrCodeInvalidInput, "instance has no graph")
	}
	g := in.Graph

	bw := bufio.NewWriterSize(w, writeBufferSize)
	line := make([]byte, 0, 48)

	line = appendLine(line[:0], g.Vertices, len(g.Edges))
	bw.Write(line)
	for _, e := range g.Edges {
		line = appendLine(line[:0], e.From, e.To, e.Weight)
		bw.Write(line)
	}
	line = appendLine(line[:0], in.Source, in.Destination)
	bw.Write(line)

	// bufio.Writer keeps the first error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportEdgeList writes in to a file at path, creating or truncating it.
// This is a convenience wrapper around [WriteEdgeList] for file-based output.
//
// On failure the partially written file is removed and the returned error
// carries [errs.ErrCodeIO], the path and the underlying cause.
func ExportEdgeList(in graph.Instance, path string) (Written, error) {
	f, err := os.Create(path)
	if err != nil {
		return Written{}, errs.Wrap(errs.ErrCodeIO, err, "create %s", path)
	}

	cw := &countingWriter{w: f, h: sha256.New()}
	if err := WriteEdgeList(cw, in); err != nil {
		f.Close()
		os.Remove(path)
		return Written{}, errs.Wrap(errs.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return Written{}, errs.Wrap(errs.ErrCodeIO, err, "close %s", path)
	}

	return Written{
		Path:   path,
		Bytes:  cw.n,
		SHA256: hex.EncodeToString(cw.h.Sum(nil)),
	}, nil
}

// appendLine appends the space-separated decimal values and a newline.
func appendLine(dst []byte, vals ...int) []byte {
	for i, v := range vals {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = strconv.AppendInt(dst, int64(v), 10)
	}
	return append(dst, '\n')
}

// countingWriter counts and hashes the bytes passed through to w.
type countingWriter struct {
	w io.Writer
	h hash.Hash
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.h.Write(p[:n])
	return n, err
}
