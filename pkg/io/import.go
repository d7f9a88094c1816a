package io

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"

	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/graph"
)

// maxEdgeHint caps the preallocation taken from an untrusted header.
const maxEdgeHint = 1 << 20

// ReadEdgeList decodes an edge-list file from r.
//
// The input is read as a stream of whitespace-separated integers, so line
// breaks are not significant: a header "V E", then E triples "u v w", then
// "source destination". Nothing may follow the final pair.
//
// ReadEdgeList returns an error coded [errs.ErrCodeInvalidFormat] if:
//   - A token is not a decimal integer
//   - V or E is negative
//   - The input ends before E edges and the query pair were read
//   - An edge endpoint lies outside [0, V)
//   - Extra tokens follow the query pair
//
// Source and destination are not range-checked so that degenerate files
// (V = 0, destination -1) read back unchanged. ReadEdgeList does not close r.
func ReadEdgeList(r io.Reader) (graph.Instance, error) {
	sc := newTokenScanner(r)

	header, err := sc.ints("header", 2)
	if err != nil {
		return graph.Instance{}, err
	}
	v, e := header[0], header[1]
	if v < 0 || e < 0 {
		return graph.Instance{}, errs.New(errs.ErrCodeInvalidFormat, "negative header %d %d", v, e)
	}

	g := graph.New(v, min(e, maxEdgeHint))
	for i := 0; i < e; i++ {
		t, err := sc.ints("edge "+strconv.Itoa(i+1), 3)
		if err != nil {
			return graph.Instance{}, err
		}
		g.AddEdge(t[0], t[1], t[2])
	}
	if err := g.Validate(); err != nil {
		return graph.Instance{}, errs.Wrap(errs.ErrCodeInvalidFormat, err, "invalid edge")
	}

	q, err := sc.ints("source/destination", 2)
	if err != nil {
		return graph.Instance{}, err
	}
	if sc.Scan() {
		return graph.Instance{}, errs.New(errs.ErrCodeInvalidFormat, "unexpected token %q after source/destination", sc.Text())
	}
	if err := sc.Err(); err != nil {
		return graph.Instance{}, errs.Wrap(errs.ErrCodeIO, err, "read")
	}

	return graph.Instance{Graph: g, Source: q[0], Destination: q[1]}, nil
}

// ImportEdgeList reads an edge-list file at path.
//
// ImportEdgeList opens the file, decodes it using [ReadEdgeList], and closes
// the file. A missing file is reported as [errs.ErrCodeFileNotFound], other
// open failures as [errs.ErrCodeIO].
func ImportEdgeList(path string) (graph.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return graph.Instance{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return graph.Instance{}, errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadEdgeList(f)
}

// tokenScanner reads whitespace-separated integers.
type tokenScanner struct {
	*bufio.Scanner
	buf []int
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{Scanner: sc, buf: make([]int, 3)}
}

// ints reads n integers for the record named what. The returned slice is
// reused by the next call.
func (s *tokenScanner) ints(what string, n int) ([]int, error) {
	out := s.buf[:n]
	for i := range out {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return nil, errs.Wrap(errs.ErrCodeIO, err, "read %s", what)
			}
			return nil, errs.New(errs.ErrCodeInvalidFormat, "unexpected end of input in %s", what)
		}
		x, err := strconv.Atoi(s.Text())
		if err != nil {
			return nil, errs.New(errs.ErrCodeInvalidFormat, "%s: %q is not an integer", what, s.Text())
		}
		out[i] = x
	}
	return out, nil
}
