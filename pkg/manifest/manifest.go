// Package manifest records what a generation run produced.
//
// A manifest is a JSON document written next to the generated files. It
// names the run, the seed that reproduces it, and for every planned file its
// size, content hash and, when the file could not be written, the error.
//
//	m := manifest.FromReport(report, started)
//	err := m.WriteFile(filepath.Join(dir, manifest.DefaultName))
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/graphgen/pkg/buildinfo"
	errs "github.com/matzehuels/graphgen/pkg/errors"
	"github.com/matzehuels/graphgen/pkg/pipeline"
)

// DefaultName is the manifest file name used by the generate command.
const DefaultName = "manifest.json"

// Manifest describes one run.
type Manifest struct {
	RunID     string    `json:"run_id"`
	Version   string    `json:"version"`
	Seed      int64     `json:"seed"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
	Files     []File    `json:"files"`
}

// File describes one planned output file.
type File struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Vertices int    `json:"vertices"`
	Edges    int    `json:"edges"`
	Bytes    int64  `json:"bytes,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Error    string `json:"error,omitempty"`
}

// OK reports whether the file was written.
func (f File) OK() bool { return f.Error == "" }

// FromReport builds a manifest for a finished run. Each run gets a fresh
// random ID.
func FromReport(r *pipeline.Report, started time.Time) *Manifest {
	m := &Manifest{
		RunID:     uuid.NewString(),
		Version:   buildinfo.Version,
		Seed:      r.Seed,
		StartedAt: started.UTC().Truncate(time.Second),
		Duration:  r.Duration.Round(time.Millisecond).String(),
		Files:     make([]File, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		f := File{
			Name:     res.Entry.Name,
			Kind:     res.Entry.Kind,
			Vertices: res.Entry.VertexCount(),
			Edges:    res.Entry.EdgeCount(),
		}
		if res.OK() {
			f.Bytes = res.Written.Bytes
			f.SHA256 = res.Written.SHA256
		} else {
			f.Error = errs.UserMessage(res.Err)
		}
		m.Files = append(m.Files, f)
	}
	return m
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// WriteFile writes the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "create manifest %s", path)
	}
	if err := m.Encode(f); err != nil {
		f.Close()
		return errs.Wrap(errs.ErrCodeIO, err, "write manifest %s", path)
	}
	if err := f.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeIO, err, "close manifest %s", path)
	}
	return nil
}

// ReadFile loads a manifest written by [Manifest.WriteFile].
func ReadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "read manifest %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeIO, err, "read manifest %s", path)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidFormat, err, "parse manifest %s", path)
	}
	return &m, nil
}

// Verify re-hashes every written file under dir and returns the names whose
// content no longer matches. Files recorded as failed are skipped.
func (m *Manifest) Verify(dir string) ([]string, error) {
	var changed []string
	for _, f := range m.Files {
		if !f.OK() {
			continue
		}
		sum, err := hashFile(filepath.Join(dir, f.Name))
		if err != nil {
			return nil, err
		}
		if sum != f.SHA256 {
			changed = append(changed, f.Name)
		}
	}
	return changed, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errs.Wrap(errs.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
