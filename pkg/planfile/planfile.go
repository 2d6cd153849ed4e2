// Package planfile reads and writes plans as YAML documents of wall records.
package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gowall/pkg/plan"
)

// CurrentVersion is written into every saved document
const CurrentVersion = 1

// ErrUnsupportedVersion is returned for documents newer than CurrentVersion
var ErrUnsupportedVersion = errors.New("planfile: unsupported version")

// Document is the on-disk form of a plan
type Document struct {
	Version int           `yaml:"version"`
	Walls   []plan.Record `yaml:"walls"`
}

// Decode parses a document. A missing version is read as version 1.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{Version: CurrentVersion}, nil
		}
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	if doc.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, doc.Version)
	}
	return &doc, nil
}

// Encode writes a document
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// Marshal encodes a plan into YAML bytes
func Marshal(p *plan.Plan) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, &Document{Version: CurrentVersion, Walls: p.Records()}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal builds a plan from YAML bytes
func Unmarshal(data []byte) (*plan.Plan, error) {
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	p, err := plan.FromRecords(doc.Walls)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return p, nil
}

// Load reads a plan file
func Load(path string) (*plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Save writes a plan file through a temporary file in the same directory,
// so watchers never observe a partially written plan
func Save(path string, p *plan.Plan) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile atomically replaces path with data
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
