package mapio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mindmap/pkg/errors"
	"github.com/matzehuels/mindmap/pkg/mindmap"
)

// Format is a data file encoding.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported data file extension %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Write encodes s to w.
func Write(s mindmap.Snapshot, w io.Writer, f Format) error {
	if s.Nodes == nil {
		s.Nodes = []mindmap.Node{}
	}
	if s.Connections == nil {
		s.Connections = []mindmap.Connection{}
	}
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported data format %q", f)
	}
}

// Read decodes and validates a map from r.
func Read(r io.Reader, f Format) (mindmap.Snapshot, error) {
	var s mindmap.Snapshot
	switch f {
	case JSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return mindmap.Snapshot{}, fmt.Errorf("decode: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return mindmap.Snapshot{}, fmt.Errorf("decode: %w", err)
		}
	default:
		return mindmap.Snapshot{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported data format %q", f)
	}
	if err := validate(s); err != nil {
		return mindmap.Snapshot{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid mind map")
	}
	if s.Connections == nil {
		s.Connections = []mindmap.Connection{}
	}
	return s, nil
}

// Import reads the data file at path.
func Import(path string) (mindmap.Snapshot, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return mindmap.Snapshot{}, err
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return mindmap.Snapshot{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
	}
	if err != nil {
		return mindmap.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return Read(file, f)
}

// Export writes s to the data file at path.
func Export(s mindmap.Snapshot, path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(s, file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func validate(s mindmap.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d has no id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate node id %q", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}
