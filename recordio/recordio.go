// Package recordio reads and writes batches of dynamic records as YAML.
//
// A record file is a YAML sequence of mappings:
//
//	- sku: "1"
//	  color: red
//	  size: small
//	- sku: "2"
//	  color: red
//	  size: medium
//
// JSON is a subset of YAML, so a JSON array of objects reads just as well.
package recordio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amp-labs/objectgraph/objectgraph"
	"github.com/amp-labs/objectgraph/should"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidRecord     = errors.New("invalid record")
	ErrUnsupportedFormat = errors.New("unsupported record file extension")
)

// Read decodes a YAML sequence of mappings from r. An empty document yields
// an empty, non-nil slice. Scalars decode the way yaml.v3 decodes them into
// an interface: integers as int, floats as float64, and so on.
func Read(r io.Reader) ([]objectgraph.Fields, error) {
	var raw []map[string]any

	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return []objectgraph.Fields{}, nil
		}

		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	records := make([]objectgraph.Fields, len(raw))

	for i, m := range raw {
		if m == nil {
			return nil, fmt.Errorf("%w: record %d is not a mapping", ErrInvalidRecord, i)
		}

		records[i] = m
	}

	return records, nil
}

// ReadFile loads records from a .yaml, .yml or .json file.
func ReadFile(path string) ([]objectgraph.Fields, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}

	defer should.Close(f, "closing record file")

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return records, nil
}

// Write encodes v as YAML with two-space indentation.
func Write(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// ParseScalar interprets s as a YAML scalar, so "3" is an int, "true" a bool
// and "red" a string. A value that does not parse is kept as the string s.
func ParseScalar(s string) any {
	var v any

	if err := yaml.Unmarshal([]byte(s), &v); err != nil || v == nil {
		return s
	}

	switch v.(type) {
	case map[string]any, []any:
		return s
	default:
		return v
	}
}
