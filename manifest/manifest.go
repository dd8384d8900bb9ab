// Package manifest loads variant descriptions from JSON or YAML
// documents. A manifest maps variant names ("Default", "TypeScript")
// to their file sets; the extra-file string shorthand is supported in
// both formats.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codelift/sandpath/errors"
	"github.com/codelift/sandpath/variant"
)

// Format identifies a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Manifest maps variant names to their declared file sets.
type Manifest map[string]variant.Code

// Load reads a manifest file, sniffing the format from the extension
// (.json, .yaml, .yml).
func Load(path string) (Manifest, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read manifest %s", path)
	}

	m, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse manifest %s", path)
	}
	return m, nil
}

// Decode parses manifest content in the given format.
func Decode(data []byte, format Format) (Manifest, error) {
	var m Manifest
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "invalid JSON manifest")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, "invalid YAML manifest")
		}
	default:
		return nil, errors.Newf("unsupported manifest format %q", format)
	}

	if len(m) == 0 {
		return nil, errors.New("manifest declares no variants")
	}
	return m, nil
}

// Names returns the variant names in sorted order for deterministic
// iteration.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.WithHint(
			errors.Newf("cannot determine manifest format for %s", path),
			"use a .json, .yaml or .yml extension")
	}
}
