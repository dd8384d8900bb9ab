package variant

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/codelift/sandpath/errors"
)

// ExtraFile is one declared dependency of a variant's main file, keyed
// in Code.ExtraFiles by the relative-import path that referenced it.
type ExtraFile struct {
	// Source is the file content. Nil means the content is supplied
	// elsewhere (e.g. loaded lazily by the exporter).
	Source *string `json:"source,omitempty" yaml:"source,omitempty"`

	// Metadata marks auxiliary build files (package.json, tsconfig.json)
	// that participate in path resolution under different rules than
	// same-origin source dependencies.
	Metadata bool `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// UnmarshalJSON accepts either the object form or the bare-string
// shorthand, where "content" is equivalent to {"source": "content"}.
func (f *ExtraFile) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "invalid extra file shorthand")
		}
		*f = ExtraFile{Source: &s}
		return nil
	}

	type plain ExtraFile
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return errors.Wrap(err, "invalid extra file entry")
	}
	*f = ExtraFile(p)
	return nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML manifests: a scalar node
// is the source shorthand, a mapping node is the full entry.
func (f *ExtraFile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return errors.Wrap(err, "invalid extra file shorthand")
		}
		*f = ExtraFile{Source: &s}
		return nil
	}

	type plain ExtraFile
	var p plain
	if err := value.Decode(&p); err != nil {
		return errors.Wrap(err, "invalid extra file entry")
	}
	*f = ExtraFile(p)
	return nil
}

// Code describes one variant before path resolution: the main file and
// the dependency set declared against it.
type Code struct {
	// URL is an optional absolute origin locator for the main file
	// (e.g. "file:///lib/components/checkbox/index.ts"). A value that
	// fails to parse as an absolute URL is treated as absent.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// FileName is the base name of the main file. Derived from URL when
	// absent. If both are absent no path can be computed for the main
	// file, though extra files still resolve.
	FileName string `json:"fileName,omitempty" yaml:"fileName,omitempty"`

	// Source is the main file content.
	Source *string `json:"source,omitempty" yaml:"source,omitempty"`

	// MetadataPrefix, when set (e.g. "src/"), is the directory all
	// source-adjacent structure is placed under, leaving metadata files
	// free to escape to the project root.
	MetadataPrefix string `json:"metadataPrefix,omitempty" yaml:"metadataPrefix,omitempty"`

	// ExtraFiles maps relative-import path keys to their entries. The
	// key is the only identifier an entry has.
	ExtraFiles map[string]ExtraFile `json:"extraFiles,omitempty" yaml:"extraFiles,omitempty"`
}

// ResolvedFile is an extra file annotated with its flat virtual path.
type ResolvedFile struct {
	Source   *string `json:"source,omitempty" yaml:"source,omitempty"`
	Metadata bool    `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Path     string  `json:"path" yaml:"path"`
}

// WithPaths is the output of AddPathsToVariant: the original variant
// with a flat virtual path assigned to the main file and to every extra
// file. Keys of ExtraFiles are preserved 1:1 from the input.
type WithPaths struct {
	URL            string  `json:"url,omitempty" yaml:"url,omitempty"`
	FileName       string  `json:"fileName,omitempty" yaml:"fileName,omitempty"`
	Source         *string `json:"source,omitempty" yaml:"source,omitempty"`
	MetadataPrefix string  `json:"metadataPrefix,omitempty" yaml:"metadataPrefix,omitempty"`

	// Path is the main file's flat virtual path. Empty when the variant
	// has neither FileName nor a parseable URL.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// ExtraFiles carries every input key with its resolved path. Nil
	// only when the input declared no extra files and no file name.
	ExtraFiles map[string]ResolvedFile `json:"extraFiles,omitempty" yaml:"extraFiles,omitempty"`
}
