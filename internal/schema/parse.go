package schema

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-json-experiment/json"
	"gopkg.in/yaml.v3"
)

// Load reads a schema document from disk. The serialization is chosen by
// file extension: .yaml/.yml are parsed as YAML, everything else as JSON.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading schema document %q", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON schema document.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing schema document")
	}
	if doc.Definitions == nil {
		return nil, errors.New("schema document has no definitions")
	}
	return &doc, nil
}

// ParseYAML decodes a YAML schema document.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "parsing schema document")
	}
	if doc.Definitions == nil {
		return nil, errors.New("schema document has no definitions")
	}
	return &doc, nil
}
