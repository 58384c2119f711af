// Package schema defines the input document model: a mapping of named
// schemas in the JSON-Schema "definitions" shape, with references,
// composition, unions, arrays, enums and open-ended properties.
package schema

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"
)

// Document is the top-level input: declaration name → schema node.
type Document struct {
	Definitions map[string]*Node `json:"definitions" yaml:"definitions"`
}

// Node is one recursive schema node. All fields are optional; the
// classifier dispatches on whichever shape is present.
type Node struct {
	Ref         string   `json:"$ref,omitempty" yaml:"$ref"`
	AllOf       []*Node  `json:"allOf,omitempty" yaml:"allOf"`
	OneOf       []*Node  `json:"oneOf,omitempty" yaml:"oneOf"`
	Description string   `json:"description,omitempty" yaml:"description"`
	Enum        []any    `json:"enum,omitempty" yaml:"enum"`
	Items       *Node    `json:"items,omitempty" yaml:"items"`
	Required    []string `json:"required,omitempty" yaml:"required"`

	// Type is restricted to array|boolean|integer|number|object|string.
	Type string `json:"type,omitempty" yaml:"type"`

	Properties map[string]*Node `json:"properties,omitempty" yaml:"properties"`

	// AdditionalProperties is either a boolean or a constraining schema.
	AdditionalProperties *NodeOrBool `json:"additionalProperties,omitempty" yaml:"additionalProperties"`
}

// IsRequired reports whether the raw (unconverted) property key appears in
// this node's own required list. Required lists of composed-in schemas are
// deliberately not consulted.
func (n *Node) IsRequired(key string) bool {
	for _, r := range n.Required {
		if r == key {
			return true
		}
	}
	return false
}

// NodeOrBool models additionalProperties, which is either a boolean or a
// schema object.
type NodeOrBool struct {
	Bool   *bool
	Schema *Node
}

// IsTrue reports the unconstrained-true form (`additionalProperties: true`).
func (n *NodeOrBool) IsTrue() bool {
	return n != nil && n.Bool != nil && *n.Bool
}

// Constraint returns the constraining schema, or nil for the boolean forms.
func (n *NodeOrBool) Constraint() *Node {
	if n == nil {
		return nil
	}
	return n.Schema
}

// UnmarshalJSONFrom implements json.UnmarshalerFrom.
func (n *NodeOrBool) UnmarshalJSONFrom(dec *jsontext.Decoder) error {
	switch dec.PeekKind() {
	case 't', 'f':
		var b bool
		if err := json.UnmarshalDecode(dec, &b); err != nil {
			return err
		}
		n.Bool = &b
		return nil
	}
	var node Node
	if err := json.UnmarshalDecode(dec, &node); err != nil {
		return err
	}
	n.Schema = &node
	return nil
}

// MarshalJSONTo implements json.MarshalerTo.
func (n *NodeOrBool) MarshalJSONTo(enc *jsontext.Encoder) error {
	if n.Bool != nil {
		return json.MarshalEncode(enc, *n.Bool)
	}
	if n.Schema != nil {
		return json.MarshalEncode(enc, n.Schema)
	}
	return enc.WriteValue(jsontext.Value(`{}`))
}

// UnmarshalYAML implements yaml.Unmarshaler for YAML-authored documents.
func (n *NodeOrBool) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!bool" {
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		n.Bool = &b
		return nil
	}
	var node Node
	if err := value.Decode(&node); err != nil {
		return err
	}
	n.Schema = &node
	return nil
}
