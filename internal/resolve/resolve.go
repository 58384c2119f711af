// Package resolve builds the sanitized reference table and dereferences
// $ref strings against it.
package resolve

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dtsgen/dtsgen/internal/ident"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// Sentinel errors for the two structural failure modes of a pass. Both are
// fatal: the generator produces a complete declaration set or none.
var (
	// ErrUnresolvedReference marks a $ref whose target identifier is
	// absent from the document.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrNameCollision marks two distinct names mapping to the same
	// identifier, either through dot-stripping of definition names or
	// through derived nested-shape candidates.
	ErrNameCollision = errors.New("name collision")
)

// RefPrefix is the JSON pointer prefix stripped from reference strings.
const RefPrefix = "#/definitions/"

// Table is the sanitized document: identifier → schema node. It is the
// resolver's only source of truth and is read-only during a pass.
type Table map[string]*schema.Node

// NewTable sanitizes every definition name and indexes the nodes by the
// resulting identifier. Two raw names collapsing onto one identifier is a
// hard error rather than a silent overwrite.
func NewTable(defs map[string]*schema.Node) (Table, error) {
	t := make(Table, len(defs))
	raws := make(map[string]string, len(defs))
	for raw, node := range defs {
		id := ident.SanitizeName(raw)
		if prev, ok := raws[id]; ok {
			return nil, errors.Mark(
				errors.Newf("definitions %q and %q both sanitize to %q", prev, raw, id),
				ErrNameCollision)
		}
		raws[id] = raw
		t[id] = node
	}
	return t, nil
}

// Resolve maps a reference string to its canonical identifier and schema
// node. The pointer prefix is stripped and dots are deleted, matching the
// sanitization applied to definition names. A missing target fails with
// ErrUnresolvedReference at the point of lookup instead of handing back a
// nil node that would crash later.
func (t Table) Resolve(ref string) (string, *schema.Node, error) {
	id := ident.SanitizeName(strings.TrimPrefix(ref, RefPrefix))
	node, ok := t[id]
	if !ok {
		return "", nil, errors.Mark(
			errors.Newf("reference %q names no definition %q", ref, id),
			ErrUnresolvedReference)
	}
	return id, node, nil
}
