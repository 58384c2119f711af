package emit

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/dtsgen/dtsgen/internal/diagnostic"
	"github.com/dtsgen/dtsgen/internal/ident"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// buildDecl synthesizes one named declaration for a worklist entry.
// Classification of field types may push further entries onto the
// worklist; those drain before any older entries (LIFO).
func (p *pass) buildDecl(id string, node *schema.Node) error {
	fields := make(map[string]*schema.Node, len(node.Properties))

	// Composition: references become supertypes, inline shapes merge their
	// fields into the working set. Later composed-in entries override
	// earlier ones; the node's own fields are overlaid last and win.
	var supers []string
	for _, comp := range node.AllOf {
		if comp == nil {
			continue
		}
		if comp.Ref != "" {
			sid, _, err := p.table.Resolve(comp.Ref)
			if err != nil {
				return err
			}
			supers = append(supers, p.displayIdent(sid))
			continue
		}
		if len(comp.Required) > 0 {
			// Required lists of composed-in schemas are not merged; the
			// warning below is the only trace of them. See DESIGN.md.
			p.diags.WarnWithHint(diagnostic.CategoryRequiredNotMerged, id,
				"required list of composed-in schema is ignored",
				"mark the fields required on the composing schema itself")
		}
		for k, v := range comp.Properties {
			fields[k] = v
		}
	}
	for k, v := range node.Properties {
		fields[k] = v
	}

	// Skip rule: a fieldless schema that reduces to a mapped primitive kind
	// is a vacuous wrapper, not a declaration. References to its identifier
	// will name a declaration that is never emitted.
	if len(fields) == 0 && !node.AdditionalProperties.IsTrue() {
		if _, ok := primitiveType(node.Type); ok {
			p.diags.WarnWithHint(diagnostic.CategorySkippedAlias, id,
				fmt.Sprintf("primitive alias of kind %q emits no declaration", node.Type),
				"references to this name will not resolve in the output")
			p.log.Debug("skipping primitive alias", zap.String("identifier", id))
			return nil
		}
	}

	name := p.displayIdent(id)
	if node.Description != "" {
		for _, line := range jsdoc(node.Description) {
			p.emit(line)
		}
	}
	open := "export interface " + name
	if len(supers) > 0 {
		open += " extends " + strings.Join(supers, ", ")
	}
	p.emit(open + " {")

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := fields[key]
		if field == nil {
			field = &schema.Node{}
		}
		if field.Description != "" {
			for _, line := range jsdoc(field.Description) {
				p.emit(line)
			}
		}

		var typ string
		if len(field.Enum) > 0 {
			// Enum beats every other shape rule, reference and sequence
			// included.
			typ = literalUnion(field.Enum)
		} else {
			candidate := name + ident.Capitalize(p.displayIdent(key))
			t, err := p.classify(field, candidate)
			if err != nil {
				return err
			}
			typ = t
		}

		opt := "?"
		if node.IsRequired(key) {
			opt = ""
		}
		p.emit(fmt.Sprintf("%s%s: %s;", ident.PropertyKey(p.displayIdent(key)), opt, typ))
	}

	ap := node.AdditionalProperties
	switch {
	case ap.IsTrue():
		p.emit("[key: string]: " + AnyType + ";")
	case ap.Constraint() != nil:
		t, err := p.classify(ap.Constraint(), "")
		if err != nil {
			return err
		}
		p.emit("[key: string]: " + t + ";")
	}

	p.emit("}")
	p.log.Debug("emitted declaration",
		zap.String("identifier", name),
		zap.Int("fields", len(fields)),
		zap.Int("supertypes", len(supers)))
	return nil
}
