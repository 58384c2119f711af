package emit

import (
	"github.com/dtsgen/dtsgen/internal/diagnostic"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// classify computes the type expression for a schema node at a use-site.
// candidate is the identifier to synthesize a declaration under if the node
// turns out to be an anonymous nested structure; an empty candidate means
// the use-site cannot host a named declaration and the node degrades to
// the generic type instead.
//
// Resolution order, first match wins: reference, sequence-of-reference,
// sequence-of-inline, union, inline structure, bare primitive kind.
func (p *pass) classify(node *schema.Node, candidate string) (string, error) {
	if node == nil {
		return AnyType, nil
	}

	switch {
	case node.Ref != "":
		id, target, err := p.table.Resolve(node.Ref)
		if err != nil {
			return "", err
		}
		// Chase one level of array-typedef indirection: a reference to a
		// named array-of-reference schema classifies as that array type.
		if target.Type == "array" && target.Items != nil && target.Items.Ref != "" {
			return p.classify(target, candidate)
		}
		if prim, ok := primitiveType(target.Type); ok {
			return prim, nil
		}
		return namedRef(p.displayIdent(id)), nil

	case node.Items != nil && node.Items.Ref != "":
		elem, err := p.classify(node.Items, candidate)
		if err != nil {
			return "", err
		}
		return sequenceOf(elem), nil

	case node.Items != nil:
		if prim, ok := primitiveType(node.Items.Type); ok {
			return sequenceOf(prim), nil
		}
		if candidate == "" {
			return sequenceOf(AnyType), nil
		}
		if err := p.push(candidate, node.Items); err != nil {
			return "", err
		}
		return sequenceOf(namedRef(candidate)), nil

	case len(node.OneOf) > 0:
		parts := make([]string, 0, len(node.OneOf))
		for _, alt := range node.OneOf {
			t, err := p.classify(alt, "")
			if err != nil {
				return "", err
			}
			parts = append(parts, t)
		}
		return unionOf(parts), nil

	case node.Properties != nil:
		if candidate == "" {
			return AnyType, nil
		}
		if err := p.push(candidate, node); err != nil {
			return "", err
		}
		return namedRef(candidate), nil

	default:
		if prim, ok := primitiveType(node.Type); ok {
			return prim, nil
		}
		if node.Type != "" {
			return node.Type, nil
		}
		p.diags.Info(diagnostic.CategoryUnknownShape, candidate,
			"schema matches no recognized shape, using "+AnyType)
		return AnyType, nil
	}
}
