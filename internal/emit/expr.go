package emit

import (
	"strings"

	"github.com/go-json-experiment/json"
)

// AnyType is the lenient fallback for shapes the classifier does not
// recognize. Falling back is deliberate; it is never an error.
const AnyType = "any"

// primitiveTypes maps scalar schema kinds to TypeScript type names. Only
// text and numeric kinds are normalized; boolean, object and array pass
// through unmapped.
var primitiveTypes = map[string]string{
	"string":  "string",
	"integer": "number",
	"number":  "number",
}

func primitiveType(kind string) (string, bool) {
	t, ok := primitiveTypes[kind]
	return t, ok
}

// namedRef renders a reference to a named declaration.
func namedRef(id string) string {
	if id == "" {
		return AnyType
	}
	return id
}

// sequenceOf renders an array type, parenthesizing composite element types.
func sequenceOf(elem string) string {
	if strings.Contains(elem, " | ") && !strings.HasPrefix(elem, "(") {
		return "(" + elem + ")[]"
	}
	return elem + "[]"
}

// unionOf joins alternative types with the union separator.
func unionOf(parts []string) string {
	return strings.Join(parts, " | ")
}

// literalUnion renders an enum as the union of its values' canonical JSON
// encodings. Enum takes precedence over every other shape rule.
func literalUnion(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		enc, err := json.Marshal(v)
		if err != nil {
			parts = append(parts, AnyType)
			continue
		}
		parts = append(parts, string(enc))
	}
	return unionOf(parts)
}

// jsdoc renders a description as a comment block, one comment line per
// source line.
func jsdoc(description string) []string {
	lines := strings.Split(strings.TrimSpace(description), "\n")
	if len(lines) == 1 {
		return []string{"/** " + lines[0] + " */"}
	}
	out := make([]string, 0, len(lines)+2)
	out = append(out, "/**")
	for _, line := range lines {
		if line == "" {
			out = append(out, " *")
		} else {
			out = append(out, " * "+line)
		}
	}
	out = append(out, " */")
	return out
}
