// Package ident normalizes raw schema names and property keys into
// identifiers that are safe to emit in TypeScript declarations.
package ident

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// segment capitalizes the leading letter of a camelCase segment without
// lowering the rest, so "httpStatus" becomes "HttpStatus" and acronyms
// survive untouched.
var segment = cases.Title(language.Und, cases.NoLower)

// SanitizeName produces the canonical identifier for a raw declaration
// name by deleting every dot. Two distinct raw names can collide after
// sanitization; the driver detects that and fails rather than silently
// overwriting (see resolve.ErrNameCollision).
func SanitizeName(raw string) string {
	return strings.ReplaceAll(raw, ".", "")
}

// CamelCase converts a kebab-case, snake_case, dotted.case or
// space-separated name into camelCase: the letter following each separator
// is uppercased and non-alphanumeric characters are stripped. The case of
// the leading segment is preserved, so the conversion is idempotent and
// PascalCase declaration names stay PascalCase.
func CamelCase(s string) string {
	parts := strings.FieldsFunc(s, isSeparator)
	if len(parts) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(stripNonAlnum(parts[0]))
	for _, p := range parts[1:] {
		b.WriteString(segment.String(stripNonAlnum(p)))
	}
	return b.String()
}

// Capitalize uppercases the first rune. Used to derive the candidate
// identifier for a nested anonymous shape: containing identifier plus
// capitalized field name.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(unicode.ToUpper(r[0])) + string(r[1:])
}

// PropertyKey returns a property key ready for emission: valid TypeScript
// identifiers pass through, anything else (hyphenated keys in particular)
// is double-quoted rather than renamed.
func PropertyKey(name string) string {
	if len(name) == 0 {
		return `""`
	}
	for i, r := range name {
		if i == 0 {
			if !isIdentStart(r) {
				return `"` + name + `"`
			}
		} else if !isIdentPart(r) {
			return `"` + name + `"`
		}
	}
	return name
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == '.' || r == ' '
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func stripNonAlnum(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, s)
}
