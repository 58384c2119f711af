// Package format is the external formatting collaborator: it receives the
// unformatted declaration text produced by a resolution pass and returns
// canonicalized source. The generator never inspects the result.
package format

import (
	"strings"
)

// Dialect selects the parser the formatter should use.
type Dialect string

const DialectTypeScript Dialect = "typescript"

// Quote is the string-quoting preference requested from the formatter.
type Quote string

const (
	QuoteDouble Quote = "double"
	QuoteSingle Quote = "single"
)

// Options describe the target syntax and style for one Format call.
type Options struct {
	Dialect Dialect
	Quote   Quote
}

// Service canonicalizes generated declaration text.
type Service interface {
	Format(src string, opts Options) (string, error)
}

// Normalizer is the built-in fallback formatter: it re-indents by brace
// depth with two-space indentation and trims trailing whitespace. It does
// not honor the quote preference; that requires a real formatter.
type Normalizer struct{}

// Format implements Service.
func (Normalizer) Format(src string, _ Options) (string, error) {
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	depth := 0
	var sb strings.Builder
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			sb.WriteString("\n")
			continue
		}
		if strings.HasPrefix(trimmed, "}") && depth > 0 {
			depth--
		}
		sb.WriteString(strings.Repeat("  ", depth))
		if strings.HasPrefix(trimmed, "*") {
			// continuation line of a block comment
			sb.WriteString(" ")
		}
		sb.WriteString(trimmed)
		sb.WriteString("\n")
		if strings.HasSuffix(trimmed, "{") {
			depth++
		}
	}
	return sb.String(), nil
}
