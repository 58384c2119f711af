// Package diagnostic reports non-fatal findings from a resolution pass:
// schemas the generator ignored, declarations it suppressed, and fidelity
// gaps it preserves on purpose.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering.
type Category string

const (
	// CategoryRootIgnored: a top-level definition is not object-shaped and
	// cannot be represented as a root declaration.
	CategoryRootIgnored Category = "root-ignored"

	// CategorySkippedAlias: the skip rule suppressed a vacuous primitive
	// wrapper; references to its identifier will dangle.
	CategorySkippedAlias Category = "skipped-alias"

	// CategoryRequiredNotMerged: a composed-in schema carries a required
	// list, which is not merged into the composing declaration.
	CategoryRequiredNotMerged Category = "required-not-merged"

	// CategoryUnknownShape: a node matched none of the recognized shapes
	// and fell back to the generic any type.
	CategoryUnknownShape Category = "unknown-shape"
)

// Diagnostic is one structured finding, attached to the declaration
// identifier being processed when it was raised.
type Diagnostic struct {
	Severity Severity
	Category Category
	Schema   string // declaration identifier, empty if document-level
	Message  string
	Hint     string // optional suggestion
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder
	if d.Schema != "" {
		sb.WriteString(d.Schema)
		sb.WriteString(" - ")
	}
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	if d.Category != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Category)
	}
	sb.WriteString(d.Message)
	if d.Hint != "" {
		sb.WriteString("\n  hint: ")
		sb.WriteString(d.Hint)
	}
	return sb.String()
}

// Collector collects diagnostics during a resolution pass.
type Collector struct {
	diagnostics []Diagnostic
	quiet       bool // if true, suppress everything
}

// NewCollector creates a new diagnostic collector.
func NewCollector(quiet bool) *Collector {
	return &Collector{quiet: quiet}
}

// Warn adds a warning diagnostic.
func (c *Collector) Warn(category Category, schemaID, message string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Schema:   schemaID,
		Message:  message,
	})
}

// WarnWithHint adds a warning with a suggestion.
func (c *Collector) WarnWithHint(category Category, schemaID, message, hint string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Schema:   schemaID,
		Message:  message,
		Hint:     hint,
	})
}

// Info adds an informational diagnostic.
func (c *Collector) Info(category Category, schemaID, message string) {
	if c == nil || c.quiet {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityInfo,
		Category: category,
		Schema:   schemaID,
		Message:  message,
	})
}

// Diagnostics returns all collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// WarningCount returns the number of warning diagnostics.
func (c *Collector) WarningCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, d := range c.diagnostics {
		if d.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// HasWarnings reports whether any warning diagnostics were collected.
func (c *Collector) HasWarnings() bool {
	return c.WarningCount() > 0
}

// FormatAll formats all diagnostics as a multi-line string.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Summary returns a summary line like "2 warning(s)".
func (c *Collector) Summary() string {
	if c == nil {
		return ""
	}
	if w := c.WarningCount(); w > 0 {
		return fmt.Sprintf("%d warning(s)", w)
	}
	return "no issues"
}
