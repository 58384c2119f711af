package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationResult holds config validation results.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// ValidateDetailed performs thorough config validation with suggestions.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}

	if c.Input == "" {
		result.Errors = append(result.Errors, "input: a schema document path is required")
	} else {
		ext := strings.ToLower(filepath.Ext(c.Input))
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("input: extension %q is unusual — expected .json, .yaml, or .yml", ext))
		}
	}

	// Output is optional (empty means stdout)
	if c.Output != "" && !strings.HasSuffix(c.Output, ".ts") {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("output: %q does not end in .ts — the generated text is a TypeScript declaration file", c.Output))
	}

	if c.ContainerName != "" && !strings.HasSuffix(strings.TrimSpace(c.ContainerName), "{") {
		result.Errors = append(result.Errors,
			fmt.Sprintf("containerName: %q must open a block, e.g. %q", c.ContainerName, "declare namespace API {"))
	}

	return result
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}
