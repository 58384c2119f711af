package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dtsgen/dtsgen/internal/config"
	"github.com/dtsgen/dtsgen/internal/emit"
	"github.com/dtsgen/dtsgen/internal/format"
	"github.com/dtsgen/dtsgen/internal/schema"
)

// runGenerate executes the full pipeline:
// load config -> parse document -> resolve and synthesize -> format -> write.
func runGenerate(args []string) int {
	genFlags := flag.NewFlagSet("generate", flag.ExitOnError)

	var (
		configPath string
		input      string
		output     string
		camelCase  bool
		container  string
		noFormat   bool
		verbose    bool
	)

	genFlags.StringVar(&configPath, "config", "", "Path to dtsgen config file (dtsgen.config.json)")
	genFlags.StringVar(&input, "input", "", "Path to the schema document")
	genFlags.StringVar(&input, "i", "", "Path to the schema document (shorthand for --input)")
	genFlags.StringVar(&output, "output", "", "Path of the generated declaration file (default: stdout)")
	genFlags.StringVar(&output, "o", "", "Path of the generated declaration file (shorthand for --output)")
	genFlags.BoolVar(&camelCase, "camel-case", false, "Convert emitted identifiers and field keys to camelCase")
	genFlags.StringVar(&container, "container", "", "Text opening the container declaration")
	genFlags.BoolVar(&noFormat, "no-format", false, "Skip the external formatter")
	genFlags.BoolVar(&verbose, "verbose", false, "Log the resolution pass")

	genFlags.Usage = func() {
		fmt.Println("Usage: dtsgen generate [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		genFlags.PrintDefaults()
	}

	genFlags.Parse(args)

	start := time.Now()

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		cfg = *loaded
	}

	// Flags override file values
	if input != "" {
		cfg.Input = input
	}
	if output != "" {
		cfg.Output = output
	}
	if camelCase {
		cfg.CamelCase = true
	}
	if container != "" {
		cfg.ContainerName = container
	}
	if noFormat {
		cfg.Formatter.Disable = true
	}

	result := cfg.ValidateDetailed()
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if !result.IsValid() {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", e)
		}
		return 1
	}

	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: could not build logger: %v\n", err)
			return 1
		}
		defer dev.Sync()
		logger = dev
	}

	doc, err := schema.Load(cfg.Input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	var svc format.Service = format.Normalizer{}
	if !cfg.Formatter.Disable {
		svc = format.WithFallback(format.Prettier{Command: cfg.Formatter.Command}, format.Normalizer{})
	}

	res, err := emit.Generate(doc, emit.Config{
		CamelCase:     cfg.CamelCase,
		ContainerName: cfg.ContainerName,
	}, svc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "%s\n", d)
	}

	if cfg.Output == "" {
		fmt.Print(res.Output)
		return 0
	}
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "error: creating output directory: %v\n", err)
			return 1
		}
	}
	if err := os.WriteFile(cfg.Output, []byte(res.Output), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing output: %v\n", err)
		return 1
	}

	fmt.Printf("✓ Generated %s (%d declarations considered) in %s\n",
		cfg.Output, len(doc.Definitions), time.Since(start).Round(time.Millisecond))
	return 0
}
