package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand — default to generate
		return runGenerate(os.Args[1:])
	}

	switch os.Args[1] {
	case "generate":
		return runGenerate(os.Args[2:])
	case "--version", "-v":
		fmt.Println("dtsgen", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// Check if first arg starts with - (it's a flag, not a subcommand)
		if strings.HasPrefix(os.Args[1], "-") {
			return runGenerate(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("dtsgen - generate TypeScript declarations from a JSON-Schema definitions document")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  dtsgen [flags]                Generate declarations (default)")
	fmt.Println("  dtsgen generate [flags]       Generate declarations")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Generate Flags:")
	fmt.Println("  --input, -i <path>     Schema document (.json, .yaml, .yml)")
	fmt.Println("  --output, -o <path>    Output declaration file (default: stdout)")
	fmt.Println("  --config <path>        Path to dtsgen.config.json")
	fmt.Println("  --camel-case           Convert emitted identifiers and keys to camelCase")
	fmt.Println("  --container <text>     Text opening the container declaration")
	fmt.Println("  --no-format            Skip prettier, use the built-in normalizer")
	fmt.Println("  --verbose              Log the resolution pass")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  dtsgen -i schema.json")
	fmt.Println("  dtsgen generate -i schema.yaml -o types.d.ts --camel-case")
	fmt.Println("  dtsgen --config dtsgen.config.json")
	fmt.Println()
}
