// Package main provides the CLI entrypoint for envstruct.
//
// envstruct is a codegen tool that:
//   - Reads a flat list of dotted environment variable names
//   - Builds a namespace tree from the shared path prefixes
//   - Generates nested Go structs whose constructors read the environment,
//     failing fast when a declared variable is missing
package main

import "os"

// Build-time variables (set via -ldflags by the build system).
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
