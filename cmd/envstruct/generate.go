package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/laggycomputer/env-vars-struct/internal/diagnostic"
	"github.com/laggycomputer/env-vars-struct/internal/gen"
	"github.com/laggycomputer/env-vars-struct/internal/pathspec"
	"github.com/laggycomputer/env-vars-struct/internal/schema"
)

var (
	// Command-specific flags for generate
	manifestPath string
	outputDir    string
	packageName  string
	rootName     string
	fileName     string
	noComments   bool
	dryRun       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [NAME ...]",
	Short: "Generate Go source for a list of dotted variable names",
	Long: `Generate nested struct declarations and constructors for the given
dotted variable names. Names come from a manifest file, from the argument
list, or both (manifest entries first).

Examples:
  envstruct generate DATABASE.HOST DATABASE.PORT HAT
  envstruct generate --manifest vars.yaml --output ./internal/config --package config`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := collectPaths(args)
		if err != nil {
			return err
		}

		if len(paths) == 0 {
			return errors.New("no variable names given; pass names as arguments or use --manifest")
		}

		records, diags := schema.FromPaths(paths, rootName)
		logWarnings(diags)

		cfg := gen.DefaultConfig()
		cfg.PackageName = packageName
		cfg.OutputDir = outputDir
		cfg.Filename = fileName
		cfg.GenerateComments = !noComments

		file, err := gen.NewGenerator(cfg).Generate(records)
		if err != nil {
			return fmt.Errorf("generating code: %w", err)
		}

		if dryRun {
			_, err = os.Stdout.Write(file.Content)

			return err
		}

		if err := gen.WriteFiles([]gen.GeneratedFile{*file}, outputDir); err != nil {
			return err
		}

		log.WithFields(log.Fields{
			"file":    file.Filename,
			"output":  outputDir,
			"records": len(records),
			"names":   len(paths),
		}).Info("generated configuration structs")

		return nil
	},
}

// collectPaths merges manifest entries with inline arguments, manifest
// first, preserving order in both.
func collectPaths(args []string) ([]string, error) {
	var paths []string

	if manifestPath != "" {
		loaded, err := pathspec.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}

		log.WithFields(log.Fields{
			"manifest": manifestPath,
			"names":    len(loaded),
		}).Debug("loaded manifest")

		paths = append(paths, loaded...)
	}

	return append(paths, args...), nil
}

func logWarnings(diags diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		log.WithFields(log.Fields{
			"code": w.Code,
			"path": w.Path,
		}).Warn(w.Message)
	}
}

func init() {
	// Generate command specific flags
	generateCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest file listing variable names (.txt, .yaml, .toml)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "./generated", "Output directory for the generated file")
	generateCmd.Flags().StringVarP(&packageName, "package", "p", "config", "Package name of the generated file")
	generateCmd.Flags().StringVar(&rootName, "root", schema.DefaultRootName, "Type name of the root struct")
	generateCmd.Flags().StringVar(&fileName, "filename", "env_vars.go", "Name of the generated file")
	generateCmd.Flags().BoolVar(&noComments, "no-comments", false, "Omit doc comments on generated declarations")
	generateCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the generated source instead of writing it")
}
