package main

import (
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/laggycomputer/env-vars-struct/internal/schema"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [NAME ...]",
	Short: "Print the derived schema without generating code",
	Long: `Inspect shows the record types, field order, and source keys that
generate would emit for the given names. Useful for checking how names
normalize and how prefix collisions resolve before committing to output.

Example:
  envstruct inspect --manifest vars.yaml`,
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

		for _, rec := range records {
			fmt.Printf("%s", rec.TypeName)
			if rec.IsRoot {
				fmt.Printf(" (root)")
			}
			fmt.Println()

			for _, f := range rec.Fields {
				switch f.Kind {
				case schema.FieldLeaf:
					fmt.Printf("  %s string <- %s\n", f.Name, f.SourceKey)
				case schema.FieldNested:
					fmt.Printf("  %s %s\n", f.Name, f.ChildType)
				}
			}
		}

		if verbose {
			spew.Dump(records)
		}

		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Manifest file listing variable names (.txt, .yaml, .toml)")
	inspectCmd.Flags().StringVar(&rootName, "root", schema.DefaultRootName, "Type name of the root struct")
}
