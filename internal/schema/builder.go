// Package schema derives record type declarations from the namespace tree.
//
// The derivation is pure: the same ordered input list always yields the
// same records in the same order, independent of map iteration. Emission
// mechanics (turning records into Go source) live in internal/gen; runtime
// materialization lives in the materialize package. Both consume the
// records produced here.
package schema

import (
	"fmt"

	"github.com/laggycomputer/env-vars-struct/internal/diagnostic"
	"github.com/laggycomputer/env-vars-struct/internal/naming"
	"github.com/laggycomputer/env-vars-struct/internal/pathspec"
	"github.com/laggycomputer/env-vars-struct/internal/tree"
)

// DefaultRootName is the type name of the top-level record when the caller
// does not override it.
const DefaultRootName = "Vars"

// FromPaths builds the full record schema from an ordered list of dotted
// names. Empty names are skipped. Duplicate names resolve last-write-wins
// and produce a warning diagnostic.
func FromPaths(paths []string, rootName string) ([]Record, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	root := tree.New()

	for _, p := range paths {
		segments := pathspec.Split(p)
		if len(segments) == 0 {
			continue
		}

		if prev := root.Insert(segments, p); prev != "" {
			diags.AddWarning(diagnostic.CodeDuplicatePath,
				fmt.Sprintf("%q declared more than once; the last entry wins", prev), p)
		}
	}

	records, buildDiags := Build(root, rootName)
	diags.Merge(buildDiags)

	return records, diags
}

// Build derives records from an already-constructed tree. One record is
// produced per internal node, children before parents, with the root record
// last. Field order within a record follows tree.SortedChildren: wherever
// the tree stores children in a map, the emitted order is lexicographic by
// normalized field identifier.
//
// Classification follows the node shape: a node bound to a name with no
// children becomes a leaf field; any node with children becomes a nested
// field referencing its own record, and a binding it may also carry is
// discarded (nested wins, with a warning).
func Build(root *tree.Node, rootName string) ([]Record, diagnostic.Diagnostics) {
	if rootName == "" {
		rootName = DefaultRootName
	}

	b := &builder{}
	b.collect(root, rootName, "", true)

	return b.records, b.diags
}

type builder struct {
	records []Record
	diags   diagnostic.Diagnostics
}

func (b *builder) collect(node *tree.Node, typeName, path string, isRoot bool) {
	rec := Record{TypeName: typeName, Path: path, IsRoot: isRoot}

	// Tracks normalized identifiers to report sibling collisions. The
	// colliding fields are still emitted; the generated code will not
	// compile, which beats silently dropping one of them.
	seen := make(map[string]string, len(node.Children))

	for _, child := range node.SortedChildren() {
		ident := naming.FieldIdent(child.Segment)
		childPath := joinPath(path, child.Segment)

		if prevRaw, dup := seen[ident]; dup {
			b.diags.AddWarning(diagnostic.CodeFieldCollision,
				fmt.Sprintf("segments %q and %q normalize to the same field %q", prevRaw, child.Segment, ident),
				childPath)
		}
		seen[ident] = child.Segment

		if child.Node.IsLeaf() {
			rec.Fields = append(rec.Fields, Field{
				Name:      ident,
				Kind:      FieldLeaf,
				SourceKey: child.Node.BoundKey,
			})

			continue
		}

		if child.Node.BoundKey != "" {
			b.diags.AddWarning(diagnostic.CodeLeafDiscarded,
				fmt.Sprintf("%q is bound as a value but also used as a namespace; the value binding is dropped", child.Node.BoundKey),
				childPath)
		}

		childType := typeName + naming.TypeFragment(child.Segment)

		// Children first, so every record is declared before it is referenced.
		b.collect(child.Node, childType, childPath, false)

		rec.Fields = append(rec.Fields, Field{
			Name:      ident,
			Kind:      FieldNested,
			ChildType: childType,
		})
	}

	b.records = append(b.records, rec)
}

func joinPath(parent, segment string) string {
	if parent == "" {
		return segment
	}

	return parent + "." + segment
}
