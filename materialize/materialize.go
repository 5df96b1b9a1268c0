// Package materialize builds the nested configuration at runtime, without
// code generation.
//
// It runs the same pipeline as the generator - split, tree, classify,
// normalize - but instead of emitting declarations it performs the source
// lookups immediately and returns a nested map[string]any whose keys are
// the normalized field identifiers. Decode additionally maps that result
// onto a caller-supplied struct.
package materialize

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/laggycomputer/env-vars-struct/envsource"
	"github.com/laggycomputer/env-vars-struct/internal/naming"
	"github.com/laggycomputer/env-vars-struct/internal/pathspec"
	"github.com/laggycomputer/env-vars-struct/internal/tree"
)

// MissingError reports a declared variable the source could not resolve.
// Construction is all-or-nothing: the first missing key aborts the whole
// build and no partial configuration is returned.
type MissingError struct {
	Key string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("environment variable %s not found", e.Key)
}

// Build resolves the given dotted names against src and returns the nested
// configuration. Leaves are string values keyed by their normalized field
// identifier; namespaces are nested maps. Lookups happen in the same
// deterministic order the generator emits fields in. Empty names are
// skipped; duplicate names resolve last-write-wins; a name that is both a
// value and a namespace materializes as the namespace only.
func Build(paths []string, src envsource.Source) (map[string]any, error) {
	root := tree.New()

	for _, p := range paths {
		segments := pathspec.Split(p)
		if len(segments) == 0 {
			continue
		}

		root.Insert(segments, p)
	}

	return buildNode(root, src)
}

func buildNode(node *tree.Node, src envsource.Source) (map[string]any, error) {
	out := make(map[string]any, len(node.Children))

	for _, child := range node.SortedChildren() {
		name := naming.FieldIdent(child.Segment)

		if child.Node.IsLeaf() {
			value, ok := src.Lookup(child.Node.BoundKey)
			if !ok {
				return nil, &MissingError{Key: child.Node.BoundKey}
			}

			out[name] = value

			continue
		}

		nested, err := buildNode(child.Node, src)
		if err != nil {
			return nil, err
		}

		out[name] = nested
	}

	return out, nil
}

// Decode builds the nested configuration and decodes it into out, which
// must be a pointer to a struct. Struct fields match the normalized
// identifiers case-insensitively (mapstructure's default), so a field
// named RedisUrl picks up the "redis_url" key via a mapstructure tag and
// Host picks up "host" with no tag at all.
func Decode(paths []string, src envsource.Source, out any) error {
	values, err := Build(paths, src)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out,
		ErrorUnused: false,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decoding configuration: %w", err)
	}

	return nil
}
