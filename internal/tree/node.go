// Package tree builds the namespace tree underlying the generated structs.
//
// Each dotted name is inserted segment by segment into a shared tree;
// shared prefixes merge into the same nodes. Children are keyed by the raw
// segment text as written, so the original spelling stays available for
// identifier derivation at emission time.
package tree

import (
	"sort"

	"github.com/laggycomputer/env-vars-struct/internal/naming"
)

// Node represents one path segment at one depth.
type Node struct {
	// Children maps raw segment text to the child node.
	Children map[string]*Node

	// BoundKey is the full original dotted name that terminates exactly at
	// this node, or "" when no name ends here. The root never has one.
	BoundKey string
}

// New returns an empty tree root.
func New() *Node {
	return &Node{}
}

// Insert walks from this node along segments, creating children on first
// reference, and binds fullPath at the final segment. Inserting the same
// segment sequence twice keeps the later binding; the previously bound key
// is returned so callers can report the overwrite. An empty segment list is
// ignored.
func (n *Node) Insert(segments []string, fullPath string) (prev string) {
	if len(segments) == 0 {
		return ""
	}

	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}

	child, ok := n.Children[segments[0]]
	if !ok {
		child = &Node{}
		n.Children[segments[0]] = child
	}

	if len(segments) == 1 {
		prev = child.BoundKey
		child.BoundKey = fullPath

		return prev
	}

	return child.Insert(segments[1:], fullPath)
}

// IsLeaf reports whether the node is emitted as a scalar field: bound to a
// name and without children. A bound node that also has children counts as
// internal; its binding is discarded at emission (nested wins).
func (n *Node) IsLeaf() bool {
	return n.BoundKey != "" && len(n.Children) == 0
}

// Child pairs a raw segment with its node.
type Child struct {
	Segment string
	Node    *Node
}

// SortedChildren returns the children ordered lexicographically by the
// normalized field identifier of their raw segment, so emission order never
// depends on map iteration. Distinct raw segments that normalize to the
// same identifier tie-break on the raw text.
func (n *Node) SortedChildren() []Child {
	out := make([]Child, 0, len(n.Children))
	for segment, child := range n.Children {
		out = append(out, Child{Segment: segment, Node: child})
	}

	sort.Slice(out, func(i, j int) bool {
		a := naming.FieldIdent(out[i].Segment)
		b := naming.FieldIdent(out[j].Segment)

		if a != b {
			return a < b
		}

		return out[i].Segment < out[j].Segment
	})

	return out
}
