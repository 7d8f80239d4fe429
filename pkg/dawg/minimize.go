package dawg

import (
	"cmp"
	"fmt"
	"slices"
)

// Minimize merges nodes whose canonical fingerprints coincide, turning the
// trie into a minimal DAG. It returns the number of nodes merged away.
//
// Nodes are processed in order of decreasing creation depth. This is the
// correctness requirement of the whole pass: a node's fingerprint refers to
// the identities of its current children, so every child must already have
// reached its final, canonical identity before the parent's fingerprint is
// computed. In a trie grown purely by character-by-character extension a
// node's children are always strictly deeper than the node, so descending
// depth settles children first. Ties within a depth are broken by creation
// order, which only affects which of two equivalent nodes survives.
//
// When a node turns out to be redundant, every parent edge that pointed at
// it is rewritten to the surviving representative, and the representative
// inherits those parents so merges higher up the graph see it. The redundant
// node leaves the live set and is never resurrected.
//
// The registry of fingerprints is rebuilt on every call, seeded with the
// sink's fixed key, so Minimize is safe to call again after further
// inspection - a second call on an already-minimal graph merges nothing.
//
// Minimize panics if it encounters a non-root node with no recorded parents:
// such a node cannot exist in a graph built only through Insert, so this is
// a construction bug, not a recoverable condition.
func (d *DAWG) Minimize() int {
	registry := make(map[string]*Node, len(d.nodes))
	registry[sinkKey] = d.sink

	pending := make([]*Node, 0, len(d.nodes)-1)
	for n := range d.nodes {
		if n != d.sink {
			pending = append(pending, n)
		}
	}
	slices.SortFunc(pending, func(a, b *Node) int {
		if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	merged := 0
	for _, node := range pending {
		key := node.key()
		rep, ok := registry[key]
		if !ok {
			registry[key] = node
			continue
		}
		if rep == node {
			continue
		}

		if node != d.root && len(node.parents) == 0 {
			panic(fmt.Sprintf("dawg: node %d (label %q, depth %d) has no parents", node.id, node.Label, node.Depth))
		}

		for parent := range node.parents {
			for label, child := range parent.Children {
				if child == node {
					parent.Children[label] = rep
				}
			}
			rep.addParent(parent)
		}
		delete(d.nodes, node)
		merged++
	}
	return merged
}
