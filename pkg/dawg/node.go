package dawg

import (
	"slices"
	"strconv"
	"strings"
)

// EndEdge is the reserved edge label connecting a word's terminal node to the
// shared sink. It never collides with a word character because Insert rejects
// words containing control characters.
const EndEdge rune = 0

// sinkKey is the fixed canonical key of the sink node. Every other live
// node's key contains at least one edge separator, so no collision is
// possible.
const sinkKey = "<end>"

// Node is a vertex in the word graph.
//
// Nodes are created by [DAWG.Insert] and possibly discarded by
// [DAWG.Minimize]; they are never created any other way. The zero value is
// not usable.
type Node struct {
	// Label is the character on the edge by which this node was first
	// created. It is 0 for the root and for the sink; use [DAWG.Root] and
	// [DAWG.Sink] to tell those two apart.
	Label rune

	// Children maps edge labels to child nodes. The [EndEdge] key, when
	// present, always points at the sink.
	Children map[rune]*Node

	// Depth is the length of the path by which the node was first created
	// (root = 0). It is fixed for the lifetime of the node and orders the
	// bottom-up minimization pass; it is not a graph-distance measure.
	Depth int

	// Level is the longest-path distance from the root, valid only after
	// [DAWG.AssignLevels] has run. Unrelated to Depth.
	Level int

	// id is the arena-style identity used in canonical keys. Stable for the
	// lifetime of the node.
	id int

	// parents holds every node with an edge into this one. Used during
	// minimization to rewrite edges; the map keying deduplicates repeat
	// visits from multiple words.
	parents map[*Node]struct{}
}

func (n *Node) addParent(p *Node) {
	n.parents[p] = struct{}{}
}

// Labels returns the node's edge labels in ascending order. EndEdge sorts
// first, which keeps enumeration lexicographic: a word is emitted before any
// of its extensions. Deterministic iteration order is required wherever a
// structural key or an export projection is derived.
func (n *Node) Labels() []rune {
	labels := make([]rune, 0, len(n.Children))
	for label := range n.Children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// key computes the shallow canonical fingerprint: the node's label plus the
// sorted (edge label, child identity) pairs. Child identity is the child's
// arena id, so the key is only meaningful once all children are themselves
// canonical - Minimize guarantees that by processing deepest nodes first.
func (n *Node) key() string {
	var b strings.Builder
	b.WriteRune(n.Label)
	for _, label := range n.Labels() {
		b.WriteByte('|')
		b.WriteRune(label)
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(n.Children[label].id))
	}
	return b.String()
}
