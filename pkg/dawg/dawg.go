package dawg

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptyWord is returned by [DAWG.Insert] for the empty string. Empty
	// input is rejected rather than linked directly from root to sink.
	ErrEmptyWord = errors.New("empty word")

	// ErrInvalidWord is returned by [DAWG.Insert] for words that are not
	// valid UTF-8 or contain control characters.
	ErrInvalidWord = errors.New("invalid word")
)

// DAWG is a directed acyclic word graph under construction or after
// minimization. It owns the root, the single shared sink, and the set of all
// live nodes.
//
// The zero value is not usable - use [New]. A DAWG is not safe for
// concurrent use.
type DAWG struct {
	root   *Node
	sink   *Node
	nodes  map[*Node]struct{}
	nextID int
	words  int
}

// New creates an empty word graph containing only the root and the sink.
func New() *DAWG {
	d := &DAWG{nodes: make(map[*Node]struct{})}
	d.root = d.newNode(0, 0)
	d.sink = d.newNode(0, 0)
	// The sink never grows children; keep its map empty but non-nil so
	// traversals need no special case.
	return d
}

func (d *DAWG) newNode(label rune, depth int) *Node {
	n := &Node{
		Label:    label,
		Children: make(map[rune]*Node),
		Depth:    depth,
		id:       d.nextID,
		parents:  make(map[*Node]struct{}),
	}
	d.nextID++
	d.nodes[n] = struct{}{}
	return n
}

// Root returns the root node.
func (d *DAWG) Root() *Node { return d.root }

// Sink returns the shared sink node that every word's terminal node links to.
func (d *DAWG) Sink() *Node { return d.sink }

// IsSink reports whether n is the graph's sink.
func (d *DAWG) IsSink(n *Node) bool { return n == d.sink }

// Live reports whether n is in the live node set. Nodes discarded by
// [DAWG.Minimize] are no longer live.
func (d *DAWG) Live(n *Node) bool {
	_, ok := d.nodes[n]
	return ok
}

// NodeCount returns the number of live nodes, including root and sink.
func (d *DAWG) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges between live nodes.
func (d *DAWG) EdgeCount() int {
	count := 0
	for n := range d.nodes {
		count += len(n.Children)
	}
	return count
}

// WordCount returns the number of distinct words inserted so far.
func (d *DAWG) WordCount() int { return d.words }

// Fold returns the canonical form of a word: lower case. Insert and Contains
// both apply it, so "Cat" and "cat" are the same word.
func Fold(word string) string { return strings.ToLower(word) }

// Insert adds a word to the graph, extending the trie character by character
// and linking the final node to the sink. Inserting a word that is already
// present re-walks the existing path and changes nothing.
//
// Returns [ErrEmptyWord] for the empty string and [ErrInvalidWord] for
// malformed input; both are skip-and-continue conditions for batch callers.
// Insert must not be called after [DAWG.Minimize].
func (d *DAWG) Insert(word string) error {
	folded := Fold(word)
	if folded == "" {
		return ErrEmptyWord
	}
	if !utf8.ValidString(folded) {
		return ErrInvalidWord
	}
	// Reject before touching the graph, so a malformed word never leaves a
	// partial path behind.
	for _, r := range folded {
		if unicode.IsControl(r) {
			return ErrInvalidWord
		}
	}

	node := d.root
	depth := 0
	for _, r := range folded {
		depth++
		child, ok := node.Children[r]
		if !ok {
			child = d.newNode(r, depth)
			node.Children[r] = child
		}
		child.addParent(node)
		node = child
	}

	if _, ok := node.Children[EndEdge]; !ok {
		node.Children[EndEdge] = d.sink
		d.sink.addParent(node)
		d.words++
	}
	return nil
}

// Contains reports whether the word was inserted, following the same case
// folding as [DAWG.Insert]. It works both before and after minimization.
func (d *DAWG) Contains(word string) bool {
	folded := Fold(word)
	if folded == "" {
		return false
	}
	node := d.root
	for _, r := range folded {
		child, ok := node.Children[r]
		if !ok {
			return false
		}
		node = child
	}
	_, ok := node.Children[EndEdge]
	return ok
}

// Words enumerates every word in the graph in lexicographic order by spelling
// out each root-to-sink walk. After minimization this is exactly the set of
// inserted words: merging shares structure but never introduces spurious
// paths.
func (d *DAWG) Words() []string {
	var words []string
	var prefix []rune

	var walk func(n *Node)
	walk = func(n *Node) {
		for _, label := range n.Labels() {
			if label == EndEdge {
				words = append(words, string(prefix))
				continue
			}
			prefix = append(prefix, label)
			walk(n.Children[label])
			prefix = prefix[:len(prefix)-1]
		}
	}
	walk(d.root)
	return words
}
