// Package dawg builds a minimal directed acyclic word graph (DAWG) from a
// stream of words.
//
// # Overview
//
// A DAWG is a prefix trie whose structurally identical suffix subtrees have
// been merged, so that shared suffixes occupy a single subgraph. The node
// count of the minimized graph approaches the number of distinct suffixes in
// the word set, not the number of words.
//
// The build happens in two phases. [DAWG.Insert] grows a standard trie rooted
// at a single root node, linking every word's terminal node to one shared
// sink via a reserved terminator edge. [DAWG.Minimize] then merges nodes
// whose (label, outgoing edge set) fingerprints coincide, processing nodes
// bottom-up by creation depth so that every node's children are already
// canonical before the node itself is considered.
//
// # Basic Usage
//
// Create a graph with [New], insert words, then minimize:
//
//	d := dawg.New()
//	for _, w := range []string{"cat", "car", "cats"} {
//	    if err := d.Insert(w); err != nil {
//	        // empty or malformed word - skip and continue
//	    }
//	}
//	merged := d.Minimize()
//	d.AssignLevels()
//
// After minimization, [DAWG.Contains] answers membership queries and
// [DAWG.Words] enumerates every inserted word in lexicographic order.
// [DAWG.Validate] checks structural integrity without mutating the graph.
//
// # Case Folding
//
// Words are folded to lower case before insertion, so "Cat" and "cat" share
// a single path. This folding is part of the contract: membership queries
// fold their input the same way.
//
// # Empty Words
//
// The empty string is rejected with [ErrEmptyWord] rather than linked
// directly from root to sink. Callers batching many words should treat the
// error as skip-and-continue.
//
// # Levels
//
// [DAWG.AssignLevels] computes, for every surviving node, the length of the
// longest root-to-node path via topological relaxation. Levels exist for
// downstream layout and visualization only; they play no role in
// minimization.
//
// # Concurrency
//
// A DAWG is not safe for concurrent use. The intended lifecycle is strictly
// sequential: insert all words, minimize once, then query.
package dawg
