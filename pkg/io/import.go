package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wordlattice/lattice/pkg/nodelink"
)

// ReadJSON decodes a node-link document from r.
//
// Every link must reference node IDs present in the document; a dangling
// link is a decode error, not a silently dropped entry. Duplicate node IDs
// are rejected the same way. ReadJSON does not close r, and the returned
// graph is independent of it.
func ReadJSON(r io.Reader) (*nodelink.Graph, error) {
	var g nodelink.Graph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	ids := make(map[int]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := ids[n.ID]; dup {
			return nil, fmt.Errorf("node %d: duplicate id", n.ID)
		}
		ids[n.ID] = struct{}{}
	}
	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			return nil, fmt.Errorf("link %d->%d: unknown source node", l.Source, l.Target)
		}
		if _, ok := ids[l.Target]; !ok {
			return nil, fmt.Errorf("link %d->%d: unknown target node", l.Source, l.Target)
		}
	}

	return &g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded projection.
// It returns the same validation errors as [ReadJSON], wrapped with the
// file path for context.
func ImportJSON(path string) (*nodelink.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
