package nodelink

import (
	"github.com/wordlattice/lattice/pkg/dawg"
)

// Names used in the exported projection. The root and the sink carry no
// character of their own, so they get fixed display names; the terminator
// edge is labeled distinctly from any single-character edge.
const (
	RootName = "ROOT"
	SinkName = "END"
	EndLabel = "<END>"
)

// Graph is the node-link projection of a word graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is one exported vertex.
type Node struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Link is one exported edge. Source and Target reference node IDs from the
// same projection.
type Link struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	Label  string `json:"label"`
}

// NodeCount returns the number of exported nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// LinkCount returns the number of exported links.
func (g *Graph) LinkCount() int { return len(g.Links) }

// Project traverses the graph breadth-first from the root and builds its
// node-link projection. IDs are assigned in visit order with the root at 0;
// children are visited in sorted label order, so the projection is
// deterministic for a given graph structure.
//
// A positive limit caps the number of exported nodes. Links are exported
// only when both endpoints made the cut, so a truncated projection never
// dangles. limit <= 0 exports everything.
//
// Project reads the graph without mutating it.
func Project(d *dawg.DAWG, limit int) *Graph {
	g := &Graph{}
	ids := map[*dawg.Node]int{d.Root(): 0}
	queue := []*dawg.Node{d.Root()}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		g.Nodes = append(g.Nodes, Node{
			ID:    ids[curr],
			Name:  nodeName(d, curr),
			Level: curr.Level,
		})

		for _, label := range curr.Labels() {
			child := curr.Children[label]
			id, seen := ids[child]
			if !seen {
				id = len(ids)
				ids[child] = id
				queue = append(queue, child)
			}
			g.Links = append(g.Links, Link{
				Source: ids[curr],
				Target: id,
				Label:  linkLabel(label),
			})
		}
	}

	if limit > 0 && len(g.Nodes) > limit {
		g.truncate(limit)
	}
	return g
}

// Truncate returns a copy of g capped at limit nodes, keeping only links
// with both endpoints exported. limit <= 0 returns an unmodified copy.
func (g *Graph) Truncate(limit int) *Graph {
	out := &Graph{
		Nodes: append([]Node(nil), g.Nodes...),
		Links: append([]Link(nil), g.Links...),
	}
	if limit > 0 && len(out.Nodes) > limit {
		out.truncate(limit)
	}
	return out
}

// truncate cuts the node list after limit entries (BFS order, so the
// neighborhood of the root survives) and drops every link with an
// unexported endpoint.
func (g *Graph) truncate(limit int) {
	g.Nodes = g.Nodes[:limit]
	kept := make(map[int]struct{}, limit)
	for _, n := range g.Nodes {
		kept[n.ID] = struct{}{}
	}

	links := g.Links[:0]
	for _, l := range g.Links {
		if _, ok := kept[l.Source]; !ok {
			continue
		}
		if _, ok := kept[l.Target]; !ok {
			continue
		}
		links = append(links, l)
	}
	g.Links = links
}

func nodeName(d *dawg.DAWG, n *dawg.Node) string {
	switch {
	case d.IsSink(n):
		return SinkName
	case n == d.Root():
		return RootName
	default:
		return string(n.Label)
	}
}

func linkLabel(label rune) string {
	if label == dawg.EndEdge {
		return EndLabel
	}
	return string(label)
}
