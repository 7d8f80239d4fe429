package nodelink

import (
	"strings"
	"testing"

	"github.com/wordlattice/lattice/pkg/dawg"
)

func buildGraph(t *testing.T, words ...string) *dawg.DAWG {
	t.Helper()
	d := dawg.New()
	for _, w := range words {
		if err := d.Insert(w); err != nil {
			t.Fatalf("Insert(%q) = %v, want nil", w, err)
		}
	}
	d.Minimize()
	d.AssignLevels()
	return d
}

func TestProject_AssignsBFSIDs(t *testing.T) {
	d := buildGraph(t, "cat", "cats")

	g := Project(d, 0)

	wantNodes := []Node{
		{ID: 0, Name: "ROOT", Level: 0},
		{ID: 1, Name: "c", Level: 1},
		{ID: 2, Name: "a", Level: 2},
		{ID: 3, Name: "t", Level: 3},
		{ID: 4, Name: "END", Level: 5},
		{ID: 5, Name: "s", Level: 4},
	}
	if len(g.Nodes) != len(wantNodes) {
		t.Fatalf("NodeCount() = %d, want %d", len(g.Nodes), len(wantNodes))
	}
	for i, want := range wantNodes {
		if g.Nodes[i] != want {
			t.Errorf("Nodes[%d] = %+v, want %+v", i, g.Nodes[i], want)
		}
	}
}

func TestProject_LinksReferenceExportedIDs(t *testing.T) {
	d := buildGraph(t, "cat", "cats")

	g := Project(d, 0)

	wantLinks := []Link{
		{Source: 0, Target: 1, Label: "c"},
		{Source: 1, Target: 2, Label: "a"},
		{Source: 2, Target: 3, Label: "t"},
		{Source: 3, Target: 4, Label: "<END>"},
		{Source: 3, Target: 5, Label: "s"},
		{Source: 5, Target: 4, Label: "<END>"},
	}
	if len(g.Links) != len(wantLinks) {
		t.Fatalf("LinkCount() = %d, want %d", len(g.Links), len(wantLinks))
	}
	for i, want := range wantLinks {
		if g.Links[i] != want {
			t.Errorf("Links[%d] = %+v, want %+v", i, g.Links[i], want)
		}
	}
}

func TestProject_SharedSuffixExportsOnce(t *testing.T) {
	d := buildGraph(t, "eat", "seat")

	g := Project(d, 0)

	// root, sink, s, and one shared e-a-t chain
	if g.NodeCount() != 6 {
		t.Errorf("NodeCount() = %d, want 6", g.NodeCount())
	}
	ends := 0
	for _, n := range g.Nodes {
		if n.Name == "END" {
			ends++
		}
	}
	if ends != 1 {
		t.Errorf("exported %d END nodes, want 1", ends)
	}
}

func TestProject_TruncationKeepsLinkIntegrity(t *testing.T) {
	d := buildGraph(t, "cat", "cats")

	g := Project(d, 4)

	if g.NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", g.NodeCount())
	}
	kept := make(map[int]struct{})
	for _, n := range g.Nodes {
		kept[n.ID] = struct{}{}
	}
	for _, l := range g.Links {
		if _, ok := kept[l.Source]; !ok {
			t.Errorf("link %+v references unexported source", l)
		}
		if _, ok := kept[l.Target]; !ok {
			t.Errorf("link %+v references unexported target", l)
		}
	}
	if len(g.Links) != 3 {
		t.Errorf("LinkCount() = %d, want 3", len(g.Links))
	}
}

func TestProject_NoLimit(t *testing.T) {
	d := buildGraph(t, "cat", "cats")

	if g := Project(d, 0); g.NodeCount() != 6 {
		t.Errorf("Project(d, 0) exported %d nodes, want 6", g.NodeCount())
	}
	if g := Project(d, -1); g.NodeCount() != 6 {
		t.Errorf("Project(d, -1) exported %d nodes, want 6", g.NodeCount())
	}
}

func TestToDOT_ContainsNodesAndEdges(t *testing.T) {
	d := buildGraph(t, "cat")

	dot := ToDOT(Project(d, 0))

	for _, want := range []string{
		"digraph G {",
		`label="ROOT"`,
		`label="END"`,
		`label="<END>"`,
		"0 -> 1",
		"style=dashed",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() missing %q:\n%s", want, dot)
		}
	}
}
