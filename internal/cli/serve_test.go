package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wordlattice/lattice/pkg/nodelink"
)

func testGraph() *nodelink.Graph {
	return &nodelink.Graph{
		Nodes: []nodelink.Node{
			{ID: 0, Name: "ROOT", Level: 0},
			{ID: 1, Name: "c", Level: 1},
			{ID: 2, Name: "a", Level: 2},
			{ID: 3, Name: "<END>", Level: 3},
		},
		Links: []nodelink.Link{
			{Source: 0, Target: 1, Label: "c"},
			{Source: 1, Target: 2, Label: "a"},
			{Source: 2, Target: 3, Label: "t"},
		},
	}
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	c := New(io.Discard, LogInfo)
	return c.graphRouter(testGraph())
}

func TestGraphRouterHealthz(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestGraphRouterGraph(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/graph.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var g nodelink.Graph
	if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
		t.Fatalf("decoding graph: %v", err)
	}
	if len(g.Nodes) != 4 {
		t.Errorf("nodes = %d, want 4", len(g.Nodes))
	}
	if len(g.Links) != 3 {
		t.Errorf("links = %d, want 3", len(g.Links))
	}
}

func TestGraphRouterGraphLimit(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/graph.json?limit=2")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var g nodelink.Graph
	if err := json.NewDecoder(resp.Body).Decode(&g); err != nil {
		t.Fatalf("decoding graph: %v", err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(g.Nodes))
	}
	// No link may reference a node outside the truncated set
	ids := map[int]bool{}
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, l := range g.Links {
		if !ids[l.Source] || !ids[l.Target] {
			t.Errorf("link %d->%d references a removed node", l.Source, l.Target)
		}
	}
}

func TestGraphRouterGraphBadLimit(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/graph.json?limit=abc")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGraphRouterStats(t *testing.T) {
	srv := httptest.NewServer(testRouter(t))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var stats map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats["nodes"] != 4 || stats["links"] != 3 {
		t.Errorf("stats = %v, want nodes=4 links=3", stats)
	}
}
