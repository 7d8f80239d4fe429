package dawg

import "testing"

func TestAssignLevels_Chain(t *testing.T) {
	d := New()
	insertAll(t, d, "cat")
	d.AssignLevels()

	want := []struct {
		name  string
		node  *Node
		level int
	}{
		{"root", d.Root(), 0},
		{"c", d.Root().Children['c'], 1},
		{"a", d.Root().Children['c'].Children['a'], 2},
		{"t", d.Root().Children['c'].Children['a'].Children['t'], 3},
		{"sink", d.Sink(), 4},
	}
	for _, w := range want {
		if w.node.Level != w.level {
			t.Errorf("%s level = %d, want %d", w.name, w.node.Level, w.level)
		}
	}
}

func TestAssignLevels_LongestPathWins(t *testing.T) {
	d := New()
	insertAll(t, d, "eat", "seat")
	d.Minimize()
	d.AssignLevels()

	// After minimization a single "eat" chain is reachable from the root
	// directly and through the longer "s" branch; the longest path decides.
	e := d.Root().Children['e']
	if e.Level != 2 {
		t.Errorf("e level = %d, want 2", e.Level)
	}
	if d.Sink().Level != 5 {
		t.Errorf("sink level = %d, want 5", d.Sink().Level)
	}
}

func TestAssignLevels_Monotonic(t *testing.T) {
	d := New()
	insertAll(t, d, "tap", "top", "taps", "tops", "stop", "eat", "seat")
	d.Minimize()
	d.AssignLevels()

	for n := range d.nodes {
		for label, child := range n.Children {
			if child.Level < n.Level+1 {
				t.Errorf("edge %q: child level %d < parent level %d + 1", label, child.Level, n.Level)
			}
		}
	}
}

func TestAssignLevels_Recallable(t *testing.T) {
	d := New()
	insertAll(t, d, "eat", "seat")
	d.Minimize()

	d.AssignLevels()
	sink := d.Sink().Level
	d.AssignLevels()

	if d.Sink().Level != sink {
		t.Errorf("sink level = %d after second pass, want %d", d.Sink().Level, sink)
	}
}
