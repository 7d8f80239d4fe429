package dawg

import (
	"errors"
	"slices"
	"testing"
)

func insertAll(t *testing.T, d *DAWG, words ...string) {
	t.Helper()
	for _, w := range words {
		if err := d.Insert(w); err != nil {
			t.Fatalf("Insert(%q) = %v, want nil", w, err)
		}
	}
}

func TestInsert_SingleWord(t *testing.T) {
	d := New()
	insertAll(t, d, "cat")

	// root, sink, c, a, t
	if d.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", d.NodeCount())
	}
	if d.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", d.EdgeCount())
	}
	if d.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1", d.WordCount())
	}
	if !d.Contains("cat") {
		t.Errorf("Contains(%q) = false, want true", "cat")
	}
}

func TestInsert_Idempotent(t *testing.T) {
	d := New()
	insertAll(t, d, "cat")
	nodes, edges := d.NodeCount(), d.EdgeCount()

	insertAll(t, d, "cat")

	if d.NodeCount() != nodes {
		t.Errorf("NodeCount() = %d after repeat insert, want %d", d.NodeCount(), nodes)
	}
	if d.EdgeCount() != edges {
		t.Errorf("EdgeCount() = %d after repeat insert, want %d", d.EdgeCount(), edges)
	}
	if d.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1", d.WordCount())
	}
}

func TestInsert_PrefixSharing(t *testing.T) {
	d := New()
	insertAll(t, d, "cat", "car")

	// root, sink, c, a, t, r - the "ca" path is shared
	if d.NodeCount() != 6 {
		t.Errorf("NodeCount() = %d, want 6", d.NodeCount())
	}
	if d.EdgeCount() != 6 {
		t.Errorf("EdgeCount() = %d, want 6", d.EdgeCount())
	}
}

func TestInsert_CaseFolding(t *testing.T) {
	d := New()
	insertAll(t, d, "Cat", "cat", "CAT")

	if d.WordCount() != 1 {
		t.Errorf("WordCount() = %d, want 1", d.WordCount())
	}
	if d.NodeCount() != 5 {
		t.Errorf("NodeCount() = %d, want 5", d.NodeCount())
	}
	if !d.Contains("cAt") {
		t.Errorf("Contains(%q) = false, want true", "cAt")
	}
}

func TestInsert_EmptyWord(t *testing.T) {
	d := New()

	err := d.Insert("")

	if !errors.Is(err, ErrEmptyWord) {
		t.Errorf("Insert(\"\") = %v, want ErrEmptyWord", err)
	}
	if d.WordCount() != 0 {
		t.Errorf("WordCount() = %d, want 0", d.WordCount())
	}
	if _, ok := d.Root().Children[EndEdge]; ok {
		t.Error("root gained a terminator edge from empty input")
	}
}

func TestInsert_InvalidWord(t *testing.T) {
	for _, word := range []string{string([]byte{0xff, 0xfe}), "ca\tt", "a\x00b"} {
		d := New()
		if err := d.Insert(word); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("Insert(%q) = %v, want ErrInvalidWord", word, err)
		}
	}
}

func TestInsert_RejectedWordLeavesGraphIntact(t *testing.T) {
	d := New()
	insertAll(t, d, "cat")

	_ = d.Insert("")
	_ = d.Insert("ca\tt")
	insertAll(t, d, "car")

	if d.WordCount() != 2 {
		t.Errorf("WordCount() = %d, want 2", d.WordCount())
	}
	if got := d.Words(); !slices.Equal(got, []string{"car", "cat"}) {
		t.Errorf("Words() = %v, want [car cat]", got)
	}
}

func TestInsert_RejectedWordCreatesNoNodes(t *testing.T) {
	d := New()
	insertAll(t, d, "cat")
	before := d.NodeCount()

	// "x" shares no prefix with "cat", so a partial insert would have to
	// create a fresh node before hitting the control character.
	if err := d.Insert("x\ty"); !errors.Is(err, ErrInvalidWord) {
		t.Fatalf("Insert(%q) = %v, want ErrInvalidWord", "x\ty", err)
	}

	if d.NodeCount() != before {
		t.Errorf("NodeCount() = %d after rejected insert, want %d", d.NodeCount(), before)
	}
	if report := d.Validate(); !report.OK {
		t.Errorf("Validate() = %+v after rejected insert, want OK", report)
	}
}

func TestContains_MissingWord(t *testing.T) {
	d := New()
	insertAll(t, d, "cats")

	// "cat" is a prefix path but has no terminator edge
	if d.Contains("cat") {
		t.Errorf("Contains(%q) = true, want false", "cat")
	}
	if d.Contains("") {
		t.Error("Contains(\"\") = true, want false")
	}
	if d.Contains("dog") {
		t.Errorf("Contains(%q) = true, want false", "dog")
	}
}

func TestWords_LexicographicOrder(t *testing.T) {
	d := New()
	insertAll(t, d, "cats", "car", "cat")

	got := d.Words()
	want := []string{"car", "cat", "cats"}
	if !slices.Equal(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}
