package cli

import (
	"io"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(io.Discard, LogInfo)

	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
	if c.Config == nil {
		t.Fatal("New() should load a config")
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	if root.Use != "lattice" {
		t.Errorf("root.Use = %q, want %q", root.Use, "lattice")
	}

	want := []string{"build", "render", "check", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command should register %q", name)
		}
	}
}
