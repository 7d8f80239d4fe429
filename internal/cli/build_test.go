package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/wordlattice/lattice/pkg/pipeline"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		output string
		format string
		multi  bool
		want   string
	}{
		{
			name:   "explicit output with extension",
			input:  "words.txt",
			output: "out.json",
			format: "json",
			want:   "out.json",
		},
		{
			name:   "explicit output without extension",
			input:  "words.txt",
			output: "out",
			format: "json",
			want:   "out.json",
		},
		{
			name:   "multiple formats ignore output extension",
			input:  "words.txt",
			output: "out.json",
			format: "dot",
			multi:  true,
			want:   "out.json.dot",
		},
		{
			name:   "derived from input filename",
			input:  "english.txt",
			format: "json",
			want:   "english.json",
		},
		{
			name:   "derived from input path",
			input:  "/data/lists/english.txt",
			format: "svg",
			want:   "english.svg",
		},
		{
			name:   "url input falls back to graph",
			input:  "https://example.com/en.txt",
			format: "json",
			want:   "graph.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.input, tt.output, tt.format, tt.multi)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to json", "", []string{pipeline.FormatJSON}},
		{"single format", "dot", []string{"dot"}},
		{"multiple formats", "json,dot,svg", []string{"json", "dot", "svg"}},
		{"whitespace trimmed", "json, dot", []string{"json", "dot"}},
		{"empty parts skipped", "json,,dot", []string{"json", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasFormat(t *testing.T) {
	formats := []string{"json", "dot"}

	if !hasFormat(formats, "json") {
		t.Error("hasFormat should find json")
	}
	if hasFormat(formats, "svg") {
		t.Error("hasFormat should not find svg")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"json": []byte(`{"nodes":[]}`),
		"dot":  []byte("digraph {}"),
	}

	output := filepath.Join(dir, "graph")
	if err := writeArtifacts(artifacts, []string{"json", "dot"}, "words.txt", output); err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}

	for _, format := range []string{"json", "dot"} {
		path := output + "." + format
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading %s: %v", path, err)
		}
		if string(data) != string(artifacts[format]) {
			t.Errorf("%s content = %q, want %q", format, data, artifacts[format])
		}
	}
}
