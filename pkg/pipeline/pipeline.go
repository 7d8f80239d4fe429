// Package pipeline provides the core build pipeline for lattice.
//
// This package implements the complete load → build → export pipeline that
// can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read the word list from a file or URL
//  2. Build: Construct the trie, minimize it, assign levels, validate
//  3. Export: Generate output in various formats (JSON, DOT, SVG)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "words.txt",
//	    Formats: []string{"json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data := result.Artifacts["json"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wordlattice/lattice/pkg/cache"
	"github.com/wordlattice/lattice/pkg/dawg"
	"github.com/wordlattice/lattice/pkg/errors"
	"github.com/wordlattice/lattice/pkg/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// DefaultLimit is the default node cap for exports. Zero exports every node.
// Browsers handle moderately sized projections fine; the cap exists for the
// CLI flag, not as a hard requirement.
const DefaultLimit = 0

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the build pipeline.
// This struct supports JSON serialization for server requests.
type Options struct {
	// Load options. Input is a file path or http(s) URL; Words, when
	// non-nil, skips loading entirely.
	Input string   `json:"input,omitempty"`
	Words []string `json:"-"`

	// Build options. The zero value builds the fully processed graph,
	// matching what the visualizer expects.
	SkipMinimize bool `json:"skip_minimize,omitempty"`
	SkipLevels   bool `json:"skip_levels,omitempty"`
	Refresh      bool `json:"refresh,omitempty"`

	// Export options
	Formats []string `json:"formats,omitempty"`
	Limit   int      `json:"limit,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline run, for log correlation.
	RunID string

	// Graph is the full (untruncated) node-link projection.
	Graph *nodelink.Graph

	// GraphHash is the content hash of the serialized graph.
	GraphHash string

	// Report is the integrity check result for the built graph.
	Report dawg.Report

	// Artifacts contains exported outputs keyed by format. Artifacts
	// honor Options.Limit; Graph does not.
	Artifacts map[string][]byte

	// Stats contains counts and timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	WordCount    int // words accepted into the graph
	SkippedWords int // invalid or empty lines skipped during build
	NodeCount    int // nodes in the full projection
	LinkCount    int // links in the full projection
	Merged       int // nodes removed by minimization
	LoadTime     time.Duration
	BuildTime    time.Duration
	ExportTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // Whether the built graph came from cache
	ExportHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateLimit checks that a node limit is usable. Zero means no limit.
func ValidateLimit(limit int) error {
	if limit < 0 {
		return errors.New(errors.ErrCodeInvalidLimit, "limit must be zero or positive, got %d", limit)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	o.SetExportDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateLimit(o.Limit); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading the word list.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" && o.Words == nil {
		return errors.New(errors.ErrCodeInvalidPath, "input path, URL, or word list is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetExportDefaults sets default values for exporting.
func (o *Options) SetExportDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsRemote reports whether Input is a URL rather than a local path.
func (o *Options) IsRemote() bool {
	return strings.HasPrefix(o.Input, "http://") || strings.HasPrefix(o.Input, "https://")
}

// GraphKeyOpts returns cache key options for the build stage.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{
		Minimize: !o.SkipMinimize,
		Levels:   !o.SkipLevels,
	}
}

// ArtifactKeyOpts returns cache key options for artifact export.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Limit:  o.Limit,
	}
}
