package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/wordlattice/lattice/pkg/cache"
	"github.com/wordlattice/lattice/pkg/httputil"
	"github.com/wordlattice/lattice/pkg/nodelink"
	"github.com/wordlattice/lattice/pkg/observability"
	"github.com/wordlattice/lattice/pkg/words"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the caches and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// HTTPCache, when set, caches downloaded word lists across runs.
	HTTPCache *httputil.Cache
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → export pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)

	// Stage 1: Load
	loadStart := time.Now()
	list, err := r.Load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)

	logger.Info("loaded word list",
		"source", sourceName(opts),
		"lines", len(list),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	built, buildHit, err := r.BuildWithCacheInfo(ctx, list, opts)
	if err != nil {
		return nil, err
	}
	result.Graph = built.Graph
	result.Report = built.Report
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.WordCount = built.Words
	result.Stats.SkippedWords = built.Skipped
	result.Stats.Merged = built.Merged
	result.Stats.NodeCount = built.Graph.NodeCount()
	result.Stats.LinkCount = built.Graph.LinkCount()
	result.CacheInfo.BuildHit = buildHit

	// Graph hash keys the export stage and identifies the graph in server
	// responses.
	if data, err := json.Marshal(built.Graph); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	logger.Info("built graph",
		"words", built.Words,
		"skipped", built.Skipped,
		"merged", built.Merged,
		"nodes", result.Stats.NodeCount,
		"links", result.Stats.LinkCount,
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	// Stage 3: Export
	exportStart := time.Now()
	artifacts, exportHit, err := r.ExportWithCacheInfo(ctx, built.Graph, result.GraphHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.ExportTime = time.Since(exportStart)
	result.CacheInfo.ExportHit = exportHit

	logger.Info("exported artifacts",
		"formats", opts.Formats,
		"cached", exportHit,
		"duration", result.Stats.ExportTime)

	return result, nil
}

// Load reads the word list named by opts, from memory, disk, or network.
func (r *Runner) Load(ctx context.Context, opts Options) ([]string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Words != nil {
		return opts.Words, nil
	}
	if opts.IsRemote() {
		return words.Fetch(ctx, opts.Input, r.HTTPCache)
	}
	return words.LoadFile(opts.Input)
}

// BuildWithCacheInfo builds the graph with caching and returns cache hit info.
// The cache key covers the word list content and every option that affects
// graph structure, so a stale entry can never be confused for a fresh build.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, list []string, opts Options) (*BuildResult, bool, error) {
	r.applyLogger(&opts)

	wordsHash := cache.Hash([]byte(strings.Join(list, "\n")))
	cacheKey := r.Keyer.GraphKey(wordsHash, opts.GraphKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached BuildResult
			if err := json.Unmarshal(data, &cached); err == nil && cached.Graph != nil {
				observability.Cache().OnCacheHit(ctx, "graph")
				return &cached, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "graph")
	}

	built, err := build(ctx, list, opts)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(built); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLGraph); err == nil {
			observability.Cache().OnCacheSet(ctx, "graph", len(data))
		}
	}

	return built, false, nil
}

// Build is a convenience wrapper that discards the cache hit info.
func (r *Runner) Build(ctx context.Context, list []string, opts Options) (*BuildResult, error) {
	built, _, err := r.BuildWithCacheInfo(ctx, list, opts)
	return built, err
}

// ExportWithCacheInfo renders artifacts with caching and returns cache hit
// info. Each format is cached separately under the graph hash and export
// options.
func (r *Runner) ExportWithCacheInfo(ctx context.Context, g *nodelink.Graph, graphHash string, opts Options) (map[string][]byte, bool, error) {
	opts.SetExportDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, false, err
	}
	if err := ValidateLimit(opts.Limit); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	allCached := !opts.Refresh
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		if !allCached {
			break
		}
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		} else {
			observability.Cache().OnCacheMiss(ctx, "artifact")
			allCached = false
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		return artifacts, true, nil
	}

	rendered, err := export(ctx, g, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func sourceName(opts Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return "(in-memory)"
}
