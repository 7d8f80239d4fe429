// Package cache provides pluggable byte caching for pipeline results.
//
// This package defines the Cache interface with implementations for
// different deployment contexts:
//   - file: File-based cache for CLI usage (~/.cache/lattice/)
//   - redis: Redis-backed cache for multi-instance server deployments
//   - mongo: MongoDB-backed cache when a document store is already present
//   - null: No-op cache for testing or when caching is disabled
//
// # Cache Keys
//
// The Keyer interface generates deterministic cache keys for the two
// expensive pipeline stages:
//   - GraphKey: built and minimized graphs, keyed by input content hash
//     and build options
//   - ArtifactKey: rendered artifacts (DOT, SVG), keyed by graph hash
//     and render options
//
// Keys embed a SHA-256 hash of their option set, so any option change
// produces a distinct key and stale entries are simply never read again.
//
// # Usage
//
//	c, err := cache.NewFileCache("")
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.GraphKey(wordsHash, cache.GraphKeyOpts{Minimize: true})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Default TTLs per cached payload kind. Graphs change only when the input
// word list changes, so they can live long; artifacts are cheap to rebuild
// from a cached graph.
const (
	TTLGraph    = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores and retrieves byte payloads with optional expiration.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found
	// and not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// GraphKeyOpts captures the build options that affect graph structure.
// Two builds with identical input but different options must not share
// a cache entry.
type GraphKeyOpts struct {
	Minimize bool `json:"minimize"`
	Levels   bool `json:"levels"`
}

// ArtifactKeyOpts captures the render options that affect artifact output.
type ArtifactKeyOpts struct {
	Format string `json:"format"` // "json", "dot", or "svg"
	Limit  int    `json:"limit"`  // node truncation limit, 0 for none
}

// Keyer generates cache keys for pipeline stages.
type Keyer interface {
	// HTTPKey generates a key for cached HTTP responses (word list fetches).
	HTTPKey(namespace, key string) string

	// GraphKey generates a key for a built graph. wordsHash is the
	// SHA-256 hash of the normalized input word list.
	GraphKey(wordsHash string, opts GraphKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact. graphHash is
	// the SHA-256 hash of the serialized graph.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard Keyer implementation.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// GraphKey generates a key for graph caching.
func (k *DefaultKeyer) GraphKey(wordsHash string, opts GraphKeyOpts) string {
	return hashKey("graph", wordsHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
