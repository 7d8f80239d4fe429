// Package httputil provides HTTP utilities for fetching remote word lists.
//
// # Overview
//
// This package provides the infrastructure behind URL inputs to the build
// pipeline:
//
//   - [Cache]: File-based HTTP response caching
//   - [Retry]: Automatic retry with exponential backoff
//   - [Fetch]: One-call download combining both
//
// # Caching
//
// [Cache] stores HTTP responses in the filesystem (~/.cache/lattice/http/)
// with configurable TTL, so rebuilding a graph from the same URL does not
// re-download the word list.
//
// Usage:
//
//	cache, err := httputil.NewCache("", 24*time.Hour)
//	var body []byte
//	ok, _ := cache.Get("words:"+url, &body)
//	if !ok {
//	    body = download(url)
//	    cache.Set("words:"+url, body)
//	}
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Backoff is exponential, doubling after each failed attempt.
//
// # Configuration
//
// Default settings are suitable for most use cases:
//
//   - Cache directory: ~/.cache/lattice/http/
//   - Default TTL: 24 hours
//   - Max retries: 3
//   - Base backoff: 1 second
//
// The cache can be cleared via `lattice cache clear` or by deleting the
// cache directory.
package httputil
