// Package pkg provides the core libraries for lattice word graph visualization.
//
// # Overview
//
// Lattice turns flat word lists into directed acyclic word graphs where words
// sharing prefixes and suffixes share structure. The pkg directory is
// organized into three main areas:
//
//  1. [core] - Domain logic (graph construction, minimization, projection)
//  2. [infra] - Infrastructure (caching, word list fetching, observability)
//  3. [pipeline] - Orchestration (load -> build -> export)
//
// # Architecture
//
// The typical data flow through lattice:
//
//	Word List (file or URL)
//	         |
//	   [words] read and filter lines
//	         |
//	    [dawg] build trie, merge suffixes, assign levels, validate
//	         |
//	[nodelink] project to node/link form
//	         |
//	      [io] serialize for the browser visualizer
//
// The [pipeline] package wires these stages together with caching ([cache])
// and progress hooks ([observability]); [httputil] handles remote word list
// retrieval with retry and on-disk caching.
//
// # Core Packages
//
//   - dawg: trie construction, suffix merging, level assignment, validation
//   - nodelink: node/link projection, DOT and SVG rendering
//   - io: graph JSON import and export
//
// # Infrastructure Packages
//
//   - cache: pluggable cache backends (file, redis, mongo) and key derivation
//   - httputil: HTTP fetching with retries and a file-based response cache
//   - words: word list reading from files and URLs
//   - errors: structured error codes shared across packages
//   - observability: hook interfaces for build, cache and HTTP events
//   - buildinfo: version information injected at build time
package pkg
