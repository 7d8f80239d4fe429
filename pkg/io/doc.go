// Package io provides JSON import and export for node-link graph
// projections.
//
// # Overview
//
// The browser visualizer consumes a flat JSON document of nodes and links.
// This package writes that document from a [nodelink.Graph] and reads it
// back, enabling:
//
//   - Handing a built graph to the frontend without re-running the build
//   - Caching of projections for faster re-rendering
//   - Round-trip processing with external tools
//
// # JSON Format
//
// The format has two top-level arrays:
//
//	{
//	  "nodes": [
//	    {"id": 0, "name": "ROOT", "level": 0},
//	    {"id": 1, "name": "c", "level": 1}
//	  ],
//	  "links": [
//	    {"source": 0, "target": 1, "label": "c"}
//	  ]
//	}
//
// Node IDs are assigned during projection and are stable only within one
// document. The terminator edge to the sink carries the label "<END>".
//
// # Import and Export
//
// Use [ExportJSON]/[WriteJSON] to write and [ImportJSON]/[ReadJSON] to read.
// ReadJSON validates referential integrity: every link must reference node
// IDs present in the document.
package io
