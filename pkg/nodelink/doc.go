// Package nodelink projects a word graph into the node-link format consumed
// by the browser visualizer, and renders it as Graphviz diagrams.
//
// # Overview
//
// [Project] walks a minimized [dawg.DAWG] breadth-first from the root and
// produces a flat [Graph] of nodes ({id, name, level}) and links
// ({source, target, label}). IDs are assigned in traversal order and are
// stable only within a single call; structural equivalence, not layout, is
// the graph's contract.
//
// # Truncation
//
// Very large word sets can exceed what a browser can lay out. Project
// accepts a node limit; when the projection is larger, the node list is cut
// after the limit and every link with an unexported endpoint is dropped, so
// the exported link set stays internally consistent. Truncation is expected
// degradation, not an error.
//
// # Rendering
//
// [ToDOT] converts a projection to Graphviz DOT source, and [RenderSVG]
// renders DOT to SVG in process using [github.com/goccy/go-graphviz]. The
// DOT output can also be saved and processed with external Graphviz tools.
package nodelink
