package pipeline

import (
	"bytes"
	"context"
	"time"

	latio "github.com/wordlattice/lattice/pkg/io"
	"github.com/wordlattice/lattice/pkg/nodelink"
	"github.com/wordlattice/lattice/pkg/observability"
)

// export renders the requested formats from the projection, applying the
// node limit first so every format shows the same truncated graph.
func export(ctx context.Context, g *nodelink.Graph, opts Options) (map[string][]byte, error) {
	start := time.Now()
	observability.Build().OnExportStart(ctx, opts.Formats)

	view := g.Truncate(opts.Limit)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		data, err := renderFormat(view, format)
		if err != nil {
			observability.Build().OnExportComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, err
		}
		artifacts[format] = data
	}

	observability.Build().OnExportComplete(ctx, opts.Formats, time.Since(start), nil)
	return artifacts, nil
}

func renderFormat(g *nodelink.Graph, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := latio.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatDOT:
		return []byte(nodelink.ToDOT(g)), nil
	case FormatSVG:
		return nodelink.RenderSVG(nodelink.ToDOT(g))
	default:
		return nil, ValidateFormat(format)
	}
}
