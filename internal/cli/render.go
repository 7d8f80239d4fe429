package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordlattice/lattice/pkg/cache"
	latio "github.com/wordlattice/lattice/pkg/io"
	"github.com/wordlattice/lattice/pkg/pipeline"
)

type renderOpts struct {
	output     string
	formatsStr string
	limit      int
	refresh    bool
	noCache    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <graph.json>",
		Short: "Re-export a saved graph in other formats",
		Long: `Render reads a previously exported graph JSON file and renders it
again in one or more formats, without rebuilding from a word list.

Examples:
  lattice render graph.json -f dot           # graph.dot
  lattice render graph.json -f svg --limit 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path (extension added per format)")
	cmd.Flags().StringVarP(&opts.formatsStr, "formats", "f", "dot", "comma-separated output formats (json, dot, svg)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "maximum nodes in the rendered output (0 = all)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and re-render")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	formats := parseFormats(opts.formatsStr)
	if err := pipeline.ValidateFormats(formats); err != nil {
		printError("%s", err.Error())
		return err
	}

	g, err := latio.ImportJSON(input)
	if err != nil {
		printError("%s", err.Error())
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		printError("%s", err.Error())
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Input:   input,
		Formats: formats,
		Limit:   opts.limit,
		Refresh: opts.refresh,
		Logger:  c.Logger,
	}
	pipeOpts.SetExportDefaults()

	raw, err := json.Marshal(g)
	if err != nil {
		printError("%s", err.Error())
		return err
	}

	spin := newSpinnerWithContext(ctx, "Rendering "+input)
	spin.Start()

	artifacts, cached, err := runner.ExportWithCacheInfo(ctx, g, cache.Hash(raw), pipeOpts)
	if err != nil {
		spin.StopWithError("Render failed")
		printError("%s", err.Error())
		return err
	}
	spin.StopWithSuccess("Rendered " + input)

	printStats(len(g.Nodes), len(g.Links), 0, cached)

	if err := writeArtifacts(artifacts, pipeOpts.Formats, input, opts.output); err != nil {
		printError("%s", err.Error())
		return err
	}
	if hasFormat(pipeOpts.Formats, pipeline.FormatSVG) {
		printNextStep("Open it", fmt.Sprintf("open %s", outputPath(input, opts.output, "svg", len(pipeOpts.Formats) > 1)))
	}
	return nil
}
