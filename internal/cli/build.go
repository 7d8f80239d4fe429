package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordlattice/lattice/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output      string // output file (single format) or base path (multiple)
	formatsStr  string // comma-separated format list
	limit       int    // node cap for exports, 0 for all
	noMinimize  bool   // keep the raw trie
	noLevels    bool   // skip level assignment
	refresh     bool   // rebuild even when cached
	noCache     bool   // disable caching entirely
	interactive bool   // show the TUI progress view
}

// buildCommand creates the build command, the main entry point of the CLI.
func (c *CLI) buildCommand() *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build <words-file-or-url>",
		Short: "Build a word graph from a word list and export it",
		Long: `Build a word graph from a word list and export it.

The input is a plain text file (or http/https URL) with one word per line.
Words are lowercased; blank lines, comments, and invalid lines are skipped.
Shared suffixes are merged so the exported graph is the minimal DAG for the
word set, with longest-path levels for layered drawing.

Results are cached locally for faster subsequent runs.

Examples:
  lattice build words.txt                        # graph.json next to input
  lattice build words.txt -f json,dot,svg        # several formats at once
  lattice build https://example.com/en.txt -o en # en.json from a URL
  lattice build words.txt --no-minimize          # keep the raw trie`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formatsStr, "format", "f", "", "output format(s): json (default), dot, svg (comma-separated)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "cap exported nodes (0 = all)")
	cmd.Flags().BoolVar(&opts.noMinimize, "no-minimize", false, "skip suffix merging, export the raw trie")
	cmd.Flags().BoolVar(&opts.noLevels, "no-levels", false, "skip level assignment")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "show interactive progress")

	return cmd
}

// runBuild executes the build pipeline and writes artifacts.
func (c *CLI) runBuild(ctx context.Context, input string, opts *buildOpts) error {
	pipeOpts := c.pipelineOptions(input, opts)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var result *pipeline.Result
	if opts.interactive {
		result, err = c.runBuildInteractive(ctx, runner, pipeOpts)
	} else {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Building graph from %s...", input))
		spinner.Start()
		result, err = runner.Execute(ctx, pipeOpts)
		if err != nil {
			spinner.StopWithError("Build failed")
			return err
		}
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	printSuccess("Built graph from %s", input)
	printStats(result.Stats.NodeCount, result.Stats.LinkCount, result.Stats.WordCount,
		result.CacheInfo.BuildHit)
	if result.Stats.SkippedWords > 0 {
		printWarning("Skipped %d invalid lines", result.Stats.SkippedWords)
	}
	if result.Stats.Merged > 0 {
		printDetail("Merged %d redundant suffix nodes", result.Stats.Merged)
	}

	if err := writeArtifacts(result.Artifacts, pipeOpts.Formats, input, opts.output); err != nil {
		return err
	}
	if hasFormat(pipeOpts.Formats, pipeline.FormatJSON) {
		printNextStep("Serve it", fmt.Sprintf("lattice serve %s", outputPath(input, opts.output, "json", len(pipeOpts.Formats) > 1)))
	}
	return nil
}

// pipelineOptions converts CLI flags and config defaults into pipeline options.
func (c *CLI) pipelineOptions(input string, opts *buildOpts) pipeline.Options {
	formats := opts.formatsStr
	if formats == "" && len(c.Config.Build.Formats) > 0 {
		formats = strings.Join(c.Config.Build.Formats, ",")
	}
	limit := opts.limit
	if limit == 0 {
		limit = c.Config.Build.Limit
	}
	return pipeline.Options{
		Input:        input,
		SkipMinimize: opts.noMinimize,
		SkipLevels:   opts.noLevels,
		Refresh:      opts.refresh,
		Formats:      parseFormats(formats),
		Limit:        limit,
		Logger:       c.Logger,
	}
}

// writeArtifacts writes rendered artifacts to disk. With a single format
// the output flag names the file directly; with several it is a base path
// and each artifact gets its format as extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) error {
	multi := len(formats) > 1

	// Deterministic write order
	sorted := append([]string(nil), formats...)
	sort.Strings(sorted)

	for _, format := range sorted {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(input, output, format, multi)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath computes the artifact path for a format.
func outputPath(input, output, format string, multi bool) string {
	if output != "" {
		if !multi && filepath.Ext(output) != "" {
			return output
		}
		return output + "." + format
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(filepath.Base(input)))
	if base == "" || strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		base = "graph"
	}
	return base + "." + format
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}
