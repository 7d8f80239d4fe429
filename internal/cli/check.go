package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordlattice/lattice/pkg/errors"
	"github.com/wordlattice/lattice/pkg/pipeline"
)

type checkOpts struct {
	noMinimize bool
	refresh    bool
	noCache    bool
}

func (c *CLI) checkCommand() *cobra.Command {
	opts := &checkOpts{}

	cmd := &cobra.Command{
		Use:   "check <input>",
		Short: "Build a graph and verify its structural integrity",
		Long: `Check builds the graph from a word list and runs the integrity
validation without exporting anything. It reports dead ends and sink
reachability, and exits non-zero when the graph is corrupt.

Examples:
  lattice check words.txt
  lattice check https://example.com/en.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noMinimize, "no-minimize", false, "check the raw trie instead of the minimized graph")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results and rebuild")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, opts *checkOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		printError("%s", err.Error())
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Input:        input,
		SkipMinimize: opts.noMinimize,
		Refresh:      opts.refresh,
		Logger:       loggerFromContext(ctx),
	}
	if err := pipeOpts.ValidateForLoad(); err != nil {
		printError("%s", err.Error())
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	spin := newSpinnerWithContext(ctx, "Checking "+input)
	spin.Start()

	list, err := runner.Load(ctx, pipeOpts)
	if err != nil {
		spin.StopWithError("Load failed")
		printError("%s", err.Error())
		return err
	}

	built, cached, err := runner.BuildWithCacheInfo(ctx, list, pipeOpts)
	if err != nil {
		// Build surfaces integrity failures as GRAPH_CORRUPT.
		if errors.Is(err, errors.ErrCodeGraphCorrupt) {
			spin.StopWithError("Integrity check failed")
			printError("%s", errors.UserMessage(err))
			return err
		}
		spin.StopWithError("Build failed")
		printError("%s", err.Error())
		return err
	}
	spin.StopWithSuccess("Graph is sound")
	prog.done(fmt.Sprintf("Checked %d words", built.Words))

	printStats(len(built.Graph.Nodes), len(built.Graph.Links), built.Words, cached)
	printDetail("dead ends: %d", built.Report.DeadEnds)
	printDetail("sink reachable: %t", built.Report.SinkReachable)
	if built.Skipped > 0 {
		printWarning("Skipped %d invalid words", built.Skipped)
	}
	return nil
}
