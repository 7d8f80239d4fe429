package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/wordlattice/lattice/pkg/dawg"
	"github.com/wordlattice/lattice/pkg/errors"
	"github.com/wordlattice/lattice/pkg/nodelink"
	"github.com/wordlattice/lattice/pkg/observability"
)

// BuildResult carries everything the build stage produces. It is also the
// payload cached under the graph key, so a cache hit restores the counts
// shown to the user, not just the projection.
type BuildResult struct {
	Graph   *nodelink.Graph `json:"graph"`
	Words   int             `json:"words"`
	Skipped int             `json:"skipped"`
	Merged  int             `json:"merged"`
	Report  dawg.Report     `json:"report"`
}

// build constructs the word graph and projects it. Invalid words are
// skipped with a debug log line rather than aborting the batch; a word
// list scraped off the web always has a few bad lines.
func build(ctx context.Context, words []string, opts Options) (*BuildResult, error) {
	start := time.Now()
	observability.Build().OnBuildStart(ctx, opts.Input)

	// How often the insert loop reports progress.
	const progressEvery = 5000

	d := dawg.New()
	res := &BuildResult{}
	for i, w := range words {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "build cancelled")
		}
		if i > 0 && i%progressEvery == 0 {
			observability.Build().OnBuildProgress(ctx, i)
		}
		if err := errors.ValidateWord(w); err != nil {
			res.Skipped++
			opts.Logger.Debug("skipped word", "word", w, "reason", err)
			continue
		}
		switch err := d.Insert(w); {
		case err == nil:
			// accepted
		case stderrors.Is(err, dawg.ErrEmptyWord), stderrors.Is(err, dawg.ErrInvalidWord):
			res.Skipped++
			opts.Logger.Debug("skipped word", "word", w, "reason", err)
		default:
			observability.Build().OnBuildComplete(ctx, opts.Input, d.NodeCount(), time.Since(start), err)
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "insert %q", w)
		}
	}
	res.Words = d.WordCount()
	observability.Build().OnBuildComplete(ctx, opts.Input, d.NodeCount(), time.Since(start), nil)

	// An input where every line was rejected is an input problem, not a
	// corrupt graph; report it before the integrity check can mistake the
	// bare root for a dead end.
	if res.Words == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"no valid words in input (%d lines skipped)", res.Skipped)
	}

	if !opts.SkipMinimize {
		mstart := time.Now()
		observability.Build().OnMinimizeStart(ctx, d.NodeCount())
		res.Merged = d.Minimize()
		observability.Build().OnMinimizeComplete(ctx, res.Merged, time.Since(mstart), nil)
	}
	if !opts.SkipLevels {
		d.AssignLevels()
	}

	res.Report = d.Validate()
	if !res.Report.OK {
		return nil, errors.New(errors.ErrCodeGraphCorrupt,
			"graph failed integrity check: %d dead ends, sink reachable: %t",
			res.Report.DeadEnds, res.Report.SinkReachable)
	}

	res.Graph = nodelink.Project(d, 0)
	return res, nil
}
