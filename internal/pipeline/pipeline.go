// Package pipeline orchestrates a full resolution run: it builds page-scoped
// inputs once per target page, fans entries out to a bounded worker pool, and
// assembles the enriched entries into the report and annotated text.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"

	"github.com/jackzampolin/tocmark/internal/annotate"
	"github.com/jackzampolin/tocmark/internal/structure"
	"github.com/jackzampolin/tocmark/internal/toc"
	"github.com/jackzampolin/tocmark/internal/work"
)

// taskResolveEntry runs both resolution stages for one entry.
const taskResolveEntry = "resolve_entry"

// Config configures a run.
type Config struct {
	Workers          int          // Worker goroutines (default: NumCPU)
	AnnotateMaxLevel int          // Deepest heading level emitted (default: 6)
	Logger           *slog.Logger // Optional logger
}

// Result is the outcome of a full run.
type Result struct {
	Entries   []toc.Entry
	Report    *toc.Report
	Annotated string
}

// pageInputs holds the derived inputs for one target page, built once and
// shared read-only across all entries on that page.
type pageInputs struct {
	blocks []toc.TextBlock
	lines  []string
}

// entryTask is the payload for one pool unit. The entry travels by value;
// the enriched copy comes back in the unit result.
type entryTask struct {
	entry toc.Entry
	page  pageInputs
}

// Run resolves every outline entry of doc against its structured blocks and
// the extracted plain-text pages, then builds the report and annotated text.
// Per-entry non-matches are reportable outcomes, not errors; Run fails only
// on pool-level problems or cancellation.
func Run(ctx context.Context, doc *structure.Document, pages []string, cfg Config) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	entries := toc.FromOutline(doc.Outline)
	logger.Info("starting resolution", "entries", len(entries), "pages", len(pages), "workers", workers)

	if len(entries) > 0 {
		if err := resolveEntries(ctx, doc, pages, entries, workers, logger); err != nil {
			return nil, err
		}
	}

	report := toc.BuildReport(entries)
	annotated := annotate.Apply(pages, entries, cfg.AnnotateMaxLevel)

	logger.Info("resolution complete",
		"success", report.StatusCounts[toc.StatusSuccess],
		"not_in_text", report.StatusCounts[toc.StatusNotInText],
		"unmatched_in_text", report.StatusCounts[toc.StatusUnmatchedInText],
	)

	return &Result{
		Entries:   entries,
		Report:    report,
		Annotated: annotated,
	}, nil
}

// resolveEntries fans entries out to the pool and writes enriched copies
// back in place. Only the collector writes to the entries slice.
func resolveEntries(ctx context.Context, doc *structure.Document, pages []string, entries []toc.Entry, workers int, logger *slog.Logger) error {
	poolCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := work.NewPool(work.PoolConfig{
		Name:      "resolve",
		Logger:    logger,
		Workers:   workers,
		QueueSize: len(entries),
	})
	pool.RegisterHandler(taskResolveEntry, resolveHandler)
	pool.Start(poolCtx)

	inputs := buildPageInputs(doc, pages, entries)
	tracker := work.NewTracker[int]()

	for i := range entries {
		unit := &work.Unit{
			ID:   uuid.New().String(),
			Task: taskResolveEntry,
			Payload: entryTask{
				entry: entries[i],
				page:  inputs[entries[i].PageNum],
			},
		}
		tracker.Register(unit.ID, i)
		if err := pool.Submit(unit); err != nil {
			return fmt.Errorf("failed to submit entry %d: %w", i, err)
		}
	}

	for done := 0; done < len(entries); done++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-pool.Results():
			ordinal, ok := tracker.GetAndRemove(res.UnitID)
			if !ok {
				return fmt.Errorf("result for unknown unit %s", res.UnitID)
			}
			if !res.Success {
				return fmt.Errorf("entry %d failed: %w", ordinal, res.Err)
			}
			entries[ordinal] = res.Output.(toc.Entry)
		}
	}
	return nil
}

// buildPageInputs derives the block index and line list once per distinct
// target page. Pages are indexed 1-based; a target outside the extracted
// page range yields empty inputs and flows through the normal per-entry
// failure taxonomy instead of aborting the run.
func buildPageInputs(doc *structure.Document, pages []string, entries []toc.Entry) map[int]pageInputs {
	inputs := make(map[int]pageInputs)
	for _, e := range entries {
		if _, ok := inputs[e.PageNum]; ok {
			continue
		}

		var in pageInputs
		if page, ok := doc.Page(e.PageNum); ok {
			in.blocks = toc.BuildIndex(page.Blocks)
		}
		if e.PageNum >= 1 && e.PageNum <= len(pages) {
			in.lines = toc.SplitLines(pages[e.PageNum-1])
		}
		inputs[e.PageNum] = in
	}
	return inputs
}

// resolveHandler runs Stage A then Stage B for one entry.
func resolveHandler(ctx context.Context, payload any) (any, error) {
	task, ok := payload.(entryTask)
	if !ok {
		return nil, fmt.Errorf("unexpected payload type %T", payload)
	}

	entry := task.entry
	toc.Resolve(&entry, task.page.blocks)
	toc.Locate(&entry, task.page.lines)
	return entry, nil
}
