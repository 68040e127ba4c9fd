package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/extract"
	"github.com/jackzampolin/tocmark/internal/output"
	"github.com/jackzampolin/tocmark/internal/pipeline"
	"github.com/jackzampolin/tocmark/internal/runstore"
	"github.com/jackzampolin/tocmark/internal/structure"
	"github.com/jackzampolin/tocmark/internal/svcctx"
	"github.com/jackzampolin/tocmark/internal/toc"
)

var (
	resolveStructure string
	resolveSave      bool
	resolveAnnotated string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <pdf>",
	Short: "Resolve a PDF's ToC and annotate the extracted text",
	Long: `Resolve each table-of-contents entry of a PDF against the structured
page dump, relocate the matches in the pdftotext output, and print the
resulting report.

The structured dump is a JSON file describing the outline and the per-page
text blocks with font and position metadata. By default it is expected
next to the PDF with a .json extension.

Examples:
  tocmark resolve book.pdf
  tocmark resolve book.pdf --structure dump.json
  tocmark resolve book.pdf --save --annotated book.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, _, err := setupServices(cmd.Context())
		if err != nil {
			return err
		}

		pdfPath := args[0]
		structurePath := resolveStructure
		if structurePath == "" {
			structurePath = strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".json"
		}

		outcome, err := runResolve(ctx, pdfPath, structurePath, resolveSave)
		if err != nil {
			return err
		}

		if resolveAnnotated != "" {
			if err := os.WriteFile(resolveAnnotated, []byte(outcome.Result.Annotated), 0644); err != nil {
				return fmt.Errorf("writing annotated text: %w", err)
			}
		}

		return output.Output(struct {
			Record runstore.Record `yaml:"record" json:"record"`
			Report *toc.Report     `yaml:"report" json:"report"`
		}{outcome.Record, outcome.Result.Report})
	},
}

func init() {
	resolveCmd.Flags().StringVar(
		&resolveStructure, "structure", "", "structured page dump (default: <pdf>.json)",
	)
	resolveCmd.Flags().BoolVar(
		&resolveSave, "save", false, "persist the run under the home runs directory",
	)
	resolveCmd.Flags().StringVar(
		&resolveAnnotated, "annotated", "", "write the annotated text to this path",
	)
}

// resolveOutcome bundles what a single resolve run produced.
type resolveOutcome struct {
	Record runstore.Record
	Result *pipeline.Result
}

// runResolve executes the full pipeline for one pdf+structure pair. Shared
// between the resolve command and the watch handler.
func runResolve(ctx context.Context, pdfPath, structurePath string, save bool) (*resolveOutcome, error) {
	svcs := svcctx.From(ctx)
	logger := svcs.Logger
	cfg := svcs.Config.Get()

	ext := extract.New(extract.Config{
		Binary: cfg.ExtractorBinary(),
		Logger: logger,
	})
	if err := ext.CheckAvailable(); err != nil {
		return nil, err
	}

	doc, err := structure.Load(structurePath)
	if err != nil {
		return nil, fmt.Errorf("loading structure %s: %w", structurePath, err)
	}

	// Cross-check the dump against the PDF itself. A mismatch usually
	// means the dump came from a different revision of the document.
	if count, err := extract.PageCount(pdfPath); err == nil && count != doc.PageCount {
		logger.Warn("page count mismatch",
			"pdf", count,
			"structure", doc.PageCount,
		)
	}

	extractCtx := ctx
	if cfg.Extractor.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		extractCtx, cancel = context.WithTimeout(ctx, time.Duration(cfg.Extractor.TimeoutSeconds)*time.Second)
		defer cancel()
	}
	pages, err := ext.Pages(extractCtx, pdfPath)
	if err != nil {
		return nil, err
	}

	result, err := pipeline.Run(ctx, doc, pages, pipeline.Config{
		Workers:          cfg.Pipeline.Workers,
		AnnotateMaxLevel: cfg.Annotate.MaxLevel,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	rec := runstore.Record{
		ID:            uuid.New().String(),
		PDFPath:       pdfPath,
		StructurePath: structurePath,
		CreatedAt:     time.Now().UTC(),
		StatusCounts:  result.Report.StatusCounts,
	}
	if save {
		if err := svcs.Runs.Save(rec, result.Report, result.Annotated); err != nil {
			return nil, fmt.Errorf("saving run: %w", err)
		}
		logger.Info("run saved", "run_id", rec.ID, "dir", svcs.Home.RunDir(rec.ID))
	}

	return &resolveOutcome{Record: rec, Result: result}, nil
}
