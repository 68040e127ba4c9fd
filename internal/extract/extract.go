// Package extract runs poppler's pdftotext to produce the page-delimited
// plain-text rendering of a document.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// DefaultBinary is the extractor binary when none is configured.
const DefaultBinary = "pdftotext"

// Error reports an extractor process that exited non-zero. Extraction
// failure is fatal for a run: there is no partial text to relocate against,
// so callers propagate it rather than retry.
type Error struct {
	Binary   string
	ExitCode int
	Stderr   string
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Binary, e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Binary, e.ExitCode)
}

// Config configures an Extractor.
type Config struct {
	Binary string       // Extractor binary (default: pdftotext)
	Logger *slog.Logger // Optional logger
}

// Extractor invokes the external plain-text extractor.
type Extractor struct {
	binary string
	logger *slog.Logger
}

// New creates an Extractor.
func New(cfg Config) *Extractor {
	binary := cfg.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{binary: binary, logger: logger}
}

// CheckAvailable verifies the extractor binary is on PATH.
func (e *Extractor) CheckAvailable() error {
	if _, err := exec.LookPath(e.binary); err != nil {
		return fmt.Errorf("%s not found in PATH: %w", e.binary, err)
	}
	return nil
}

// Pages extracts plain text from the PDF at path, one string per page in
// page order. The PDF is fed on stdin and pages split on form feed, matching
// the extractor's page-break output.
func (e *Extractor) Pages(ctx context.Context, pdfPath string) ([]string, error) {
	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	// -enc UTF-8: output encoding
	// -eol unix: \n line endings
	// -layout: preserve physical layout so headings stay on their own lines
	// - -: read stdin, write stdout
	cmd := exec.CommandContext(ctx, e.binary,
		"-enc", "UTF-8",
		"-eol", "unix",
		"-layout",
		"-", "-",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(data)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.logger.Debug("running extractor", "binary", e.binary, "pdf", pdfPath, "bytes", len(data))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &Error{
				Binary:   e.binary,
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return nil, fmt.Errorf("failed to run %s: %w", e.binary, err)
	}

	pages := splitPages(stdout.String())
	e.logger.Debug("extraction complete", "pages", len(pages))
	return pages, nil
}

// splitPages splits extractor output on form feed into per-page strings.
func splitPages(text string) []string {
	return strings.Split(text, "\f")
}

// PageCount returns the number of pages in the PDF at path. Used for
// pre-flight validation and cross-checking against a structure dump.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}
