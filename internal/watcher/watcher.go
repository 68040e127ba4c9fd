// Package watcher runs inbox mode: it watches a directory for matching
// <name>.pdf + <name>.json pairs, waits for both files to stop growing, and
// hands stable pairs to a handler.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
)

// Handler processes one stable pdf+structure pair.
type Handler func(ctx context.Context, pdfPath, structurePath string) error

// Config configures a Watcher.
type Config struct {
	Dir               string        // Directory to watch
	Handler           Handler       // Invoked per stable pair
	Logger            *slog.Logger  // Optional logger
	StabilizeDelay    time.Duration // Delay between file-size checks (default 500ms)
	StabilizeAttempts uint          // Max size checks per file (default 20)
}

// Watcher watches an inbox directory for document pairs.
type Watcher struct {
	dir               string
	handler           Handler
	logger            *slog.Logger
	stabilizeDelay    time.Duration
	stabilizeAttempts uint

	processed map[string]bool
}

// New creates a Watcher.
func New(cfg Config) *Watcher {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	delay := cfg.StabilizeDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	attempts := cfg.StabilizeAttempts
	if attempts == 0 {
		attempts = 20
	}

	return &Watcher{
		dir:               cfg.Dir,
		handler:           cfg.Handler,
		logger:            logger.With("watcher", cfg.Dir),
		stabilizeDelay:    delay,
		stabilizeAttempts: attempts,
		processed:         make(map[string]bool),
	}
}

// Run watches the directory until ctx is cancelled. Pairs already present at
// startup are processed first. Handler failures are logged, not fatal: one
// bad document must not stop the inbox.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.logger.Info("watching inbox")
	w.scanExisting(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopping")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			w.maybeProcess(ctx, pairName(event.Name))

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// scanExisting picks up pairs dropped before the watcher started.
func (w *Watcher) scanExisting(ctx context.Context) {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		w.logger.Warn("failed to scan inbox", "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		w.maybeProcess(ctx, pairName(filepath.Join(w.dir, entry.Name())))
	}
}

// maybeProcess handles the pair with the given base name once both halves
// exist and have stabilized.
func (w *Watcher) maybeProcess(ctx context.Context, name string) {
	if name == "" || w.processed[name] {
		return
	}

	pdfPath := filepath.Join(w.dir, name+".pdf")
	structurePath := filepath.Join(w.dir, name+".json")
	for _, p := range []string{pdfPath, structurePath} {
		if _, err := os.Stat(p); err != nil {
			return // pair incomplete, wait for the other half
		}
	}

	w.processed[name] = true

	for _, p := range []string{pdfPath, structurePath} {
		if err := w.waitStable(ctx, p); err != nil {
			w.logger.Warn("file never stabilized", "path", p, "error", err)
			return
		}
	}

	w.logger.Info("processing pair", "name", name)
	if err := w.handler(ctx, pdfPath, structurePath); err != nil {
		w.logger.Error("pair failed", "name", name, "error", err)
		return
	}
	w.logger.Info("pair complete", "name", name)
}

// waitStable polls until two consecutive size checks agree, bounding the
// wait for a file still being copied into the inbox.
func (w *Watcher) waitStable(ctx context.Context, path string) error {
	var lastSize int64 = -1
	return retry.Do(
		func() error {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.Size() != lastSize {
				lastSize = info.Size()
				return fmt.Errorf("size still changing: %d", info.Size())
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(w.stabilizeAttempts),
		retry.Delay(w.stabilizeDelay),
	)
}

// pairName maps an inbox file path to its pair base name, or "" for files
// that are not part of a pair.
func pairName(path string) string {
	base := filepath.Base(path)
	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".pdf", ".json":
		return strings.TrimSuffix(base, filepath.Ext(base))
	default:
		return ""
	}
}
