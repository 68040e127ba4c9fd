package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/config"
	"github.com/jackzampolin/tocmark/internal/home"
	"github.com/jackzampolin/tocmark/internal/output"
	"github.com/jackzampolin/tocmark/internal/runstore"
	"github.com/jackzampolin/tocmark/internal/svcctx"
	"github.com/jackzampolin/tocmark/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "tocmark",
	Short: "Resolve a PDF's table of contents against its extracted text",
	Long: `Tocmark cross-references a PDF's declared table of contents with the
text actually present on its pages, then marks the located headings in a
plain-text rendering of the document.

Resolution runs in two stages:
  - Structural: each ToC entry is matched against the font and position
    metadata of the blocks on its target page
  - Relocation: matched entries are re-found in the pdftotext output
    using the surrounding context captured in the first stage

The annotated text carries markdown-style heading markers sized by each
entry's depth in the outline.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.tocmark/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "tocmark home directory (default: ~/.tocmark)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "info", "log level: debug, info, warn, or error",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tocCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}

// setupServices builds the shared service set and attaches it to the
// command context.
func setupServices(ctx context.Context) (context.Context, *svcctx.Services, error) {
	logger := newLogger()

	h, err := home.New(homeDir)
	if err != nil {
		return nil, nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, nil, err
	}

	// An explicit --config wins; otherwise fall back to the home config
	// when one has been written there.
	cfgPath := cfgFile
	if cfgPath == "" && h.ConfigExists() {
		cfgPath = h.ConfigPath()
	}
	cm, err := config.NewManager(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	svcs := &svcctx.Services{
		Logger: logger,
		Config: cm,
		Home:   h,
		Runs:   runstore.New(h),
	}
	return svcctx.WithServices(ctx, svcs), svcs, nil
}
