package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/output"
	"github.com/jackzampolin/tocmark/internal/structure"
	"github.com/jackzampolin/tocmark/internal/toc"
)

var tocCmd = &cobra.Command{
	Use:   "toc <structure.json>",
	Short: "Print the ToC entries declared in a structured page dump",
	Long: `Validate a structured page dump and print its outline as flat ToC
entries, before any resolution has run.

Examples:
  tocmark toc book.json
  tocmark toc book.json -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := structure.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading structure %s: %w", args[0], err)
		}
		return output.Output(toc.FromOutline(doc.Outline))
	},
}
