package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/tocmark/internal/output"
	"github.com/jackzampolin/tocmark/internal/runstore"
	"github.com/jackzampolin/tocmark/internal/toc"
)

var runsShowAnnotated bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect saved resolution runs",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svcs, err := setupServices(cmd.Context())
		if err != nil {
			return err
		}
		records, err := svcs.Runs.List()
		if err != nil {
			return err
		}
		return output.Output(records)
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Show one run's record and report",
	Long: `Show the stored record and full per-entry report for a saved run.

With --annotated the marked-up text is printed instead.

Examples:
  tocmark runs show 4f7c21aa-...
  tocmark runs show 4f7c21aa-... --annotated`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svcs, err := setupServices(cmd.Context())
		if err != nil {
			return err
		}

		if runsShowAnnotated {
			text, err := svcs.Runs.Annotated(args[0])
			if err != nil {
				return err
			}
			fmt.Print(text)
			return nil
		}

		rec, report, err := svcs.Runs.Load(args[0])
		if err != nil {
			return err
		}
		return output.Output(struct {
			Record runstore.Record `yaml:"record" json:"record"`
			Report *toc.Report     `yaml:"report" json:"report"`
		}{rec, report})
	},
}

func init() {
	runsShowCmd.Flags().BoolVar(
		&runsShowAnnotated, "annotated", false, "print the annotated text instead of the report",
	)

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
}
