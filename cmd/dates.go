package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/ui"
)

var datesOutput string

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "List date sections",
	Long:  "List the date sections of the diary in file order with entry counts per category.",
	Example: `  gitdiary dates
  gitdiary dates -o json
  gitdiary dates -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return datesRun(cmd.OutOrStdout(), datesOutput)
	},
}

func datesRun(w io.Writer, output string) error {
	dates, err := jrnl.Dates()
	if err != nil {
		return fmt.Errorf("listing dates: %w", err)
	}
	switch output {
	case "", "table":
		ui.FormatDates(w, dates)
		return nil
	case "json":
		return ui.FormatJSON(w, dates)
	case "yaml":
		return ui.FormatYAML(w, dates)
	}
	return fmt.Errorf("unknown output format %q (use table, json or yaml)", output)
}

func init() {
	datesCmd.Flags().StringVarP(&datesOutput, "output", "o", "table", "output format: table, json or yaml")
	rootCmd.AddCommand(datesCmd)
}
