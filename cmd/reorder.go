package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/ui"
)

var (
	reorderYes    bool
	reorderDryRun bool
)

var reorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "Rewrite the diary newest date and newest entry first",
	Long: `Sort date sections newest first and, within each date, reverse the
operations log when its entries run oldest first. Categories keep their
place. Headings are rewritten in canonical form.

Nothing is written when the diary is already in order.`,
	Example: `  gitdiary reorder
  gitdiary reorder --dry-run
  gitdiary reorder --yes`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reorderRun(cmd.InOrStdin(), cmd.OutOrStdout(), reorderYes, reorderDryRun)
	},
}

func reorderRun(r io.Reader, w io.Writer, yes, dryRun bool) error {
	_, preview, err := jrnl.Preview()
	if err != nil {
		return fmt.Errorf("reading diary: %w", err)
	}
	if !preview.Changed() || dryRun {
		ui.FormatReorder(w, preview, false)
		return nil
	}

	if !yes {
		ok, err := confirm(r, w, fmt.Sprintf("Rewrite %s?", store.Path()))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	res, err := jrnl.Reorder()
	if err != nil {
		return fmt.Errorf("reordering diary: %w", err)
	}
	ui.FormatReorder(w, res, res.Changed())
	return nil
}

// confirm uses the interactive prompt on a terminal and a y/N line otherwise.
func confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	if in, ok := r.(*os.File); ok && isTerminal(in) {
		if out, ok := w.(*os.File); ok && isTerminal(out) {
			return ui.Confirm(prompt, ui.ResolveTheme(appConfig.Theme))
		}
	}
	return ui.ConfirmLine(r, w, prompt)
}

func init() {
	reorderCmd.Flags().BoolVarP(&reorderYes, "yes", "y", false, "skip the confirmation prompt")
	reorderCmd.Flags().BoolVar(&reorderDryRun, "dry-run", false, "report what would change without writing")
	rootCmd.AddCommand(reorderCmd)
}
