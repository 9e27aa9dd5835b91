package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/diary"
	"github.com/chris-regnier/gitdiary/internal/editor"
	"github.com/chris-regnier/gitdiary/internal/storage"
	"github.com/chris-regnier/gitdiary/internal/summary"
	"github.com/chris-regnier/gitdiary/internal/ui"
)

var summaryEdit bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write today's summary from five retrospective questions",
	Long: `Ask five retrospective questions and replace today's summary block with
the answers. Empty answers are skipped. The diary file must already exist.

In a terminal the questions are shown as a form; otherwise one answer is
read per line from stdin. With --edit the questions open in $EDITOR.`,
	Example: `  gitdiary summary
  gitdiary summary --edit
  printf 'Shipped v2\nTests\n\nfsnotify\nDocs\n' | gitdiary --summary`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return summaryRun(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), summaryEdit)
	},
}

func summaryRun(ctx context.Context, r io.Reader, w io.Writer, edit bool) error {
	if !store.Exists() {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, store.Path())
	}

	answers, err := collectAnswers(ctx, r, w, edit)
	if errors.Is(err, ui.ErrCancelled) {
		fmt.Fprintln(w, "Summary cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	text, err := summary.Compose(answers)
	if errors.Is(err, diary.ErrNothingToDo) {
		fmt.Fprintln(w, "No answers given, summary unchanged.")
		return nil
	}
	if err != nil {
		return err
	}

	date, err := jrnl.ReplaceSummary(text)
	if err != nil {
		return fmt.Errorf("replacing summary: %w", err)
	}
	ui.FormatSummaryReplaced(w, date)
	return nil
}

func collectAnswers(ctx context.Context, r io.Reader, w io.Writer, edit bool) (summary.Answers, error) {
	if edit {
		if ctx == nil {
			ctx = context.Background()
		}
		ed := editor.New(editor.ResolveEditor(appConfig.Editor))
		content, changed, err := ed.Edit(ctx, summary.Template())
		if err != nil {
			return nil, fmt.Errorf("editing summary: %w", err)
		}
		if !changed {
			return summary.Answers{}, nil
		}
		return summary.ParseTemplate(content), nil
	}

	if in, ok := r.(*os.File); ok && isTerminal(in) {
		if out, ok := w.(*os.File); ok && isTerminal(out) {
			return ui.AskSummary(ui.ResolveTheme(appConfig.Theme), appConfig.MaxWidth)
		}
	}
	return summary.Ask(r, w)
}

func init() {
	summaryCmd.Flags().BoolVarP(&summaryEdit, "edit", "e", false, "answer the questions in $EDITOR")
	rootCmd.AddCommand(summaryCmd)
}
