package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/changes"
	"github.com/chris-regnier/gitdiary/internal/ui"
)

var suggestJSON bool

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest an entry from uncommitted git changes",
	Long: `Print a suggested entry as a single line: category|title|body.

Markdown files under the content directory make a content entry; any other
change makes a system entry. Outside a git repository, or with a clean
tree, a generic maintenance entry is suggested.`,
	Example: `  gitdiary suggest
  IFS='|' read -r cat title body <<< "$(gitdiary --suggest)"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return suggestRun(cmd.Context(), cmd.OutOrStdout())
	},
}

type suggestionJSON struct {
	Category string   `json:"category"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Files    []string `json:"files"`
}

func suggestRun(ctx context.Context, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	files, err := gitProbe().ChangedFiles(ctx)
	if err != nil {
		logger.Debug("git status unavailable", slog.Any("error", err))
		files = nil
	}
	s := changes.Suggest(files, appConfig.ContentDir)

	if suggestJSON {
		if files == nil {
			files = []string{}
		}
		return ui.FormatJSON(w, suggestionJSON{
			Category: s.Category.String(),
			Title:    s.Title,
			Body:     s.Body,
			Files:    files,
		})
	}
	_, err = fmt.Fprintln(w, s.Line())
	return err
}

func init() {
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(suggestCmd)
}
