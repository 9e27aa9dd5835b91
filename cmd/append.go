package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/ui"
)

var appendCmd = &cobra.Command{
	Use:   "append <category> <title> [body]",
	Short: "Append an entry to today's operations log",
	Long: `Append a timestamped entry under today's date.

The category is one of content, system or other. An unknown category is
filed under other with a warning. Each non-blank line of the body becomes a
sub-bullet. Pass - as the body to read it from stdin.`,
	Example: `  gitdiary append content "Draft article" "Outline\nFirst section"
  gitdiary append system "Deploy config"
  git log -1 --format=%b | gitdiary append system "Release" -`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var body string
		if len(args) == 3 {
			body = args[2]
		}
		if body == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			body = strings.TrimSpace(string(data))
		}
		return appendRun(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], args[1], body)
	},
}

func appendRun(w, errw io.Writer, categoryName, title, body string) error {
	res, err := jrnl.Append(categoryName, title, body)
	if err != nil {
		return fmt.Errorf("appending entry: %w", err)
	}
	if res.Fallback {
		ui.FormatWarning(errw, "unknown category %q, filed under %q", categoryName, res.Category.String())
	}
	ui.FormatAppended(w, res)
	return nil
}

func init() {
	rootCmd.AddCommand(appendCmd)
}
