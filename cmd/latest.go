package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chris-regnier/gitdiary/internal/ui"
	"github.com/chris-regnier/gitdiary/internal/watch"
)

var (
	latestPretty bool
	latestFollow bool
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recent date section",
	Long: `Print the most recent date section exactly as it appears in the diary.

With --pretty the section is rendered as styled Markdown and paged when it
does not fit the terminal. With --follow the section is printed again each
time the diary file changes, until interrupted.`,
	Example: `  gitdiary latest
  gitdiary latest --pretty
  gitdiary latest --follow`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if latestFollow {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return latestFollowRun(ctx, cmd.OutOrStdout(), latestPretty)
		}
		return latestRun(cmd.OutOrStdout(), latestPretty)
	},
}

func latestRun(w io.Writer, pretty bool) error {
	return printLatest(w, pretty, true)
}

// printLatest writes the latest section, rendered when pretty is set.
// Rendered output goes through the pager only when page is set.
func printLatest(w io.Writer, pretty, page bool) error {
	s, err := jrnl.Latest()
	if err != nil {
		return fmt.Errorf("reading latest section: %w", err)
	}
	if !pretty {
		_, err := fmt.Fprint(w, s.Text())
		return err
	}
	theme := ui.ResolveTheme(appConfig.Theme)
	rendered := ui.RenderMarkdownWithStyle(s.Text(), appConfig.MaxWidth, theme.MarkdownStyle)
	if !page {
		_, err := fmt.Fprint(w, rendered)
		return err
	}
	return ui.Pager{Out: w, MaxWidth: appConfig.MaxWidth, Theme: theme}.Page(rendered)
}

// latestFollowRun prints the latest section and reprints it after every
// change to the diary until ctx is cancelled. Output is never paged.
func latestFollowRun(ctx context.Context, w io.Writer, pretty bool) error {
	if err := printLatest(w, pretty, false); err != nil {
		return err
	}

	updates := make(chan struct{}, 1)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(updates)
		f := &watch.Follower{
			Path:   store.Path(),
			Logger: logger,
			OnChange: func() error {
				select {
				case updates <- struct{}{}:
				default:
				}
				return nil
			},
		}
		return f.Run(ctx)
	})

	g.Go(func() error {
		for range updates {
			fmt.Fprintln(w)
			if err := printLatest(w, pretty, false); err != nil {
				// A half-written or removed file is reported and skipped.
				logger.Warn("follow: reading diary", slog.Any("error", err))
			}
		}
		return nil
	})

	return g.Wait()
}

func init() {
	latestCmd.Flags().BoolVarP(&latestPretty, "pretty", "p", false, "render as styled Markdown")
	latestCmd.Flags().BoolVarP(&latestFollow, "follow", "f", false, "print again whenever the diary changes")
	rootCmd.AddCommand(latestCmd)
}
