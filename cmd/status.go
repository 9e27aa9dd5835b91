package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/shell"
	"github.com/chris-regnier/gitdiary/internal/storage"
	"github.com/chris-regnier/gitdiary/internal/ui"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon      string `json:"today_icon"`
	Streak         int    `json:"streak"`
	StreakIcon     string `json:"streak_icon"`
	HasToday       bool   `json:"has_today"`
	TodayEntries   int    `json:"today_entries"`
	SummaryPending bool   `json:"summary_pending"`
	PendingIcon    string `json:"pending_icon"`
}

var (
	statusEnv     bool
	statusRefresh bool
	statusFormat  string
	statusJSON    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show diary prompt status",
	Long: `Show diary status for shell prompt integration.

Outputs today's indicator, the streak of consecutive days with entries and
a marker when today's summary is still the placeholder. The result is
cached until the diary file changes or the day rolls over.

Use --env to output shell environment variable assignments.
Use --refresh to ignore the cache.
Use --format with a Go template for custom output.`,
	Example: `  gitdiary status
  gitdiary status --env
  gitdiary status --format "{{.TodayIcon}} {{.TodayEntries}}"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadStatus(statusRefresh)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		switch {
		case statusEnv:
			return outputEnv(w, data)
		case statusFormat != "":
			return outputTemplate(w, data, statusFormat)
		case statusJSON:
			return ui.FormatJSON(w, data)
		}
		return outputDefault(w, data)
	},
}

func loadStatus(refresh bool) (statusData, error) {
	now := clock()
	cache := shell.ReadCache(cacheDir)
	if refresh || !cache.IsFresh(store.Path(), now) {
		dates, err := jrnl.Dates()
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return statusData{}, fmt.Errorf("computing status: %w", err)
		}
		cache = shell.NewCache(shell.ComputeStatus(dates, now), store.Path(), now)
		if err := shell.WriteCache(cacheDir, cache); err != nil {
			// A prompt must not fail because the cache is unwritable.
			logger.Warn("could not write prompt cache", slog.Any("error", err))
		}
	}
	return buildStatusData(cache.Status), nil
}

func buildStatusData(st shell.Status) statusData {
	icon := appConfig.Shell.NoTodayIcon
	if st.Today {
		icon = appConfig.Shell.TodayIcon
	}
	return statusData{
		TodayIcon:      icon,
		Streak:         st.Streak,
		StreakIcon:     appConfig.Shell.StreakIcon,
		HasToday:       st.Today,
		TodayEntries:   st.TodayEntries,
		SummaryPending: st.SummaryPending,
		PendingIcon:    appConfig.Shell.PendingIcon,
	}
}

func outputEnv(w io.Writer, data statusData) error {
	fmt.Fprintf(w, "export GITDIARY_TODAY=%q\n", data.TodayIcon)
	fmt.Fprintf(w, "export GITDIARY_STREAK=%q\n", fmt.Sprintf("%d", data.Streak))
	fmt.Fprintf(w, "export GITDIARY_STREAK_ICON=%q\n", data.StreakIcon)
	if data.SummaryPending {
		fmt.Fprintf(w, "export GITDIARY_SUMMARY=%q\n", data.PendingIcon)
	} else {
		fmt.Fprintln(w, "unset GITDIARY_SUMMARY")
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return fmt.Errorf("invalid format template: %w", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{fmt.Sprintf("%s %d%s", data.TodayIcon, data.Streak, data.StreakIcon)}
	if data.SummaryPending {
		parts = append(parts, data.PendingIcon)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().BoolVar(&statusRefresh, "refresh", false, "ignore the cached status")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(statusCmd)
}
