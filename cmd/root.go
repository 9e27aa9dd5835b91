package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris-regnier/gitdiary/internal/changes"
	"github.com/chris-regnier/gitdiary/internal/config"
	"github.com/chris-regnier/gitdiary/internal/journal"
	"github.com/chris-regnier/gitdiary/internal/logging"
	"github.com/chris-regnier/gitdiary/internal/storage"
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
	logger    *slog.Logger
	store     *storage.File
	jrnl      *journal.Journal
	gitDir    string
	cacheDir  string
	clock     = time.Now

	rootSuggest    bool
	rootSummary    bool
	rootReadLatest bool
)

var rootCmd = &cobra.Command{
	Use:   "gitdiary",
	Short: "Keep a bilingual work diary next to your git repository",
	Long: `gitdiary maintains git_diary.md, a Markdown work log grouped by date.

Each day gets a summary block and an operations log of timestamped entries
filed under fixed categories (content, system, other). The file is parsed,
changed and rewritten as a whole on every invocation.`,
	Example: `  gitdiary append system "Deploy config" "Rolled out new nginx rules"
  gitdiary --suggest
  gitdiary --summary
  gitdiary --read-latest`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return setup(cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case rootSuggest:
			return suggestRun(cmd.Context(), cmd.OutOrStdout())
		case rootSummary:
			return summaryRun(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), false)
		case rootReadLatest:
			return latestRun(cmd.OutOrStdout(), false)
		}
		return cmd.Help()
	},
}

// setup wires the logger, storage and journal from cfg.
func setup(cfg *config.Config) error {
	appConfig = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.New(os.Stderr, level)

	store, err = storage.New(cfg.DiaryFile)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	cacheDir = config.DefaultDataDir()
	jrnl = journal.New(store,
		journal.WithClock(clock),
		journal.WithLayout(cfg.TimestampLayout),
		journal.WithLogger(logger))
	logger.Debug("configured", slog.String("diary_file", cfg.DiaryFile))
	return nil
}

func gitProbe() changes.Git {
	return changes.Git{Dir: gitDir, Timeout: appConfig.Timeout()}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.Flags().BoolVar(&rootSuggest, "suggest", false, "print a suggested entry as category|title|body")
	rootCmd.Flags().BoolVar(&rootSummary, "summary", false, "answer the retrospective questions for today")
	rootCmd.Flags().BoolVar(&rootReadLatest, "read-latest", false, "print the most recent date section")
	rootCmd.MarkFlagsMutuallyExclusive("suggest", "summary", "read-latest")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
