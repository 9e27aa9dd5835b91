package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

// Set via -ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	versionShort  bool
	versionOutput string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Example: `  gitdiary version
  gitdiary version --short`,
	Args: cobra.NoArgs,
	// Skip config loading so a broken config still reports the version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		resp := goversion.FuncWithOutput(versionShort, version, commit, date, versionOutput)
		fmt.Fprint(cmd.OutOrStdout(), resp)
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print just the version number")
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "json", "output format: yaml or json")
	rootCmd.AddCommand(versionCmd)
}
