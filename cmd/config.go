package cmd

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, config file and GITDIARY_*
environment variables are applied, in TOML form suitable for
~/.gitdiary/config.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return configRun(cmd.OutOrStdout())
	},
}

func configRun(w io.Writer) error {
	data, err := toml.Marshal(appConfig)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(configCmd)
}
