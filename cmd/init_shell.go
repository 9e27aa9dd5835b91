package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/shell"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

Generates shell-specific initialization code that sets up:
- Shell completions
- Prompt hook for diary status env vars
- gitdiary_prompt_info helper function

Supported shells: bash, zsh`,
	Example: `  # Add to ~/.bashrc
  eval "$(gitdiary init bash)"

  # Add to ~/.zshrc
  eval "$(gitdiary init zsh)"`,
	Args: cobra.ExactArgs(1),
	// The script is static; config is not needed.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			shell.WriteBashInit(cmd.OutOrStdout())
		case "zsh":
			shell.WriteZshInit(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q (supported: bash, zsh)", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}
