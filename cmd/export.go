package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/gitdiary/internal/export"
	"github.com/chris-regnier/gitdiary/internal/ui"
)

var (
	exportSrc string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert content articles to standalone HTML pages",
	Long: `Convert every Markdown file in the content directory to an HTML page in
the export directory. Front matter is stripped; its title, or the first
heading, becomes the page title.`,
	Example: `  gitdiary export
  gitdiary export --src notes --out site`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return exportRun(ctx, cmd.OutOrStdout(), exportSrc, exportOut)
	},
}

func exportRun(ctx context.Context, w io.Writer, src, out string) error {
	if src == "" {
		src = appConfig.ContentDir
	}
	if out == "" {
		out = appConfig.ExportDir
	}
	e := &export.Exporter{SrcDir: src, OutDir: out, Logger: logger}
	results, err := e.Run(ctx)
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	ui.FormatExported(w, results)
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportSrc, "src", "", "source directory (default: content_dir)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default: export_dir)")
	rootCmd.AddCommand(exportCmd)
}
