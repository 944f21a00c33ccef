// ABOUTME: CLI command for exporting the session's tracker data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/wellness/internal/store"
)

var (
	exportOutput string
	exportOnly   string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export tracker data",
	Long: `Export every tracker collection in one of several formats.

FORMATS:

  json       Full JSON export
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --only         Limit to one tracker (markdown only)

EXAMPLES:

  wellness export json                      # Export all data as JSON
  wellness export json -o backup.json       # Save to file
  wellness export yaml --seed 7             # Export a repeatable data set
  wellness export markdown --only sleep     # Export sleep as Markdown`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]
		export := store.NewExportData(st, time.Now())

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = export.ExportJSON()
		case "yaml":
			data, err = export.ExportYAML()
		case "markdown":
			var only *store.Collection
			if exportOnly != "" {
				c, err := parseCollection(exportOnly)
				if err != nil {
					return err
				}
				only = &c
			}
			data = []byte(export.ExportMarkdown(only))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ Exported to %s\n", exportOutput)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file")
	exportCmd.Flags().StringVar(&exportOnly, "only", "", "limit markdown to one tracker")
	rootCmd.AddCommand(exportCmd)
}
