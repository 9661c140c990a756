package main

import (
	"os"

	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (json, yaml); default from --output extension, else json")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all snippets",
	Long: `Export all snippets as JSON or YAML. JSON output has the same layout as
the store file, so it can be imported elsewhere or kept as a backup.

Examples:
  dv export > backup.json
  dv export --format yaml
  dv export -o snippets.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := exportFormat
	if format == "" {
		format = storage.FormatFromPath(exportOutput)
	}
	if err := storage.ValidateFormat(format); err != nil {
		return exitErrorf(ExitError, "%v", err)
	}

	c, err := loadCollection(openStore())
	if err != nil {
		return err
	}

	data, err := storage.Encode(c, format)
	if err != nil {
		return exitErrorf(ExitError, "encoding snippets: %v", err)
	}

	// Export is always raw data, never wrapped in a JSON response
	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return exitErrorf(ExitError, "writing %s: %v", exportOutput, err)
	}
	if isHuman() {
		p := printer(cmd)
		p.Success("Exported %d snippets to %s", len(c), exportOutput)
	} else {
		outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "exported", Path: exportOutput})
	}
	return nil
}
