package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

var (
	importFormat string
	importDryRun bool
)

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "Import format (json, yaml); default from file extension")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Show what would be imported without writing")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import snippets from a JSON or YAML file",
	Long: `Import snippets from a file produced by dv export (or written by hand).
Snippets whose key already exists are skipped, as are repeated keys within the
file. The store is written once, after all records are processed.

Examples:
  dv import backup.json
  dv import snippets.yaml --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// ImportResult represents the result of an import operation.
type ImportResult struct {
	New     int      `json:"new"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
	DryRun  bool     `json:"dry_run,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	format := importFormat
	if format == "" {
		format = storage.FormatFromPath(path)
	}
	if err := storage.ValidateFormat(format); err != nil {
		return exitErrorf(ExitError, "%v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return exitErrorf(ExitError, "reading %s: %v", path, err)
	}
	incoming, err := storage.Decode(data, format)
	if err != nil {
		return exitErrorf(ExitDataError, "%s: %v", path, err)
	}

	s := openStore()
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	c, result := mergeSnippets(c, incoming)
	result.DryRun = importDryRun

	if result.New > 0 && !importDryRun {
		if err := saveCollection(s, c); err != nil {
			return err
		}
	}

	if !isHuman() {
		outputJSON(cmd.OutOrStdout(), result)
		return nil
	}

	p := printer(cmd)
	verb := "Imported"
	if importDryRun {
		verb = "Would import"
	}
	p.Success("%s %d snippets (%d skipped)", verb, result.New, result.Skipped)
	for _, e := range result.Errors {
		p.Error("%s", e)
	}
	return nil
}

// mergeSnippets adds each incoming snippet to c in order.
// Duplicates are skipped; invalid records are reported by position.
func mergeSnippets(c snippet.Collection, incoming snippet.Collection) (snippet.Collection, ImportResult) {
	result := ImportResult{Errors: []string{}}
	for i, sn := range incoming {
		next, _, err := snippet.Add(c, sn)
		switch {
		case err == nil:
			c = next
			result.New++
		case errors.Is(err, snippet.ErrDuplicateKey):
			result.Skipped++
		default:
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", i+1, err))
		}
	}
	return c, result
}
