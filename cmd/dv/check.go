package main

import (
	"fmt"

	"github.com/matsen/devvault/internal/clipboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify store integrity",
	Long: `Verify store integrity. dv never writes duplicate or empty keys, but a
hand-edited store file can contain them; get returns the first of several
entries with the same key and delete removes all of them.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status    string       `json:"status"`
	Path      string       `json:"path"`
	Snippets  int          `json:"snippets"`
	Clipboard string       `json:"clipboard"`
	Issues    []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type     string `json:"type"`
	Key      string `json:"key,omitempty"`
	Position int    `json:"position,omitempty"`
	Count    int    `json:"count,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := openStore()
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	db, err := buildIndex(c)
	if err != nil {
		return err
	}
	defer db.Close()

	// Not an issue: get --no-copy works without a clipboard.
	sys := clipboard.System{}
	if globalCfg != nil {
		sys.Command = globalCfg.Clipboard
	}
	tool := sys.Tool()

	var issues []CheckIssue

	dups, err := db.DuplicateKeys()
	if err != nil {
		return exitErrorf(ExitError, "checking duplicate keys: %v", err)
	}
	for _, d := range dups {
		issues = append(issues, CheckIssue{Type: "duplicate_key", Key: d.Key, Count: d.Count})
	}

	for i, sn := range c {
		if sn.Key == "" {
			issues = append(issues, CheckIssue{Type: "empty_key", Position: i + 1})
		}
	}

	// Determine status
	status := "ok"
	if len(issues) > 0 {
		status = "issues"
	}

	// Ensure issues is an empty array, not null
	if issues == nil {
		issues = []CheckIssue{}
	}

	if !isHuman() {
		outputJSON(cmd.OutOrStdout(), CheckResult{
			Status:    status,
			Path:      s.Path(),
			Snippets:  len(c),
			Clipboard: tool,
			Issues:    issues,
		})
		return nil
	}

	w := cmd.OutOrStdout()
	clip := tool
	if clip == "" {
		clip = "not available (use get --no-copy)"
	}
	if len(issues) == 0 {
		fmt.Fprintf(w, "Store check: OK\n\n%d snippets checked in %s\nClipboard: %s\n", len(c), s.Path(), clip)
		return nil
	}
	fmt.Fprintf(w, "Store check: %d issues found\n\n", len(issues))
	for _, issue := range issues {
		switch issue.Type {
		case "duplicate_key":
			fmt.Fprintf(w, "  [WARN] Duplicate key %q (%d entries)\n\n", issue.Key, issue.Count)
		case "empty_key":
			fmt.Fprintf(w, "  [WARN] Empty key at entry %d\n\n", issue.Position)
		}
	}
	fmt.Fprintf(w, "%d snippets checked in %s\nClipboard: %s\n", len(c), s.Path(), clip)
	return nil
}
