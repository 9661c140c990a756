package main

import (
	"errors"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
)

var (
	addKey         string
	addDescription string
	addCommand     string
	addTags        []string
)

func init() {
	addCmd.Flags().StringVarP(&addKey, "key", "k", "", "Unique key for the snippet (required)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "What the snippet does (required)")
	addCmd.Flags().StringVarP(&addCommand, "command", "c", "", "The command to store (required)")
	addCmd.Flags().StringArrayVarP(&addTags, "tags", "t", nil, "Tags (comma-separated, can be repeated)")
	addCmd.MarkFlagRequired("key")
	addCmd.MarkFlagRequired("description")
	addCmd.MarkFlagRequired("command")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new snippet",
	Long: `Add a new snippet. Keys are unique and case-sensitive; adding an existing
key is reported and leaves the store unchanged.

Examples:
  dv add -k gitlog -d "pretty git log" -c "git log --oneline --graph" -t git,log
  dv add -k ports -d "listening ports" -c "lsof -iTCP -sTCP:LISTEN" -t net -t debug`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	s := openStore()
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	c, added, err := snippet.Add(c, snippet.New(addKey, addDescription, addCommand, snippet.ParseTags(addTags)))
	if err != nil {
		var dupErr *snippet.DuplicateKeyError
		if errors.As(err, &dupErr) {
			// Duplicate is a normal outcome: report it, change nothing.
			if isHuman() {
				printer(cmd).Error("A snippet with key '%s' already exists.", dupErr.Key)
			} else {
				outputJSON(cmd.OutOrStdout(), StatusResponse{Status: StatusDuplicate, Key: dupErr.Key})
			}
			return nil
		}
		return exitErrorf(ExitError, "invalid snippet: %v", err)
	}

	if err := saveCollection(s, c); err != nil {
		return err
	}

	if isHuman() {
		p := printer(cmd)
		p.Success("Added snippet: %s", p.Key(added.Key))
	} else {
		outputJSON(cmd.OutOrStdout(), SnippetResponse{Status: StatusAdded, Snippet: &added})
	}
	return nil
}
