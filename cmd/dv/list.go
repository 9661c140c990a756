package main

import (
	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
)

var listMatch string

func init() {
	listCmd.Flags().StringVar(&listMatch, "match", "", "Only list keys matching a glob (e.g. 'git-*', '{docker,k8s}-*')")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all saved snippets",
	Long: `List all saved snippets in the order they were added.

Examples:
  dv list
  dv list --match 'git-*'
  dv list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	c, err := loadCollection(openStore())
	if err != nil {
		return err
	}

	snippets := snippet.List(c)
	if listMatch != "" {
		snippets, err = snippet.FilterKeys(snippets, listMatch)
		if err != nil {
			return exitErrorf(ExitError, "%v", err)
		}
	}

	if isHuman() {
		printer(cmd).Table(snippets)
	} else {
		outputJSON(cmd.OutOrStdout(), emptyIfNil(snippets))
	}
	return nil
}
