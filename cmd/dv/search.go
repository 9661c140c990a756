package main

import (
	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search for snippets by keyword",
	Long: `Search snippets by keyword. A snippet matches when the keyword appears,
ignoring case, in its key, its description or any one of its tags. The
command itself is not searched.

Examples:
  dv search docker
  dv search "git log"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCollection(openStore())
	if err != nil {
		return err
	}

	keyword := args[0]
	matches := snippet.Search(c, keyword)

	if !isHuman() {
		outputJSON(cmd.OutOrStdout(), emptyIfNil(matches))
		return nil
	}

	p := printer(cmd)
	if len(matches) == 0 {
		p.Info("No matches found for '%s'", keyword)
		return nil
	}
	p.Line("🔍 Search: Found %d matches:", len(matches))
	p.Table(matches)
	return nil
}
