package main

import (
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tagsCmd)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags with the number of snippets using each",
	Long: `List every tag with the number of snippets carrying it, most used first.
Tags that differ only in case are counted together.`,
	Args: cobra.NoArgs,
	RunE: runTags,
}

func runTags(cmd *cobra.Command, args []string) error {
	c, err := loadCollection(openStore())
	if err != nil {
		return err
	}

	db, err := buildIndex(c)
	if err != nil {
		return err
	}
	defer db.Close()

	counts, err := db.TagCounts()
	if err != nil {
		return exitErrorf(ExitError, "counting tags: %v", err)
	}

	if !isHuman() {
		outputJSON(cmd.OutOrStdout(), counts)
		return nil
	}

	p := printer(cmd)
	if len(counts) == 0 {
		p.Info("No tags found")
		return nil
	}
	pairs := make([][2]string, len(counts))
	for i, tc := range counts {
		pairs[i] = [2]string{tc.Tag, strconv.Itoa(tc.Count)}
	}
	p.KeyValue(pairs)
	return nil
}
