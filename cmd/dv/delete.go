package main

import (
	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:     "delete <key>",
	Aliases: []string{"rm"},
	Short:   "Delete a snippet",
	Long: `Delete the snippet with the given key. Keys are matched exactly
(case-sensitive). The store is only rewritten when something was removed.

Example:
  dv delete gitlog`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	RunE:              runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	s := openStore()
	c, err := loadCollection(s)
	if err != nil {
		return err
	}

	key := args[0]
	remaining, removed := snippet.Delete(c, key)
	if !removed {
		if isHuman() {
			printer(cmd).Error("Snippet not found: %s", key)
		} else {
			outputJSON(cmd.OutOrStdout(), StatusResponse{Status: StatusNotFound, Key: key})
		}
		return nil
	}

	if err := saveCollection(s, remaining); err != nil {
		return err
	}

	if isHuman() {
		printer(cmd).Removed(key)
	} else {
		outputJSON(cmd.OutOrStdout(), StatusResponse{Status: StatusDeleted, Key: key})
	}
	return nil
}
