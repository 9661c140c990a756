package main

import (
	"fmt"

	"github.com/matsen/devvault/internal/snippet"
	"github.com/spf13/cobra"
)

var getNoCopy bool

func init() {
	getCmd.Flags().BoolVar(&getNoCopy, "no-copy", false, "Print the command instead of copying it to the clipboard")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a snippet and copy it to the clipboard",
	Long: `Get a snippet by its exact key and copy its command to the clipboard.

The clipboard tool is detected (pbcopy, wl-copy, xclip, xsel, clip) unless
the clipboard config key or DV_CLIPBOARD names one.

Examples:
  dv get gitlog
  dv get gitlog --no-copy | sh`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeKeys,
	RunE:              runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := loadCollection(openStore())
	if err != nil {
		return err
	}

	key := args[0]
	s, ok := snippet.Get(c, key)
	if !ok {
		if isHuman() {
			printer(cmd).Error("No snippet found with key: '%s'", key)
		} else {
			outputJSON(cmd.OutOrStdout(), StatusResponse{Status: StatusNotFound, Key: key})
		}
		return nil
	}

	if getNoCopy {
		if isHuman() {
			fmt.Fprintln(cmd.OutOrStdout(), s.Command)
		} else {
			outputJSON(cmd.OutOrStdout(), SnippetResponse{Status: StatusFound, Snippet: &s})
		}
		return nil
	}

	if err := clipboardCopier().Copy(s.Command); err != nil {
		return exitErrorf(ExitError, "copying to clipboard: %v\n\nUse --no-copy to print the command instead.", err)
	}

	if isHuman() {
		p := printer(cmd)
		p.Line("Found: '%s'", s.Description)
		p.Success("Copied command to clipboard!")
	} else {
		outputJSON(cmd.OutOrStdout(), SnippetResponse{Status: StatusFound, Snippet: &s, Copied: true})
	}
	return nil
}
