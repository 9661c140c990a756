package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the store file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := openStore()
		if isHuman() {
			fmt.Fprintln(cmd.OutOrStdout(), s.Path())
			return nil
		}
		status := "missing"
		if s.Exists() {
			status = "exists"
		}
		return outputJSON(cmd.OutOrStdout(), StatusResponse{Status: status, Path: s.Path()})
	},
}
