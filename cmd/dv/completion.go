package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate completion scripts for your shell.

Bash:
  $ source <(dv completion bash)

Zsh:
  $ dv completion zsh > "${fpath[1]}/_dv"

Fish:
  $ dv completion fish > ~/.config/fish/completions/dv.fish

PowerShell:
  PS> dv completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(w)
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(w)
		}
	},
}

// completeKeys offers stored snippet keys for commands taking a <key> argument.
func completeKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	c, err := openStore().Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	keys := make([]string, 0, len(c))
	for _, sn := range c {
		keys = append(keys, sn.Key+"\t"+sn.Description)
	}
	return keys, cobra.ShellCompDirectiveNoFileComp
}
