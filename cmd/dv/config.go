package main

import (
	"errors"
	"fmt"

	"github.com/matsen/devvault/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in the global config file (~/.config/dv/config.yml).

Usage:
  dv config                    # Show all config
  dv config output             # Get specific value
  dv config output json        # Set value

Keys:
  output     Default output mode (human, json)
  color      Color in human output (auto, always, never)
  clipboard  Clipboard command override (e.g. "xclip -selection clipboard")
  log_level  Log level (debug, info, warn, error)
  no_banner  Suppress the banner in human output (true, false)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := globalCfg
	if cfg == nil {
		var err error
		if cfg, err = config.LoadGlobalConfig(); err != nil {
			return exitErrorf(ExitConfigError, "loading config: %v", err)
		}
	}

	// No args: show all config
	if len(args) == 0 {
		values := make(map[string]string, len(config.Keys()))
		pairs := make([][2]string, 0, len(config.Keys()))
		for _, key := range config.Keys() {
			v, _ := cfg.Get(key)
			values[key] = v
			pairs = append(pairs, [2]string{key, v})
		}
		if isHuman() {
			printer(cmd).KeyValue(pairs)
		} else {
			outputJSON(cmd.OutOrStdout(), values)
		}
		return nil
	}

	key := args[0]

	// One arg: get specific value
	if len(args) == 1 {
		v, err := cfg.Get(key)
		if err != nil {
			return exitErrorf(ExitError, "%v", err)
		}
		if isHuman() {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		} else {
			outputJSON(cmd.OutOrStdout(), map[string]string{key: v})
		}
		return nil
	}

	// Two args: set value
	if err := config.UpdateGlobalConfig(key, args[1]); err != nil {
		if errors.Is(err, config.ErrUnknownKey) {
			return exitErrorf(ExitError, "%v", err)
		}
		return exitErrorf(ExitConfigError, "%v", err)
	}

	if isHuman() {
		printer(cmd).Success("Set %s = %s", key, args[1])
	} else {
		outputJSON(cmd.OutOrStdout(), StatusResponse{Status: "updated", Key: key, Path: config.GlobalConfigPath()})
	}
	return nil
}
