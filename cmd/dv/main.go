// Package main provides the dv CLI entry point.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/matsen/devvault/internal/clipboard"
	"github.com/matsen/devvault/internal/config"
	"github.com/matsen/devvault/internal/logging"
	"github.com/matsen/devvault/internal/render"
	"github.com/matsen/devvault/internal/snippet"
	"github.com/matsen/devvault/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput and jsonOutput override the configured output mode
	humanOutput bool
	jsonOutput  bool
	logLevel    string
	noBanner    bool
)

// Resolved once per invocation in PersistentPreRunE.
var (
	globalCfg *config.GlobalConfig
	storePath string
	// copier is the clipboard used by get; nil means the system clipboard.
	copier clipboard.Copier
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(err))
	}
}

var rootCmd = &cobra.Command{
	Use:   "dv",
	Short: "A developer's CLI code snippet manager",
	Long: `dv stores short command snippets with a description and tags, and copies
them back to the clipboard on demand.

Snippets live in a single JSON file at ~/.devvault/snippets.json.

Examples:
  dv add -k gitlog -d "pretty git log" -c "git log --oneline --graph" -t git,log
  dv list
  dv search git
  dv get gitlog
  dv delete gitlog`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "Do not print the banner")
	rootCmd.MarkFlagsMutuallyExclusive("human", "json")
	rootCmd.Version = Version
}

// quietCommands print machine-consumed output and never show the banner.
var quietCommands = map[string]bool{
	"completion":                    true,
	"path":                          true,
	"export":                        true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

// setup loads configuration, installs the logger and resolves the store path.
// Any failure here happens before a command touches the store.
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return exitErrorf(ExitConfigError, "loading config: %v", err)
	}
	globalCfg = cfg

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logging.Setup(level); err != nil {
		return exitErrorf(ExitConfigError, "%v", err)
	}

	path, err := storage.ResolvePath()
	if err != nil {
		return exitErrorf(ExitConfigError, "%v", err)
	}
	storePath = path
	slog.Debug("resolved store", "path", storePath, "config", config.GlobalConfigPath())

	if isHuman() && !noBanner && !cfg.NoBanner && !quietCommands[cmd.Name()] {
		printer(cmd).Banner()
	}
	return nil
}

// isHuman reports whether output should be human-readable.
// Flags win over the configured default.
func isHuman() bool {
	switch {
	case humanOutput:
		return true
	case jsonOutput:
		return false
	case globalCfg != nil:
		return globalCfg.Output != config.OutputJSON
	default:
		return true
	}
}

// printer returns a human-output printer on the command's stdout.
func printer(cmd *cobra.Command) *render.Printer {
	mode := config.ColorAuto
	if globalCfg != nil {
		mode = globalCfg.Color
	}
	if cmd.OutOrStdout() == os.Stdout {
		return render.Stdout(mode)
	}
	return render.NewPrinter(cmd.OutOrStdout(), mode == config.ColorAlways)
}

// openStore returns the store at the resolved path.
func openStore() *storage.Store {
	return storage.New(storePath)
}

// loadCollection loads the whole store, mapping failures to exit codes.
func loadCollection(s *storage.Store) (snippet.Collection, error) {
	c, err := s.Load()
	if err != nil {
		if errors.Is(err, storage.ErrCorrupt) {
			return nil, exitErrorf(ExitDataError, "%v\n\nFix or move the file; dv will not overwrite it.", err)
		}
		return nil, exitErrorf(ExitError, "loading snippets: %v", err)
	}
	return c, nil
}

// saveCollection persists the whole collection.
func saveCollection(s *storage.Store, c snippet.Collection) error {
	if err := s.Save(c); err != nil {
		return exitErrorf(ExitError, "saving snippets: %v", err)
	}
	return nil
}

// clipboardCopier returns the clipboard used by get.
func clipboardCopier() clipboard.Copier {
	if copier != nil {
		return copier
	}
	sys := clipboard.System{}
	if globalCfg != nil {
		sys.Command = globalCfg.Clipboard
	}
	slog.Debug("clipboard", "tool", sys.Tool())
	return sys
}

// reportError prints err in the active output format and returns the exit code.
func reportError(err error) int {
	var ee *exitError
	if !errors.As(err, &ee) {
		// Cobra errors (unknown flags, missing required flags)
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return ExitError
	}
	if isHuman() {
		fmt.Fprintf(os.Stderr, "error: %s\n", ee.msg)
	} else {
		outputJSON(os.Stdout, ErrorResponse{Error: ee.msg})
	}
	return ee.code
}
