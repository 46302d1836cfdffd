package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cliplog "github.com/clipprompt/clipprompt/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
	dataDir string
)

// rootCmd is the base command for clipprompt.
var rootCmd = &cobra.Command{
	Use:   "clipprompt",
	Short: "Apply stored prompt presets to text via your configured LLM providers",
	Long: `Clipprompt keeps a library of named prompt presets — an instruction
template bound to an LLM provider and model — and applies them to input
text from an argument, stdin, or the clipboard. Presets, credentials, and
settings are plain JSON files under your config directory, so other tools
can read and edit them directly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cliplog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding presets, credentials, and settings (default ~/.config/clipprompt)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(credentialCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)
}
