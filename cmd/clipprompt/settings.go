package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// settingsCmd is the parent command for the settings file.
var settingsCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change clipprompt settings",
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the data directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), resolveDataDir())
	},
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the UI theme",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newSettingsStore()
		settings, err := st.Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), settings.Theme)
			return nil
		}

		settings.Theme = args[0]
		if err := st.Save(settings); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme set to %s\n", settings.Theme)
		return nil
	},
}

var settingsShortcutCmd = &cobra.Command{
	Use:   "shortcut [combo]",
	Short: "Show or set the global show/hide shortcut hint",
	Long: `The shortcut is a hint stored for desktop frontends, for example
"Ctrl+Shift+Space". Clipprompt itself does not register it. Pass an empty
string to clear it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := newSettingsStore()
		settings, err := st.Load()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			if settings.ShowShortcut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "no shortcut set")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), settings.ShowShortcut)
			return nil
		}

		settings.ShowShortcut = args[0]
		if err := st.Save(settings); err != nil {
			return err
		}
		if settings.ShowShortcut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "shortcut cleared")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "shortcut set to %s\n", settings.ShowShortcut)
		}
		return nil
	},
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		settings, err := newSettingsStore().Load()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "theme:    %s\n", settings.Theme)
		shortcut := settings.ShowShortcut
		if shortcut == "" {
			shortcut = "(none)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "shortcut: %s\n", shortcut)
		fmt.Fprintf(cmd.OutOrStdout(), "data dir: %s\n", resolveDataDir())
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsShortcutCmd)
}
