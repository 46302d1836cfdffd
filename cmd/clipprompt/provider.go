package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// providersCmd lists the providers the dispatcher knows how to talk to,
// including any custom ones from providers.toml.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List known providers and their models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := newRegistry(resolveDataDir())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		for _, name := range reg.Providers() {
			d, _ := reg.Lookup(name)
			fmt.Fprintln(cmd.OutOrStdout(), bold(d.Name))
			if len(d.Models) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  (any model; default %q)\n", d.DefaultModel)
				continue
			}
			for _, m := range d.Models {
				marker := " "
				if m == d.DefaultModel {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", marker, m)
			}
			if d.BaseURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.TrimSpace(d.BaseURL))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
