package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the clipprompt version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the clipprompt version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "clipprompt %s\n", Version)
	},
}
