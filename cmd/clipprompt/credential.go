package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clipprompt/clipprompt/internal/runner"
	"github.com/clipprompt/clipprompt/internal/store"
)

// Flag values for the credential subcommands.
var (
	credentialURL string
	testAll       bool
)

// credentialTestConcurrency bounds parallel probes in "credential test --all"
// so a slow provider cannot starve the rest.
const credentialTestConcurrency = 4

// credentialCmd is the parent command for API key management.
var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage provider API keys",
	Long: `Credentials bind a provider name to an API key and an optional endpoint
override. They are stored in credentials.json under the data directory with
0600 permissions; keys are always masked in output.`,
}

var credentialSetCmd = &cobra.Command{
	Use:   "set <provider> <api-key>",
	Short: "Store or replace the API key for a provider",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cred := store.Credential{Name: args[0], APIKey: args[1], APIURL: credentialURL}
		if err := newCredentialStore().Upsert(cred); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "credential for %s saved\n", cred.Name)
		return nil
	},
}

var credentialListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored credentials with masked keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		creds, err := newCredentialStore().List()
		if err != nil {
			return err
		}
		if len(creds) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no credentials stored")
			return nil
		}

		bold := color.New(color.Bold).SprintFunc()
		for _, c := range creds {
			line := fmt.Sprintf("%s  %s", bold(c.Name), maskKey(c.APIKey))
			if c.APIURL != "" {
				line += "  " + c.APIURL
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var credentialRmCmd = &cobra.Command{
	Use:   "rm <provider>",
	Short: "Delete the stored API key for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newCredentialStore().Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "credential for %s deleted\n", args[0])
		return nil
	},
}

var credentialTestCmd = &cobra.Command{
	Use:   "test [provider]",
	Short: "Check that a stored API key works",
	Long: `Test sends a minimal request through the provider's normal dispatch path.
With --all, every stored credential is probed concurrently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner()
		if err != nil {
			return err
		}

		if testAll {
			if len(args) > 0 {
				return fmt.Errorf("cannot combine --all with a provider argument")
			}
			return testAllCredentials(cmd, r)
		}

		if len(args) == 0 {
			return fmt.Errorf("provider name required (or use --all)")
		}

		result := r.TestCredential(cmd.Context(), args[0])
		if !result.OK {
			return exitError(ExitExecutionFailed, "%s: %s", args[0], result.Message)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), args[0])
		return nil
	},
}

// testAllCredentials probes every stored credential and prints one line per
// provider, in storage order.
func testAllCredentials(cmd *cobra.Command, r *runner.Runner) error {
	creds, err := r.Credentials.List()
	if err != nil {
		return err
	}
	if len(creds) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no credentials stored")
		return nil
	}

	results := make([]runner.Result, len(creds))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(credentialTestConcurrency)
	for i, c := range creds {
		g.Go(func() error {
			results[i] = r.TestCredential(ctx, c.Name)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, c := range creds {
		if results[i].OK {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("ok"), c.Name)
			continue
		}
		failed++
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", color.RedString("fail"), c.Name, results[i].Message)
	}
	if failed > 0 {
		return exitError(ExitExecutionFailed, "%d of %d credentials failed", failed, len(creds))
	}
	return nil
}

// maskKey hides all but the edges of an API key.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	credentialSetCmd.Flags().StringVar(&credentialURL, "url", "", "endpoint override for this provider")
	credentialTestCmd.Flags().BoolVar(&testAll, "all", false, "test every stored credential")

	credentialCmd.AddCommand(credentialSetCmd)
	credentialCmd.AddCommand(credentialListCmd)
	credentialCmd.AddCommand(credentialRmCmd)
	credentialCmd.AddCommand(credentialTestCmd)
}
