package main

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Flag values for the run command.
var (
	runFromClipboard bool
	runCopyResult    bool
)

// runCmd applies a stored preset to input text.
var runCmd = &cobra.Command{
	Use:   "run <preset> [text]",
	Short: "Apply a preset to input text",
	Long: `Run looks up a preset by name, prepends its prompt template to the input
text, and sends the combined prompt to the preset's provider.

Input is taken from the text argument if present, from the clipboard with
--clipboard, or from stdin otherwise. The provider's answer is printed to
stdout, or copied back to the clipboard with --copy.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := resolveInput(args)
		if err != nil {
			return err
		}

		r, err := newRunner()
		if err != nil {
			return err
		}

		result := r.ExecutePreset(cmd.Context(), args[0], input)
		if !result.OK {
			return exitError(ExitExecutionFailed, "%s", result.Message)
		}

		if runCopyResult {
			if err := clipboard.WriteAll(result.Text); err != nil {
				return fmt.Errorf("copy result to clipboard: %w", err)
			}
			if !quiet {
				fmt.Fprintln(cmd.ErrOrStderr(), "result copied to clipboard")
			}
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}

// resolveInput picks the input text source: argument, clipboard, or stdin.
func resolveInput(args []string) (string, error) {
	if len(args) > 1 {
		if runFromClipboard {
			return "", fmt.Errorf("cannot combine --clipboard with a text argument")
		}
		return args[1], nil
	}

	if runFromClipboard {
		text, err := clipboard.ReadAll()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		return text, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func init() {
	runCmd.Flags().BoolVar(&runFromClipboard, "clipboard", false, "take input text from the clipboard")
	runCmd.Flags().BoolVar(&runCopyResult, "copy", false, "copy the result back to the clipboard instead of printing it")
}
