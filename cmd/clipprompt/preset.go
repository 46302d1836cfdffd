package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clipprompt/clipprompt/internal/store"
)

// Flag values for the preset subcommands.
var (
	presetFilter   string
	presetPrompt   string
	presetProvider string
	presetModel    string
	presetShortcut string
	exportOutput   string
	importReplace  bool
)

// presetCmd is the parent command for preset management.
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage prompt presets",
	Long: `Presets are named prompt templates bound to a provider and model. They are
stored in presets.json under the data directory; list positions shown by
"preset list" are the indexes used by "preset rm" and "preset edit".`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		presets, err := newPresetStore().Filter(presetFilter)
		if err != nil {
			return err
		}
		if len(presets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no presets stored")
			return nil
		}

		reg, err := newRegistry(resolveDataDir())
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for i, p := range presets {
			where := "(no provider configured)"
			if target, err := reg.ResolvePreset(p.Provider, p.APIType, p.Model); err == nil {
				where = fmt.Sprintf("%s/%s", target.Provider, target.Model)
			}
			line := fmt.Sprintf("%3d  %s  %s", i, bold(p.Name), where)
			if p.Shortcut != "" {
				line += "  [" + p.Shortcut + "]"
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
			fmt.Fprintf(cmd.OutOrStdout(), "     %s\n", faint(previewPrompt(p.Prompt)))
		}
		return nil
	},
}

var presetAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := store.Preset{
			Name:     args[0],
			Prompt:   presetPrompt,
			Provider: presetProvider,
			Model:    presetModel,
			Shortcut: presetShortcut,
		}
		if err := newPresetStore().Save(p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "preset %q added\n", p.Name)
		return nil
	},
}

var presetShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a preset in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPresetStore().Get(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:     %s\n", p.Name)
		if p.Provider != "" {
			fmt.Fprintf(out, "provider: %s\n", p.Provider)
		}
		if p.APIType != "" {
			fmt.Fprintf(out, "api_type: %s\n", p.APIType)
		}
		if p.Model != "" {
			fmt.Fprintf(out, "model:    %s\n", p.Model)
		}
		if p.Shortcut != "" {
			fmt.Fprintf(out, "shortcut: %s\n", p.Shortcut)
		}
		fmt.Fprintf(out, "prompt:   %s\n", p.Prompt)
		return nil
	},
}

var presetRmCmd = &cobra.Command{
	Use:   "rm <index>",
	Short: "Delete the preset at a list index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}
		if err := newPresetStore().Delete(index); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "preset %d deleted\n", index)
		return nil
	},
}

var presetEditCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit fields of the preset at a list index",
	Long: `Edit replaces only the fields whose flags are given; everything else is
kept. Passing --provider clears a legacy api_type on the record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("index must be a number, got %q", args[0])
		}

		presets := newPresetStore()
		all, err := presets.List()
		if err != nil {
			return err
		}
		if index < 0 || index >= len(all) {
			return fmt.Errorf("preset index %d out of range (%d presets)", index, len(all))
		}

		p := all[index]
		if cmd.Flags().Changed("name") {
			p.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("prompt") {
			p.Prompt = presetPrompt
		}
		if cmd.Flags().Changed("provider") {
			p.Provider = presetProvider
			p.APIType = ""
		}
		if cmd.Flags().Changed("model") {
			p.Model = presetModel
		}
		if cmd.Flags().Changed("shortcut") {
			p.Shortcut = presetShortcut
		}

		if err := presets.Update(index, p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "preset %d updated\n", index)
		return nil
	},
}

var presetExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all presets as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		presets, err := newPresetStore().List()
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(presets)
		if err != nil {
			return fmt.Errorf("encode presets: %w", err)
		}
		if exportOutput == "" {
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d presets to %s\n", len(presets), exportOutput)
		return nil
	},
}

var presetImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import presets from a YAML file",
	Long: `Import appends the presets from the file, rejecting names that already
exist. With --replace the stored list is overwritten instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var incoming []store.Preset
		if err := yaml.Unmarshal(data, &incoming); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		for _, p := range incoming {
			if p.Name == "" {
				return fmt.Errorf("%s: preset entry has no name", args[0])
			}
		}

		presets := newPresetStore()
		if importReplace {
			if err := presets.Replace(incoming); err != nil {
				return err
			}
		} else {
			for _, p := range incoming {
				if err := presets.Save(p); err != nil {
					return err
				}
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d presets\n", len(incoming))
		return nil
	},
}

// previewPrompt flattens a prompt template onto one shortened line.
func previewPrompt(prompt string) string {
	flat := strings.Join(strings.Fields(prompt), " ")
	if len(flat) > 60 {
		return flat[:57] + "..."
	}
	return flat
}

func init() {
	presetListCmd.Flags().StringVar(&presetFilter, "filter", "", "only show presets whose name contains this text")

	presetAddCmd.Flags().StringVar(&presetPrompt, "prompt", "", "prompt template prepended to the input text")
	presetAddCmd.Flags().StringVar(&presetProvider, "provider", "", "provider name (OpenAI, Anthropic, Google, Cohere, or a custom provider)")
	presetAddCmd.Flags().StringVar(&presetModel, "model", "", "model identifier (defaults to the provider's default model)")
	presetAddCmd.Flags().StringVar(&presetShortcut, "shortcut", "", "keyboard shortcut hint shown by desktop frontends")
	_ = presetAddCmd.MarkFlagRequired("prompt")

	presetEditCmd.Flags().String("name", "", "new preset name")
	presetEditCmd.Flags().StringVar(&presetPrompt, "prompt", "", "new prompt template")
	presetEditCmd.Flags().StringVar(&presetProvider, "provider", "", "new provider name")
	presetEditCmd.Flags().StringVar(&presetModel, "model", "", "new model identifier")
	presetEditCmd.Flags().StringVar(&presetShortcut, "shortcut", "", "new shortcut hint")

	presetExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write YAML to this file instead of stdout")
	presetImportCmd.Flags().BoolVar(&importReplace, "replace", false, "replace the stored presets instead of appending")

	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetAddCmd)
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetRmCmd)
	presetCmd.AddCommand(presetEditCmd)
	presetCmd.AddCommand(presetExportCmd)
	presetCmd.AddCommand(presetImportCmd)
}
