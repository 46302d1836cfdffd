// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

package registry

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"

	"github.com/clipprompt/clipprompt/internal/llm"
)

// customFile is the on-disk shape of providers.toml.
type customFile struct {
	Providers []customProvider `toml:"provider"`
}

type customProvider struct {
	Name         string   `toml:"name"`
	BaseURL      string   `toml:"base_url"`
	Family       string   `toml:"family"`
	Models       []string `toml:"models"`
	DefaultModel string   `toml:"default_model"`
}

// LoadCustom reads user-defined providers from a providers.toml file and
// appends them to the registry. A missing file is not an error. Entries with
// an unknown family default to generic-http.
func (r *Registry) LoadCustom(path string) error {
	var file customFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("registry: parse %s: %w", path, err)
	}

	for _, p := range file.Providers {
		if p.Name == "" {
			return fmt.Errorf("registry: provider entry in %s has no name", path)
		}
		if _, exists := r.Lookup(p.Name); exists {
			return fmt.Errorf("registry: provider %q already defined", p.Name)
		}

		family := llm.Family(p.Family)
		switch family {
		case llm.FamilyOpenAI, llm.FamilyAnthropic, llm.FamilyGemini, llm.FamilyCohere, llm.FamilyGeneric:
		case "":
			family = llm.FamilyGeneric
		default:
			return fmt.Errorf("registry: provider %q has unknown family %q", p.Name, p.Family)
		}

		defaultModel := p.DefaultModel
		if defaultModel == "" && len(p.Models) > 0 {
			defaultModel = p.Models[0]
		}

		r.descriptors = append(r.descriptors, Descriptor{
			Name:         p.Name,
			Models:       p.Models,
			DefaultModel: defaultModel,
			Family:       family,
			BaseURL:      p.BaseURL,
		})
	}
	return nil
}
