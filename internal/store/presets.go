// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/clipprompt/clipprompt/internal/testable"
)

// ErrDuplicate is returned when saving a preset whose name already exists.
var ErrDuplicate = errors.New("store: preset name already exists")

// Preset is a named instruction template bound to a provider/model choice.
// APIType is the legacy field old preset files carry instead of Provider;
// both are kept so old files stay loadable.
type Preset struct {
	Name     string `json:"name" yaml:"name"`
	Prompt   string `json:"prompt" yaml:"prompt"`
	APIType  string `json:"api_type,omitempty" yaml:"api_type,omitempty"`
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty"`
}

// PresetStore reads and writes the presets file.
type PresetStore struct {
	path string

	// FS is the file system implementation used by this store.
	// Override in tests with a testable.MockFileSystem.
	FS testable.FileSystem
}

// NewPresetStore creates a store backed by the given file path.
func NewPresetStore(path string) *PresetStore {
	return &PresetStore{path: path, FS: testable.DefaultFS}
}

func (s *PresetStore) load() ([]Preset, error) {
	data, err := s.FS.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read presets file: %w", err)
	}

	var presets []Preset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, fmt.Errorf("parse presets file %s: %w", s.path, err)
	}
	return presets, nil
}

func (s *PresetStore) save(presets []Preset) error {
	if err := s.FS.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create presets directory: %w", err)
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	if err := s.FS.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write presets file: %w", err)
	}
	return nil
}

// Save appends a new preset. A name collision returns ErrDuplicate and
// leaves the file untouched.
func (s *PresetStore) Save(p Preset) error {
	presets, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range presets {
		if existing.Name == p.Name {
			return fmt.Errorf("preset %q: %w", p.Name, ErrDuplicate)
		}
	}
	return s.save(append(presets, p))
}

// Get returns the preset with an exactly matching name.
func (s *PresetStore) Get(name string) (Preset, error) {
	presets, err := s.load()
	if err != nil {
		return Preset{}, err
	}
	for _, p := range presets {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("preset %q: %w", name, ErrNotFound)
}

// Update replaces the preset at the given index. Renaming onto another
// preset's name returns ErrDuplicate.
func (s *PresetStore) Update(index int, p Preset) error {
	presets, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(presets) {
		return fmt.Errorf("preset index %d out of range (%d presets)", index, len(presets))
	}
	for i, existing := range presets {
		if i != index && existing.Name == p.Name {
			return fmt.Errorf("preset %q: %w", p.Name, ErrDuplicate)
		}
	}
	presets[index] = p
	return s.save(presets)
}

// Delete removes the preset at the given index.
func (s *PresetStore) Delete(index int) error {
	presets, err := s.load()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(presets) {
		return fmt.Errorf("preset index %d out of range (%d presets)", index, len(presets))
	}
	return s.save(append(presets[:index], presets[index+1:]...))
}

// List returns all presets in file order.
func (s *PresetStore) List() ([]Preset, error) {
	return s.load()
}

// Filter returns presets whose name contains the given substring,
// case-insensitively. An empty filter returns everything.
func (s *PresetStore) Filter(substr string) ([]Preset, error) {
	presets, err := s.load()
	if err != nil {
		return nil, err
	}
	if substr == "" {
		return presets, nil
	}
	needle := strings.ToLower(substr)
	var out []Preset
	for _, p := range presets {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Replace overwrites the whole preset list. Used by import.
func (s *PresetStore) Replace(presets []Preset) error {
	seen := make(map[string]struct{}, len(presets))
	for _, p := range presets {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("preset %q: %w", p.Name, ErrDuplicate)
		}
		seen[p.Name] = struct{}{}
	}
	return s.save(presets)
}
