// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

// Package config handles clipprompt's settings file and the location of all
// persisted data.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/clipprompt/clipprompt/internal/testable"
)

// Theme values accepted by the settings file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings represents the contents of settings.json.
type Settings struct {
	Theme        string `json:"theme"`
	ShowShortcut string `json:"show_shortcut,omitempty"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeDark}
}

// Validate checks field values before a save.
func (s Settings) Validate() error {
	if s.Theme != ThemeDark && s.Theme != ThemeLight {
		return fmt.Errorf("config: invalid theme %q (want %q or %q)", s.Theme, ThemeDark, ThemeLight)
	}
	return nil
}

// Dir returns the directory for clipprompt's data files. It uses
// $XDG_CONFIG_HOME/clipprompt if set, otherwise ~/.config/clipprompt.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clipprompt")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "clipprompt")
}

// SettingsPath returns the path of the settings file under dir.
func SettingsPath(dir string) string { return filepath.Join(dir, "settings.json") }

// PresetsPath returns the path of the presets file under dir.
func PresetsPath(dir string) string { return filepath.Join(dir, "presets.json") }

// CredentialsPath returns the path of the credentials file under dir.
func CredentialsPath(dir string) string { return filepath.Join(dir, "credentials.json") }

// ProvidersPath returns the path of the custom providers file under dir.
func ProvidersPath(dir string) string { return filepath.Join(dir, "providers.toml") }

// SettingsStore reads and writes settings.json.
type SettingsStore struct {
	path string

	// FS is the file system implementation used by this store.
	// Override in tests with a testable.MockFileSystem.
	FS testable.FileSystem
}

// NewSettingsStore creates a store backed by the given file path.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path, FS: testable.DefaultFS}
}

// Load reads the settings file. A missing file yields defaults and nil error.
func (s *SettingsStore) Load() (Settings, error) {
	data, err := s.FS.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings file %s: %w", s.path, err)
	}
	if settings.Theme == "" {
		settings.Theme = ThemeDark
	}
	return settings, nil
}

// Save validates and writes the settings file.
func (s *SettingsStore) Save(settings Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.FS.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := s.FS.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	return nil
}
