package main

import (
	"github.com/clipprompt/clipprompt/internal/config"
	"github.com/clipprompt/clipprompt/internal/registry"
	"github.com/clipprompt/clipprompt/internal/runner"
	"github.com/clipprompt/clipprompt/internal/store"
)

// resolveDataDir honors the --data-dir flag, falling back to the default
// config directory.
func resolveDataDir() string {
	if dataDir != "" {
		return dataDir
	}
	return config.Dir()
}

// newRegistry builds the provider registry, including any user-defined
// providers from providers.toml.
func newRegistry(dir string) (*registry.Registry, error) {
	reg := registry.New()
	if err := reg.LoadCustom(config.ProvidersPath(dir)); err != nil {
		return nil, err
	}
	return reg, nil
}

// newRunner wires the stores and registry into an execution facade.
func newRunner() (*runner.Runner, error) {
	dir := resolveDataDir()
	reg, err := newRegistry(dir)
	if err != nil {
		return nil, err
	}
	presets := store.NewPresetStore(config.PresetsPath(dir))
	creds := store.NewCredentialStore(config.CredentialsPath(dir))
	return runner.New(presets, creds, reg), nil
}

func newPresetStore() *store.PresetStore {
	return store.NewPresetStore(config.PresetsPath(resolveDataDir()))
}

func newCredentialStore() *store.CredentialStore {
	return store.NewCredentialStore(config.CredentialsPath(resolveDataDir()))
}

func newSettingsStore() *config.SettingsStore {
	return config.NewSettingsStore(config.SettingsPath(resolveDataDir()))
}
