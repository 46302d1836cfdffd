// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

// Package store persists clipprompt's presets and provider credentials as
// JSON files. Every operation re-reads the file, so concurrent external edits
// are last-write-wins with no locking or caching.
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

// ErrNotFound is returned when a lookup misses.
var ErrNotFound = errors.New("store: not found")

// Credential binds a provider name to an API key and an optional endpoint
// override.
type Credential struct {
	Name   string `json:"name"`
	APIKey string `json:"api_key"`
	APIURL string `json:"api_url,omitempty"`
}

// legacyCredentials is the earliest desktop file format: one flat object
// holding a single OpenAI key.
type legacyCredentials struct {
	APIKey string `json:"api_key"`
	APIURL string `json:"api_url"`
}

// CredentialStore reads and writes the credentials file.
type CredentialStore struct {
	path string

	// FS is the file system implementation used by this store.
	// Override in tests with a testable.MockFileSystem.
	FS testable.FileSystem
}

// NewCredentialStore creates a store backed by the given file path.
func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path, FS: testable.DefaultFS}
}

// load reads the credentials file. A missing file yields an empty list.
// The legacy flat format is migrated to a single OpenAI record, matching the
// only provider that format ever served.
func (s *CredentialStore) load() ([]Credential, error) {
	data, err := s.FS.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	var creds []Credential
	if err := json.Unmarshal(data, &creds); err == nil {
		return creds, nil
	}

	var legacy legacyCredentials
	if err := json.Unmarshal(data, &legacy); err != nil {
		return nil, fmt.Errorf("parse credentials file %s: %w", s.path, err)
	}
	if legacy.APIKey == "" {
		return nil, nil
	}
	return []Credential{{Name: "OpenAI", APIKey: legacy.APIKey, APIURL: legacy.APIURL}}, nil
}

func (s *CredentialStore) save(creds []Credential) error {
	if err := s.FS.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}
	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	if err := s.FS.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

// Get returns the credential for a provider. Matching on the provider name
// is case-insensitive. Returns ErrNotFound when no key is stored.
func (s *CredentialStore) Get(provider string) (Credential, error) {
	creds, err := s.load()
	if err != nil {
		return Credential{}, err
	}
	for _, c := range creds {
		if strings.EqualFold(c.Name, provider) {
			return c, nil
		}
	}
	return Credential{}, fmt.Errorf("credential for %q: %w", provider, ErrNotFound)
}

// Upsert creates or overwrites the credential for a provider. The operation
// is idempotent; the existing record's casing of the name is replaced.
func (s *CredentialStore) Upsert(cred Credential) error {
	creds, err := s.load()
	if err != nil {
		return err
	}
	for i, c := range creds {
		if strings.EqualFold(c.Name, cred.Name) {
			creds[i] = cred
			return s.save(creds)
		}
	}
	return s.save(append(creds, cred))
}

// Delete removes the credential for a provider. Deleting a provider with no
// stored credential returns ErrNotFound.
func (s *CredentialStore) Delete(provider string) error {
	creds, err := s.load()
	if err != nil {
		return err
	}
	for i, c := range creds {
		if strings.EqualFold(c.Name, provider) {
			return s.save(append(creds[:i], creds[i+1:]...))
		}
	}
	return fmt.Errorf("credential for %q: %w", provider, ErrNotFound)
}

// List returns all stored credentials for display purposes. Callers must
// mask the keys before showing them.
func (s *CredentialStore) List() ([]Credential, error) {
	return s.load()
}
