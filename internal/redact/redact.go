// Copyright 2026 The Clipprompt Authors
// SPDX-License-Identifier: MIT

// Package redact strips API keys from strings before they appear in output,
// logs, or error messages.
package redact

import (
	"os"
	"strings"
	"sync"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. Add new entries here as providers are added.
var sensitiveEnvVars = []string{
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"GEMINI_API_KEY",
	"GOOGLE_API_KEY",
	"COHERE_API_KEY",
}

var (
	mu            sync.Mutex
	cachedSecrets []string
	envLoaded     bool
)

func loadEnvSecrets() {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val != "" && len(val) >= 4 {
			cachedSecrets = append(cachedSecrets, val)
		}
	}
	envLoaded = true
}

// AddSecrets registers additional secret values, typically API keys loaded
// from the credential store. Values shorter than 4 characters are ignored to
// avoid redacting common substrings.
func AddSecrets(secrets ...string) {
	mu.Lock()
	defer mu.Unlock()
	for _, s := range secrets {
		if len(s) >= 4 {
			cachedSecrets = append(cachedSecrets, s)
		}
	}
}

// ResetForTest clears all registered secrets so tests can verify redaction
// behavior after setting env vars with t.Setenv.
func ResetForTest() {
	mu.Lock()
	defer mu.Unlock()
	cachedSecrets = nil
	envLoaded = false
}

// String replaces any occurrence of a known secret value with "[REDACTED]".
// Returns the original string if no secrets are found. Environment secrets
// are loaded on first call.
func String(s string) string {
	mu.Lock()
	defer mu.Unlock()
	if !envLoaded {
		loadEnvSecrets()
	}
	for _, secret := range cachedSecrets {
		s = strings.ReplaceAll(s, secret, "[REDACTED]")
	}
	return s
}
