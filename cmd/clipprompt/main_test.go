package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execCLI runs the root command with the given args and returns its combined
// output. --no-color is always prepended so output is stable under test.
func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--no-color"}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execCLI(t, "--help")
	if err != nil {
		t.Fatalf("root --help failed: %v", err)
	}

	for _, want := range []string{"prompt presets", "run", "preset", "credential", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("root help missing %q, got:\n%s", want, out)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	for _, name := range []string{"verbose", "quiet", "no-color", "data-dir"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("global flag --%s not registered", name)
		}
	}

	v := rootCmd.PersistentFlags().ShorthandLookup("v")
	if v == nil || v.Name != "verbose" {
		t.Error("-v shorthand not registered for --verbose")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execCLI(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "clipprompt") {
		t.Errorf("version output missing binary name, got: %s", out)
	}
}

func TestPresetLifecycle(t *testing.T) {
	dir := t.TempDir()

	out, err := execCLI(t, "--data-dir", dir, "preset", "add", "Spanish",
		"--prompt", "Translate to Spanish: ", "--provider", "OpenAI", "--model", "gpt-4o")
	if err != nil {
		t.Fatalf("preset add failed: %v\n%s", err, out)
	}

	out, err = execCLI(t, "--data-dir", dir, "preset", "list")
	if err != nil {
		t.Fatalf("preset list failed: %v", err)
	}
	if !strings.Contains(out, "Spanish") || !strings.Contains(out, "OpenAI/gpt-4o") {
		t.Errorf("preset list missing entry, got:\n%s", out)
	}

	out, err = execCLI(t, "--data-dir", dir, "preset", "show", "Spanish")
	if err != nil {
		t.Fatalf("preset show failed: %v", err)
	}
	if !strings.Contains(out, "Translate to Spanish: ") {
		t.Errorf("preset show missing prompt, got:\n%s", out)
	}

	// A duplicate name must be rejected.
	if _, err := execCLI(t, "--data-dir", dir, "preset", "add", "Spanish", "--prompt", "x"); err == nil {
		t.Error("duplicate preset add should fail")
	}

	if out, err = execCLI(t, "--data-dir", dir, "preset", "rm", "0"); err != nil {
		t.Fatalf("preset rm failed: %v\n%s", err, out)
	}
	out, _ = execCLI(t, "--data-dir", dir, "preset", "list")
	if !strings.Contains(out, "no presets stored") {
		t.Errorf("expected empty list after rm, got:\n%s", out)
	}
}

func TestPresetEditKeepsUnsetFields(t *testing.T) {
	dir := t.TempDir()

	if _, err := execCLI(t, "--data-dir", dir, "preset", "add", "Fix",
		"--prompt", "Fix this: ", "--provider", "OpenAI"); err != nil {
		t.Fatalf("preset add failed: %v", err)
	}
	if _, err := execCLI(t, "--data-dir", dir, "preset", "edit", "0", "--model", "gpt-4o"); err != nil {
		t.Fatalf("preset edit failed: %v", err)
	}

	out, err := execCLI(t, "--data-dir", dir, "preset", "show", "Fix")
	if err != nil {
		t.Fatalf("preset show failed: %v", err)
	}
	if !strings.Contains(out, "Fix this: ") || !strings.Contains(out, "gpt-4o") {
		t.Errorf("edit dropped fields, got:\n%s", out)
	}
}

func TestPresetExportImport(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "presets.yaml")

	if _, err := execCLI(t, "--data-dir", dir, "preset", "add", "A", "--prompt", "pa"); err != nil {
		t.Fatalf("preset add failed: %v", err)
	}
	if _, err := execCLI(t, "--data-dir", dir, "preset", "export", "-o", file); err != nil {
		t.Fatalf("preset export failed: %v", err)
	}

	other := t.TempDir()
	if _, err := execCLI(t, "--data-dir", other, "preset", "import", file); err != nil {
		t.Fatalf("preset import failed: %v", err)
	}
	out, _ := execCLI(t, "--data-dir", other, "preset", "list")
	if !strings.Contains(out, "A") {
		t.Errorf("imported preset missing, got:\n%s", out)
	}
}

func TestCredentialLifecycle(t *testing.T) {
	dir := t.TempDir()

	if _, err := execCLI(t, "--data-dir", dir, "credential", "set", "OpenAI", "sk-verysecretkey123"); err != nil {
		t.Fatalf("credential set failed: %v", err)
	}

	out, err := execCLI(t, "--data-dir", dir, "credential", "list")
	if err != nil {
		t.Fatalf("credential list failed: %v", err)
	}
	if !strings.Contains(out, "OpenAI") {
		t.Errorf("credential list missing provider, got:\n%s", out)
	}
	if strings.Contains(out, "sk-verysecretkey123") {
		t.Errorf("credential list leaked the full key:\n%s", out)
	}

	if _, err := execCLI(t, "--data-dir", dir, "credential", "rm", "OpenAI"); err != nil {
		t.Fatalf("credential rm failed: %v", err)
	}
	out, _ = execCLI(t, "--data-dir", dir, "credential", "list")
	if !strings.Contains(out, "no credentials stored") {
		t.Errorf("expected empty list after rm, got:\n%s", out)
	}
}

func TestRunCommandEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Hola"}}]}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, err := execCLI(t, "--data-dir", dir, "preset", "add", "Spanish",
		"--prompt", "Translate to Spanish: ", "--provider", "OpenAI"); err != nil {
		t.Fatalf("preset add failed: %v", err)
	}
	if _, err := execCLI(t, "--data-dir", dir, "credential", "set", "OpenAI", "sk-test", "--url", srv.URL); err != nil {
		t.Fatalf("credential set failed: %v", err)
	}

	out, err := execCLI(t, "--data-dir", dir, "run", "Spanish", "Hello")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Hola") {
		t.Errorf("run output missing answer, got:\n%s", out)
	}
}

func TestRunCommandFailureExitCode(t *testing.T) {
	dir := t.TempDir()
	if _, err := execCLI(t, "--data-dir", dir, "preset", "add", "Spanish",
		"--prompt", "Translate: ", "--provider", "OpenAI"); err != nil {
		t.Fatalf("preset add failed: %v", err)
	}

	// No credential stored: run must fail with the execution exit code.
	_, err := execCLI(t, "--data-dir", dir, "run", "Spanish", "Hello")
	var ece *exitCodeError
	if !errors.As(err, &ece) {
		t.Fatalf("expected exitCodeError, got %v", err)
	}
	if ece.ExitCode() != ExitExecutionFailed {
		t.Errorf("exit code = %d, want %d", ece.ExitCode(), ExitExecutionFailed)
	}
	if !strings.Contains(ece.Error(), "client could not be initialized") {
		t.Errorf("unexpected failure message: %s", ece.Error())
	}
}

func TestConfigThemeRoundTrip(t *testing.T) {
	dir := t.TempDir()

	out, err := execCLI(t, "--data-dir", dir, "config", "theme")
	if err != nil {
		t.Fatalf("config theme failed: %v", err)
	}
	if !strings.Contains(out, "dark") {
		t.Errorf("default theme should be dark, got: %s", out)
	}

	if _, err := execCLI(t, "--data-dir", dir, "config", "theme", "light"); err != nil {
		t.Fatalf("config theme light failed: %v", err)
	}
	out, _ = execCLI(t, "--data-dir", dir, "config", "theme")
	if !strings.Contains(out, "light") {
		t.Errorf("theme not persisted, got: %s", out)
	}

	if _, err := execCLI(t, "--data-dir", dir, "config", "theme", "neon"); err == nil {
		t.Error("invalid theme should be rejected")
	}
}

func TestProvidersCommand(t *testing.T) {
	dir := t.TempDir()
	toml := `[[provider]]
name = "LocalLlama"
base_url = "http://localhost:8080"
models = ["llama-3"]
`
	if err := os.WriteFile(filepath.Join(dir, "providers.toml"), []byte(toml), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execCLI(t, "--data-dir", dir, "providers")
	if err != nil {
		t.Fatalf("providers failed: %v", err)
	}
	for _, want := range []string{"OpenAI", "Anthropic", "Google", "Cohere", "LocalLlama", "llama-3"} {
		if !strings.Contains(out, want) {
			t.Errorf("providers output missing %q, got:\n%s", want, out)
		}
	}
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"", ""},
		{"short", "*****"},
		{"sk-1234567890ab", "sk-1*******90ab"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestPreviewPrompt(t *testing.T) {
	if got := previewPrompt("Fix\nthis   text"); got != "Fix this text" {
		t.Errorf("previewPrompt flattening wrong: %q", got)
	}
	long := strings.Repeat("a", 100)
	if got := previewPrompt(long); len(got) != 60 || !strings.HasSuffix(got, "...") {
		t.Errorf("previewPrompt truncation wrong: %q", got)
	}
}

func TestResolveInputRejectsClipboardWithArg(t *testing.T) {
	runFromClipboard = true
	defer func() { runFromClipboard = false }()

	if _, err := resolveInput([]string{"preset", "text"}); err == nil {
		t.Error("expected error combining --clipboard with a text argument")
	}
}
