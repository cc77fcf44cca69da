package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// chdir switches the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()

	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			t.Errorf("restore working dir %s: %v", oldwd, err)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.REPL.Prompt != "olox> " {
		t.Fatalf("prompt wrong. expected=%q, got=%q", "olox> ", cfg.REPL.Prompt)
	}
	if cfg.Color != "auto" {
		t.Fatalf("color wrong. expected=%q, got=%q", "auto", cfg.Color)
	}
	if cfg.REPL.HistoryFile != "" && !strings.HasSuffix(cfg.REPL.HistoryFile, ".olox_history") {
		t.Fatalf("history file wrong. got=%q", cfg.REPL.HistoryFile)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path     string
		expected Format
	}{
		{"olox.toml", FormatTOML},
		{"olox.yaml", FormatYAML},
		{"olox.yml", FormatYAML},
		{"config.conf", FormatTOML},
		{"UPPER.YAML", FormatYAML},
		{"noext", FormatTOML},
	}

	for i, tt := range tests {
		if got := detectFormat(tt.path); got != tt.expected {
			t.Fatalf("tests[%d] - format wrong. expected=%v, got=%v",
				i, tt.expected, got)
		}
	}
}

func TestFormatString(t *testing.T) {
	if got := FormatTOML.String(); got != "toml" {
		t.Fatalf("expected %q, got %q", "toml", got)
	}
	if got := FormatYAML.String(); got != "yaml" {
		t.Fatalf("expected %q, got %q", "yaml", got)
	}
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "olox.toml", `color = "never"

[repl]
prompt = ">> "
history_file = "/tmp/olox-test-history"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != "never" {
		t.Fatalf("color wrong. expected=%q, got=%q", "never", cfg.Color)
	}
	if cfg.REPL.Prompt != ">> " {
		t.Fatalf("prompt wrong. expected=%q, got=%q", ">> ", cfg.REPL.Prompt)
	}
	if cfg.REPL.HistoryFile != "/tmp/olox-test-history" {
		t.Fatalf("history file wrong. got=%q", cfg.REPL.HistoryFile)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "olox.yaml", `color: always
repl:
  prompt: "yy> "
  history_file: /tmp/olox-yaml-history
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != "always" {
		t.Fatalf("color wrong. expected=%q, got=%q", "always", cfg.Color)
	}
	if cfg.REPL.Prompt != "yy> " {
		t.Fatalf("prompt wrong. expected=%q, got=%q", "yy> ", cfg.REPL.Prompt)
	}
	if cfg.REPL.HistoryFile != "/tmp/olox-yaml-history" {
		t.Fatalf("history file wrong. got=%q", cfg.REPL.HistoryFile)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "olox.toml", `color = "never"`+"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Color != "never" {
		t.Fatalf("color wrong. expected=%q, got=%q", "never", cfg.Color)
	}
	if cfg.REPL.Prompt != "olox> " {
		t.Fatalf("expected default prompt to survive, got %q", cfg.REPL.Prompt)
	}
}

func TestLoad_MissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeFile(t, t.TempDir(), "olox.toml", "color = [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "olox.toml", `color = "never"

[repl]
prompt = ">> "
`)

	t.Setenv("OLOX_REPL_PROMPT", "env> ")
	t.Setenv("OLOX_COLOR", "always")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.REPL.Prompt != "env> " {
		t.Fatalf("prompt wrong. expected=%q, got=%q", "env> ", cfg.REPL.Prompt)
	}
	if cfg.Color != "always" {
		t.Fatalf("color wrong. expected=%q, got=%q", "always", cfg.Color)
	}
}

func TestLoad_EmptyPathFallsBackToDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.REPL.Prompt != "olox> " {
		t.Fatalf("expected default prompt, got %q", cfg.REPL.Prompt)
	}
}

func TestLoad_DiscoversWorkingDirFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "olox.toml", `[repl]
prompt = "cwd> "
`)

	chdir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.REPL.Prompt != "cwd> " {
		t.Fatalf("expected discovered prompt, got %q", cfg.REPL.Prompt)
	}
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		color      string
		isTerminal bool
		expected   bool
	}{
		{"auto", true, true},
		{"auto", false, false},
		{"always", false, true},
		{"ALWAYS", false, true},
		{"never", true, false},
		{"", true, true},
		{"unknown", false, false},
	}

	for i, tt := range tests {
		cfg := &Config{Color: tt.color}
		if got := cfg.ColorEnabled(tt.isTerminal); got != tt.expected {
			t.Fatalf("tests[%d] - mode %q wrong. expected=%v, got=%v",
				i, tt.color, tt.expected, got)
		}
	}
}
