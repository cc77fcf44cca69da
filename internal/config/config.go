package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// EnvPrefix starts every environment variable that overrides a file
// value: OLOX_REPL_PROMPT, OLOX_REPL_HISTORY_FILE, OLOX_COLOR.
const EnvPrefix = "OLOX"

// Config carries the CLI settings.
type Config struct {
	REPL  REPLConfig `toml:"repl" yaml:"repl"`
	Color string     `toml:"color" yaml:"color"` // auto, always or never
}

// REPLConfig carries the interactive prompt settings.
type REPLConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
}

// Default returns the built-in configuration used when no file is
// found anywhere.
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      "olox> ",
			HistoryFile: defaultHistoryPath(),
		},
		Color: "auto",
	}
}

// Load resolves and reads the configuration. An explicitly given path
// must exist; with an empty path the search locations are tried in
// order and a miss everywhere yields the defaults. OLOX_ environment
// variables override file values either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = discover()
		if path == "" {
			cfg.applyEnv()
			return cfg, nil
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := decode(content, detectFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// ColorEnabled resolves the color mode against whether output goes to
// a terminal.
func (c *Config) ColorEnabled(isTerminal bool) bool {
	switch strings.ToLower(c.Color) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// discover returns the first configuration file present in the search
// locations: olox.toml / olox.yaml in the working directory, then
// olox/config.toml / config.yaml under the user config directory.
func discover() string {
	candidates := []string{"olox.toml", "olox.yaml", "olox.yml"}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
			candidates = append(candidates, filepath.Join(dir, "olox", name))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// detectFormat determines the configuration format from the file
// extension, defaulting to TOML.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content into cfg based on format.
func decode(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		return toml.Unmarshal(content, cfg)
	}
}

// applyEnv overlays OLOX_ environment variables onto the loaded values.
func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(EnvPrefix + "_REPL_PROMPT"); ok {
		c.REPL.Prompt = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_REPL_HISTORY_FILE"); ok {
		c.REPL.HistoryFile = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "_COLOR"); ok {
		c.Color = v
	}
}

// defaultHistoryPath places the REPL history in the user home
// directory, or disables persistence when no home is resolvable.
func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".olox_history")
}
