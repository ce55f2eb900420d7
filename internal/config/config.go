// Package config loads the verbump configuration file, which lists the
// files under version management and the default increment command.
// Both YAML (.verbump.yaml) and TOML (.verbump.toml) are supported.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fgm/verbump/internal/core"
	"github.com/fgm/verbump/internal/semver"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Default config file names, probed in order.
const (
	ConfigFileYAML = ".verbump.yaml"
	ConfigFileTOML = ".verbump.toml"
)

// ConfigFilePerm defines file permissions for config files.
const ConfigFilePerm = core.PermOwnerRW

// FileEntry describes one managed file.
type FileEntry struct {
	// Path is the file path, relative to the config file or absolute.
	Path string `yaml:"path" toml:"path"`

	// Cmd optionally overrides the default increment command for this
	// file.
	Cmd string `yaml:"cmd,omitempty" toml:"cmd,omitempty"`
}

// Config is the main configuration structure for verbump.
type Config struct {
	// Files lists the files under version management.
	Files []FileEntry `yaml:"files,omitempty" toml:"files,omitempty"`

	// Cmd is the default increment command, "same" when unset.
	Cmd string `yaml:"cmd,omitempty" toml:"cmd,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Cmd: semver.CmdSame.String()}
}

// Load reads the configuration from path. When path is empty, the
// default config file names are probed in the working directory; a
// missing config file falls back to Default.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, candidate := range []string{ConfigFileYAML, ConfigFileTOML} {
		cfg, err := loadFile(candidate)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		return cfg, nil
	}

	return Default(), nil
}

// loadFile reads and decodes one config file, dispatching on extension.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	default:
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	if cfg.Cmd == "" {
		cfg.Cmd = semver.CmdSame.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks that every entry has a path and every command is
// recognized.
func (c *Config) Validate() error {
	if c.Cmd != "" && !semver.Command(c.Cmd).IsValid() {
		return fmt.Errorf("unknown command %q", c.Cmd)
	}
	for i, entry := range c.Files {
		if entry.Path == "" {
			return fmt.Errorf("files[%d]: path is required", i)
		}
		if entry.Cmd != "" && !semver.Command(entry.Cmd).IsValid() {
			return fmt.Errorf("files[%d]: unknown command %q", i, entry.Cmd)
		}
	}
	return nil
}

// Paths returns the paths of all managed files.
func (c *Config) Paths() []string {
	paths := make([]string, len(c.Files))
	for i, entry := range c.Files {
		paths[i] = entry.Path
	}
	return paths
}

// CmdFor returns the increment command for entry, falling back to the
// config-wide default.
func (c *Config) CmdFor(entry FileEntry) semver.Command {
	if entry.Cmd != "" {
		return semver.Command(entry.Cmd)
	}
	if c.Cmd != "" {
		return semver.Command(c.Cmd)
	}
	return semver.CmdSame
}
