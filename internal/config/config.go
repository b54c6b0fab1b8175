// Copyright 2025 Lexpath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the lexpath configuration file. The config
// pins the home and working-directory strings the path algebra
// substitutes, so runs are reproducible regardless of where the
// process actually executes.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// getConfigDir returns the config directory path.
// Uses LEXPATH_CONFIG_DIR env var if set, otherwise defaults to
// ~/.lexpath. Computed dynamically to support test isolation.
func getConfigDir() string {
	if dir := os.Getenv("LEXPATH_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".lexpath")
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	return getConfigDir()
}

// ConfigPath returns the config file path.
func ConfigPath() string {
	return filepath.Join(getConfigDir(), "config.yaml")
}

// DefaultCatalogPath returns where the catalog database lives unless
// the config overrides it.
func DefaultCatalogPath() string {
	return filepath.Join(getConfigDir(), "catalog.db")
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	return os.MkdirAll(getConfigDir(), 0700)
}

// Config is the lexpath configuration from ~/.lexpath/config.yaml.
type Config struct {
	Home       string   `yaml:"home"`       // home string substituted for "~" (default: os.UserHomeDir)
	WorkingDir string   `yaml:"workdir"`    // base for relative paths (default: os.Getwd)
	Catalog    string   `yaml:"catalog"`    // catalog database file (default: {config_dir}/catalog.db)
	Logging    string   `yaml:"logging"`    // logging level: none, debug, info, trace (case insensitive)
	Gitignore  *bool    `yaml:"gitignore"`  // default: true (pointer to detect missing)
	Includes   []string `yaml:"includes"`   // default: [".git"]
	Excludes   []string `yaml:"excludes"`   // default: [] (force-exclude paths)
}

// ApplyDefaults fills zero-value fields with their defaults.
func (cfg *Config) ApplyDefaults() {
	if cfg.Home == "" {
		cfg.Home, _ = os.UserHomeDir()
	}
	if cfg.WorkingDir == "" {
		cfg.WorkingDir, _ = os.Getwd()
	}
	if cfg.Catalog == "" {
		cfg.Catalog = DefaultCatalogPath()
	}
	if cfg.Gitignore == nil {
		t := true
		cfg.Gitignore = &t
	}
	if cfg.Includes == nil {
		cfg.Includes = []string{".git"}
	}
}

// GitignoreEnabled returns whether gitignore filtering is enabled
// (defaults to true).
func (cfg *Config) GitignoreEnabled() bool {
	if cfg.Gitignore == nil {
		return true
	}
	return *cfg.Gitignore
}

// LogLevel returns the normalized (lowercase) logging level. Empty
// string means logging is disabled.
func (cfg *Config) LogLevel() string {
	level := strings.ToLower(cfg.Logging)
	if level == "none" {
		return ""
	}
	return level
}

// Load reads the config file, applying defaults for anything missing.
// A missing file yields a pure-defaults config, not an error.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads the config from a specific file path.
func LoadFromPath(configPath string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyDefaults()
			return &cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configPath, err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}
