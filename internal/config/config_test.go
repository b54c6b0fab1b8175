package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEXPATH_CONFIG_DIR", dir)

	assert.Equal(t, dir, ConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), ConfigPath())
	assert.Equal(t, filepath.Join(dir, "catalog.db"), DefaultCatalogPath())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("LEXPATH_CONFIG_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	home, _ := os.UserHomeDir()
	assert.Equal(t, home, cfg.Home)
	assert.NotEmpty(t, cfg.WorkingDir)
	assert.Equal(t, DefaultCatalogPath(), cfg.Catalog)
	assert.True(t, cfg.GitignoreEnabled())
	assert.Equal(t, []string{".git"}, cfg.Includes)
}

func TestLoadFromPathParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
home: /home/other
workdir: /srv/app
catalog: /tmp/cat.db
logging: Debug
gitignore: false
excludes:
  - node_modules
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/home/other", cfg.Home)
	assert.Equal(t, "/srv/app", cfg.WorkingDir)
	assert.Equal(t, "/tmp/cat.db", cfg.Catalog)
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.False(t, cfg.GitignoreEnabled())
	assert.Equal(t, []string{"node_modules"}, cfg.Excludes)
}

func TestLoadFromPathRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("home: [unclosed"), 0o600))

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLogLevelNoneDisables(t *testing.T) {
	cfg := &Config{Logging: "None"}
	assert.Empty(t, cfg.LogLevel())
}
