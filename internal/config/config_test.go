package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/basecycle
listenAddr: ":9090"
logDir: /var/log/basecycle
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/basecycle", cfg.DatabaseURL)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/var/log/basecycle", cfg.LogDir)
}

func TestLoadFromPath_Defaults(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost:5432/basecycle`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "logs", cfg.LogDir)
}

func TestLoadFromPath_EnvOverridesDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db.internal:5432/prod")
	path := writeConfig(t, `databaseURL: postgres://localhost:5432/basecycle`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.internal:5432/prod", cfg.DatabaseURL)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	// Make sure a stray env value doesn't mask the failure.
	t.Setenv("DATABASE_URL", "")
	path := writeConfig(t, `listenAddr: ":9090"`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "databaseURL: [unterminated")

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
