// ABOUTME: Tests for config loading, defaults, and environment overrides.
// ABOUTME: Redirects XDG paths into a temp dir.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "badger", cfg.GetBackend())
	assert.NotEmpty(t, cfg.GetDataDir())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data"), ExpandPath("~/data"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

// unsetNoshEnv clears NOSH_* overrides for the duration of a test.
// t.Setenv registers restoration; os.Unsetenv makes the var truly absent,
// since cleanenv treats a set-but-empty variable as an override.
func unsetNoshEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NOSH_BACKEND", "NOSH_DATA_DIR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	unsetNoshEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "badger", cfg.GetBackend())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nosh"), 0750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "nosh", "config.json"),
		[]byte(`{"backend":"badger","data_dir":"/from/file"}`), 0600))

	unsetNoshEnv(t)
	t.Setenv("NOSH_BACKEND", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.GetBackend())
	assert.Equal(t, "/from/file", cfg.GetDataDir())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	unsetNoshEnv(t)

	cfg := &Config{Backend: "memory", DataDir: "/tmp/nosh-test"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "memory", loaded.Backend)
	assert.Equal(t, "/tmp/nosh-test", loaded.DataDir)
}

func TestOpenBlobUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "cloud"}
	_, err := cfg.OpenBlob()
	assert.Error(t, err)
}

func TestOpenBlobMemory(t *testing.T) {
	cfg := &Config{Backend: "memory"}
	blob, err := cfg.OpenBlob()
	require.NoError(t, err)
	require.NotNil(t, blob)
	assert.NoError(t, blob.Close())
}
