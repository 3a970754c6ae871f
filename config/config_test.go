package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
host = "0.0.0.0"
port = 8080

[omdb]
api_key = "from-file"

[storage]
driver = "file"
path = "/tmp/marquee"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Addr())
	require.Equal(t, "from-file", cfg.OMDB.APIKey)
	require.Equal(t, "file", cfg.Storage.Driver)
	require.Equal(t, "/tmp/marquee", cfg.Storage.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[omdb]
api_key = "from-file"
`), 0o600))

	t.Setenv("OMDB_API_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.OMDB.APIKey)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.Equal(t, "127.0.0.1:3001", cfg.Addr())
	require.Equal(t, "memory", cfg.Storage.Driver)
	require.Equal(t, "https://www.omdbapi.com", cfg.OMDB.BaseURL)
}
