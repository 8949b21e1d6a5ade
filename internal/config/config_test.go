package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, 300, cfg.Search.DebounceMS)
	assert.Equal(t, 2, cfg.Search.MinLength)
	assert.Equal(t, 10, cfg.Search.Limit)
	assert.Equal(t, "GUEST", cfg.API.Role)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[api]
base_url = "https://aid.example.com/api"
role = "ADMIN"

[search]
debounce_ms = 150
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://aid.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, "ADMIN", cfg.API.Role)
	assert.Equal(t, 150*time.Millisecond, cfg.Search.Debounce())
	// Untouched keys keep their defaults
	assert.Equal(t, 2, cfg.Search.MinLength)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "http://api.local"
	cfg.Search.Limit = 25
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://api.local", loaded.API.BaseURL)
	assert.Equal(t, 25, loaded.Search.Limit)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url="), 0644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.BaseURL = ""
	cfg.API.TimeoutMS = 0
	cfg.API.Role = "WIZARD"
	cfg.Search.MinLength = 0

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "api.base_url")
	assert.Contains(t, msg, "api.timeout_ms")
	assert.Contains(t, msg, "role")
	assert.Contains(t, msg, "search.min_length")
}

func TestValidateAcceptsDefaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}
