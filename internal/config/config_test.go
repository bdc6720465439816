package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Makepad-fr/staff/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "classic", cfg.UI.Theme)
	assert.Empty(t, cfg.UI.User)
	assert.Zero(t, cfg.UI.Unread)
	assert.Equal(t, "staff.log", cfg.Log.File)
	assert.Equal(t, time.Duration(0), cfg.API.Timeout)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_FromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.yaml")
	yaml := []byte(`env: production
api:
  url: https://file.example.com/employees
  timeout: 5s
ui:
  theme: mono
  user: Carla Gomes
  unread: 2
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o600))

	t.Setenv("STAFF_API_URL", "https://env.example.com/employees")
	t.Setenv("STAFF_LOG_LEVEL", "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "https://env.example.com/employees", cfg.API.URL, "env wins over file")
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, "Carla Gomes", cfg.UI.User)
	assert.Equal(t, 2, cfg.UI.Unread)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EmulatorOverride(t *testing.T) {
	t.Setenv("STAFF_API_URL", "https://api.example.com/employees")
	t.Setenv("STAFF_API_URL_EMU", "http://10.0.2.2:3000/employees")

	cfg, err := config.Load("")
	require.NoError(t, err)

	u, err := cfg.API.ResolveURL()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.2.2:3000/employees", u)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	_, err := config.APIConfig{}.ResolveURL()
	require.ErrorIs(t, err, config.ErrNoURL)

	u, err := config.APIConfig{URL: " https://a.example.com "}.ResolveURL()
	require.NoError(t, err)
	assert.Equal(t, "https://a.example.com", u)

	u, err = config.APIConfig{URL: "https://a.example.com", EmulatorURL: "http://emu"}.ResolveURL()
	require.NoError(t, err)
	assert.Equal(t, "http://emu", u)

	for _, bad := range []string{"employees.json", "ftp://host/x", "http://"} {
		_, err = config.APIConfig{URL: bad}.ResolveURL()
		assert.ErrorIs(t, err, config.ErrInvalidURL, "url %q", bad)
	}
}
