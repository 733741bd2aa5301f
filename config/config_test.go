package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func resetAppConfig(t *testing.T) {
	t.Helper()
	old := AppConfig
	t.Cleanup(func() { AppConfig = old })
}

func TestLoadConfig(t *testing.T) {
	resetAppConfig(t)
	t.Setenv("NASA_API_KEY", "")

	path := writeConfig(t, `
server:
  port: "9000"
database:
  path: "data/test.db"
csv_source:
  local_path: "data/missions.csv"
  remote_url: "https://example.com/missions.csv"
nasa:
  api_key: "yaml-key"
  request_timeout: "3s"
  apod_days: 2
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "9000", AppConfig.Server.Port)
	assert.Equal(t, "data/test.db", AppConfig.Database.Path)
	assert.Equal(t, "data/missions.csv", AppConfig.CSVSource.LocalPath)
	assert.Equal(t, "yaml-key", AppConfig.NASA.APIKey)
	assert.Equal(t, 3*time.Second, AppConfig.NASA.RequestTimeout)
	assert.Equal(t, 2, AppConfig.NASA.APODDays)

	// Unset values take defaults.
	assert.Equal(t, 7, AppConfig.NASA.NeoDaysAhead)
	assert.Equal(t, 50, AppConfig.NASA.ExoplanetLimit)
	assert.Equal(t, "https://api.nasa.gov/planetary/apod", AppConfig.NASA.APODURL)
}

func TestLoadConfigEnvOverridesAPIKey(t *testing.T) {
	resetAppConfig(t)
	t.Setenv("NASA_API_KEY", "env-key")

	path := writeConfig(t, `
nasa:
  api_key: "yaml-key"
`)

	require.NoError(t, LoadConfig(path))
	assert.Equal(t, "env-key", AppConfig.NASA.APIKey)
}

func TestLoadConfigDefaultTimeout(t *testing.T) {
	resetAppConfig(t)
	t.Setenv("NASA_API_KEY", "")

	path := writeConfig(t, `
nasa:
  api_key: "k"
`)

	require.NoError(t, LoadConfig(path))
	assert.Equal(t, 10*time.Second, AppConfig.NASA.RequestTimeout)
}

func TestLoadConfigBadTimeout(t *testing.T) {
	resetAppConfig(t)
	t.Setenv("NASA_API_KEY", "")

	path := writeConfig(t, `
nasa:
  request_timeout: "soon"
`)

	err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request_timeout")
}

func TestLoadConfigMissingFile(t *testing.T) {
	resetAppConfig(t)

	err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateRequiresAPIKey(t *testing.T) {
	resetAppConfig(t)

	AppConfig.NASA.APIKey = ""
	require.Error(t, Validate())

	AppConfig.NASA.APIKey = "k"
	require.NoError(t, Validate())
}
