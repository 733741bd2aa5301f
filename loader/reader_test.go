package loader

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrodash/nasa-dashboard/backend/config"
)

func resetConfig(t *testing.T) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = config.Config{}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestReadSourceExplicitPath(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "missions.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0644))

	data, location, err := ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, location)
	assert.Equal(t, []byte("a,b\n1,2\n"), data)
}

func TestReadSourceExplicitPathMissing(t *testing.T) {
	resetConfig(t)

	_, _, err := ReadSource(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadSourceExplicitURL(t *testing.T) {
	resetConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("a,b\n1,2\n"))
	}))
	defer server.Close()

	data, location, err := ReadSource(server.URL + "/missions.csv")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/missions.csv", location)
	assert.Equal(t, []byte("a,b\n1,2\n"), data)
}

func TestReadSourceURLNon200(t *testing.T) {
	resetConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, _, err := ReadSource(server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestReadSourceFallsBackToConfiguredLocalPath(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "default.csv")
	require.NoError(t, os.WriteFile(path, []byte("local\n"), 0644))
	config.AppConfig.CSVSource.LocalPath = path

	data, location, err := ReadSource("")
	require.NoError(t, err)
	assert.Equal(t, path, location)
	assert.Equal(t, []byte("local\n"), data)
}

func TestReadSourceFallsBackToRemoteURL(t *testing.T) {
	resetConfig(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote\n"))
	}))
	defer server.Close()

	// Local default does not exist, so the remote URL wins.
	config.AppConfig.CSVSource.LocalPath = filepath.Join(t.TempDir(), "missing.csv")
	config.AppConfig.CSVSource.RemoteURL = server.URL

	data, location, err := ReadSource("")
	require.NoError(t, err)
	assert.Equal(t, server.URL, location)
	assert.Equal(t, []byte("remote\n"), data)
}

func TestReadSourceNoSourcesConfigured(t *testing.T) {
	resetConfig(t)

	_, _, err := ReadSource("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV source available")
}
