//go:build !windows

package platform

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDirHooks isolates directory lookups from the real user environment.
func setupDirHooks(t *testing.T, os, home string, env map[string]string) {
	t.Helper()
	origGOOS := goos
	origUserHomeDir := userHomeDir
	origGetEnvVar := getEnvVar
	t.Cleanup(func() {
		goos = origGOOS
		userHomeDir = origUserHomeDir
		getEnvVar = origGetEnvVar
	})

	goos = os
	userHomeDir = func() (string, error) { return home, nil }
	getEnvVar = func(key string) string { return env[key] }
}

func TestLocalDataDir_Linux(t *testing.T) {
	home := t.TempDir()
	setupDirHooks(t, "linux", home, nil)

	dir, err := LocalDataDir("com.invoicedesk.app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "com.invoicedesk.app"), dir)
}

func TestLocalDataDir_XDGDataHome(t *testing.T) {
	home := t.TempDir()
	xdg := filepath.Join(home, "xdg-data")
	setupDirHooks(t, "linux", home, map[string]string{"XDG_DATA_HOME": xdg})

	dir, err := LocalDataDir("com.invoicedesk.app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg, "com.invoicedesk.app"), dir)
}

func TestLocalDataDir_RelativeXDGIgnored(t *testing.T) {
	home := t.TempDir()
	setupDirHooks(t, "linux", home, map[string]string{"XDG_DATA_HOME": "relative/data"})

	dir, err := LocalDataDir("com.invoicedesk.app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "com.invoicedesk.app"), dir)
}

func TestLocalDataDir_Darwin(t *testing.T) {
	home := t.TempDir()
	setupDirHooks(t, "darwin", home, map[string]string{"XDG_DATA_HOME": "/ignored"})

	dir, err := LocalDataDir("com.invoicedesk.app")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Library", "Application Support", "com.invoicedesk.app"), dir)
}

func TestLocalDataDir_NoHome(t *testing.T) {
	setupDirHooks(t, "linux", "", nil)
	userHomeDir = func() (string, error) { return "", errors.New("$HOME is not defined") }

	_, err := LocalDataDir("com.invoicedesk.app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve local data directory")
}
