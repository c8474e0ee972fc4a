//go:build !windows

package platform

import (
	"path/filepath"
)

// localDataBase follows the platform convention for non-roaming app data:
// ~/Library/Application Support on macOS, $XDG_DATA_HOME (or ~/.local/share) elsewhere.
func localDataBase() (string, error) {
	if goos != "darwin" {
		if xdg := getEnvVar("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return xdg, nil
		}
	}

	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	if goos == "darwin" {
		return filepath.Join(home, "Library", "Application Support"), nil
	}
	return filepath.Join(home, ".local", "share"), nil
}
