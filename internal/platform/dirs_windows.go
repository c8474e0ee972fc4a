//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// localDataBase returns %LOCALAPPDATA% through the known folder API, falling
// back to the environment when the shell call fails.
func localDataBase() (string, error) {
	path, err := windows.KnownFolderPath(windows.FOLDERID_LocalAppData, windows.KF_FLAG_DEFAULT)
	if err == nil && path != "" {
		return path, nil
	}
	if env := getEnvVar("LOCALAPPDATA"); env != "" {
		return env, nil
	}
	return "", err
}
