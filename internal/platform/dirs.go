package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Package-level hooks for testing. In production, these use the real implementations.
var (
	userHomeDir  = os.UserHomeDir
	userCacheDir = os.UserCacheDir
	getEnvVar    = os.Getenv
)

// ErrEmptyAppID is returned when a directory is requested without an application id.
var ErrEmptyAppID = errors.New("empty application id")

// LocalDataDir returns the per-user, machine-local data directory for appID.
// The directory is not created.
func LocalDataDir(appID string) (string, error) {
	if appID == "" {
		return "", ErrEmptyAppID
	}
	base, err := localDataBase()
	if err != nil {
		return "", fmt.Errorf("failed to resolve local data directory: %w", err)
	}
	if base == "" {
		return "", errors.New("failed to resolve local data directory: empty path")
	}
	return filepath.Join(base, appID), nil
}

// CacheDir returns the per-user cache directory for appID. The directory may
// not exist.
func CacheDir(appID string) (string, error) {
	if appID == "" {
		return "", ErrEmptyAppID
	}
	base, err := userCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}
	return filepath.Join(base, appID), nil
}
