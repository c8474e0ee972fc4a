package webviewcache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks

// DefaultMarkerFileName is the file, inside the local data directory, that
// records the last version the cache was cleared for.
const DefaultMarkerFileName = "last-webview-cache-version.txt"

// MarkerStore persists the version for which the cache was last cleared.
type MarkerStore interface {
	// Read returns the trimmed marker content. ok is false when the marker is
	// missing or unreadable; callers treat that as "never cleared".
	Read(baseDir string) (version string, ok bool)
	// Write stores version as the marker content, creating baseDir if needed.
	Write(baseDir, version string) error
}

// FileMarkerStore keeps the marker as a plain text file.
type FileMarkerStore struct {
	FileName string
}

// NewFileMarkerStore creates a marker store using DefaultMarkerFileName.
func NewFileMarkerStore() *FileMarkerStore {
	return &FileMarkerStore{FileName: DefaultMarkerFileName}
}

// Path returns the marker location inside baseDir.
func (s *FileMarkerStore) Path(baseDir string) string {
	name := s.FileName
	if name == "" {
		name = DefaultMarkerFileName
	}
	return filepath.Join(baseDir, name)
}

func (s *FileMarkerStore) Read(baseDir string) (string, bool) {
	data, err := os.ReadFile(s.Path(baseDir))
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}

func (s *FileMarkerStore) Write(baseDir, version string) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return ioError("create", baseDir, err)
	}

	path := s.Path(baseDir)
	if err := os.WriteFile(path, []byte(strings.TrimSpace(version)), 0644); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// Remove deletes the marker so the next guard run purges again. A missing
// marker is not an error.
func (s *FileMarkerStore) Remove(baseDir string) error {
	path := s.Path(baseDir)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ioError("remove", path, err)
	}
	return nil
}
