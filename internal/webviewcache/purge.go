package webviewcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

//go:generate mockgen -source=purge.go -destination=mocks/mock_purge.go -package=mocks

// DefaultDirNames are the folders WebView2 variants keep their profile and
// render caches in. "WebView2" and "webview2" collide on case-insensitive
// filesystems; the second lookup then simply finds nothing.
var DefaultDirNames = []string{"EBWebView", "WebView2", "webview2"}

// Purger removes known cache directories beneath a base directory.
type Purger interface {
	// Purge deletes baseDir/name for every name that exists, in order, and
	// returns the paths it removed. It stops at the first failure.
	Purge(baseDir string, names []string) ([]string, error)
}

// DirPurger deletes cache directories from the local filesystem.
type DirPurger struct {
	lstat     func(string) (fs.FileInfo, error)
	removeAll func(string) error
}

// NewDirPurger creates a purger backed by the os package.
func NewDirPurger() *DirPurger {
	return &DirPurger{
		lstat:     os.Lstat,
		removeAll: os.RemoveAll,
	}
}

func (p *DirPurger) Purge(baseDir string, names []string) ([]string, error) {
	var removed []string
	for _, name := range names {
		if err := validateDirName(name); err != nil {
			return removed, err
		}

		target := filepath.Join(baseDir, name)
		if _, err := p.lstat(target); err != nil {
			if isAbsent(err) {
				continue
			}
			return removed, ioError("stat", target, err)
		}

		// Already gone by the time we got here counts as removed.
		if err := p.removeAll(target); err != nil && !isAbsent(err) {
			return removed, ioError("remove", target, err)
		}
		removed = append(removed, target)
	}
	return removed, nil
}

// validateDirName rejects anything that would escape the base directory.
func validateDirName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidDirName, name)
	}
	return nil
}

// isAbsent reports whether err means the path is not there, including a
// missing or non-directory parent.
func isAbsent(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// ExistingTargets returns the baseDir/name paths that currently exist,
// without touching them.
func ExistingTargets(baseDir string, names []string) ([]string, error) {
	var found []string
	for _, name := range names {
		if err := validateDirName(name); err != nil {
			return found, err
		}
		target := filepath.Join(baseDir, name)
		if _, err := os.Lstat(target); err != nil {
			if isAbsent(err) {
				continue
			}
			return found, ioError("stat", target, err)
		}
		found = append(found, target)
	}
	return found, nil
}
