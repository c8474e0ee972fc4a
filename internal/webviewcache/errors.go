package webviewcache

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrPathResolution is returned when the local data directory cannot be determined.
	ErrPathResolution = zerr.New("base directory could not be resolved")

	// ErrIO is returned when creating, reading, writing or removing a path fails
	// for a reason other than the path being absent.
	ErrIO = zerr.New("filesystem operation failed")

	// ErrEmptyVersion is returned when the guard is started without an application version.
	ErrEmptyVersion = zerr.New("application version is empty")

	// ErrInvalidDirName is returned when a purge target is not a single path element.
	ErrInvalidDirName = zerr.New("invalid cache directory name")
)

// ioError tags an OS error with ErrIO while keeping the OS cause matchable
// through errors.Is (fs.ErrPermission and friends).
func ioError(op, path string, err error) error {
	return zerr.With(zerr.With(fmt.Errorf("%w: %w", ErrIO, err), "op", op), "path", path)
}

func pathResolutionError(base string, err error) error {
	if err == nil {
		err = errors.New("empty path")
	}
	return zerr.With(fmt.Errorf("%w: %w", ErrPathResolution, err), "base", base)
}

// describe renders err with the zerr metadata found along its wrap chain,
// outermost values winning, e.g. "msg (op=remove path=/x stage=purge)".
func describe(err error) string {
	fields := make(map[string]any)
	for e := err; e != nil; e = errors.Unwrap(e) {
		z, ok := e.(*zerr.Error)
		if !ok {
			continue
		}
		for k, v := range z.Metadata() {
			if _, seen := fields[k]; !seen {
				fields[k] = v
			}
		}
	}
	if len(fields) == 0 {
		return err.Error()
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return fmt.Sprintf("%s (%s)", err.Error(), strings.Join(pairs, " "))
}
