// Package platform identifies the host operating system and resolves the
// per-user directories desktop builds keep their state in.
package platform

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Platform identifies the operating system family the app is running on.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
	PlatformWSL1    Platform = "wsl1"
	PlatformWSL2    Platform = "wsl2"
	PlatformUnknown Platform = "unknown"
)

// Package-level hooks for testing.
var (
	goos            = runtime.GOOS
	readProcVersion = func() ([]byte, error) { return os.ReadFile("/proc/version") }
)

// Detect returns the platform of the running process.
func Detect() Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	case "linux":
		return detectLinux()
	default:
		return PlatformUnknown
	}
}

// detectLinux tells plain Linux apart from the two WSL generations.
func detectLinux() Platform {
	data, err := readProcVersion()
	if err != nil {
		return PlatformLinux
	}
	lower := strings.ToLower(string(data))
	if !strings.Contains(lower, "microsoft") && !strings.Contains(lower, "wsl") {
		return PlatformLinux
	}
	// WSL2 runs a real kernel built as "microsoft-standard"
	if strings.Contains(lower, "microsoft-standard") || strings.Contains(lower, "wsl2") {
		return PlatformWSL2
	}
	return PlatformWSL1
}

// Parse converts a platform name ("windows", "darwin", "macos", "linux", "wsl1", "wsl2")
// into a Platform.
func Parse(name string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "windows":
		return PlatformWindows, nil
	case "darwin", "macos":
		return PlatformMacOS, nil
	case "linux":
		return PlatformLinux, nil
	case "wsl1":
		return PlatformWSL1, nil
	case "wsl2":
		return PlatformWSL2, nil
	default:
		return PlatformUnknown, fmt.Errorf("unknown platform %q", name)
	}
}

// IsWSL reports whether p is either WSL generation.
func (p Platform) IsWSL() bool {
	return p == PlatformWSL1 || p == PlatformWSL2
}

func (p Platform) String() string {
	return string(p)
}
