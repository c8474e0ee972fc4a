package desktop

import (
	"runtime/debug"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set at build time via ldflags.
var Version = devVersion

const devVersion = "0.1.0-dev"

// AppID names the per-user data and cache folders.
const AppID = "com.invoicedesk.app"

var readBuildInfo = debug.ReadBuildInfo

// CurrentVersion returns the running application version. When ldflags did
// not set Version, the main module version from the build info is used.
func CurrentVersion() string {
	v := strings.TrimSpace(Version)
	if v != "" && v != devVersion {
		return v
	}
	if info, ok := readBuildInfo(); ok {
		mv := info.Main.Version
		if mv != "" && mv != "(devel)" {
			return strings.TrimPrefix(mv, "v")
		}
	}
	return devVersion
}

// IsSemver reports whether version is a semantic version, with or without a leading "v".
func IsSemver(version string) bool {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.IsValid(v)
}

// IsDevBuild reports whether version belongs to a local development build.
func IsDevBuild(version string) bool {
	return strings.HasSuffix(strings.TrimSpace(version), "-dev")
}
