package desktop

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setVersionHooks(t *testing.T, version string, info *debug.BuildInfo) {
	t.Helper()
	origVersion := Version
	origReadBuildInfo := readBuildInfo
	t.Cleanup(func() {
		Version = origVersion
		readBuildInfo = origReadBuildInfo
	})

	Version = version
	readBuildInfo = func() (*debug.BuildInfo, bool) {
		return info, info != nil
	}
}

func TestCurrentVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
		info    *debug.BuildInfo
		want    string
	}{
		{"ldflags version wins", "1.2.0", &debug.BuildInfo{Main: debug.Module{Version: "v9.9.9"}}, "1.2.0"},
		{"ldflags version trimmed", " 1.2.0\n", nil, "1.2.0"},
		{"dev falls back to module version", devVersion, &debug.BuildInfo{Main: debug.Module{Version: "v1.3.0"}}, "1.3.0"},
		{"devel module keeps dev", devVersion, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, devVersion},
		{"no build info keeps dev", devVersion, nil, devVersion},
		{"empty version", "", nil, devVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setVersionHooks(t, tt.version, tt.info)
			assert.Equal(t, tt.want, CurrentVersion())
		})
	}
}

func TestIsSemver(t *testing.T) {
	assert.True(t, IsSemver("1.2.0"))
	assert.True(t, IsSemver("v1.2.0"))
	assert.True(t, IsSemver("0.1.0-dev"))
	assert.True(t, IsSemver(" 2.0.0-rc.1 "))
	assert.False(t, IsSemver("build-42"))
	assert.False(t, IsSemver(""))
}

func TestIsDevBuild(t *testing.T) {
	assert.True(t, IsDevBuild(devVersion))
	assert.False(t, IsDevBuild("1.2.0"))
	assert.False(t, IsDevBuild("1.2.0-rc.1"))
}
