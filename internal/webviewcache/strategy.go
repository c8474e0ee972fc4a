package webviewcache

import (
	"fmt"
	"strings"

	"github.com/myrison/invoicedesk/internal/platform"
)

// Mode overrides the platform default for whether the cache guard runs.
type Mode string

const (
	// ModeAuto purges only where the WebView engine is known to reuse
	// incompatible render caches across app versions (WebView2 on Windows).
	ModeAuto Mode = "auto"
	// ModeAlways purges on every platform.
	ModeAlways Mode = "always"
	// ModeNever disables the guard.
	ModeNever Mode = "never"
)

// ParseMode converts a config value into a Mode. An empty value means ModeAuto.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeAlways:
		return ModeAlways, nil
	case ModeNever:
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown webview cache mode %q (want auto, always or never)", value)
	}
}

// Strategy is one way of handling the startup cache check.
type Strategy interface {
	Name() string
	Run(cfg Config) (Report, error)
}

// StrategyFor picks the strategy for a platform. On platforms whose WebView
// does not keep version-skewed render caches the guard is a no-op.
func StrategyFor(p platform.Platform, mode Mode) Strategy {
	switch mode {
	case ModeNever:
		return NoopStrategy{}
	case ModeAlways:
		return NewActivePurgeStrategy()
	}

	if p == platform.PlatformWindows {
		return NewActivePurgeStrategy()
	}
	return NoopStrategy{}
}

// NoopStrategy leaves the filesystem untouched.
type NoopStrategy struct{}

func (NoopStrategy) Name() string { return "noop" }

func (NoopStrategy) Run(Config) (Report, error) {
	return Report{State: StateDone, Outcome: OutcomeSkipped}, nil
}
