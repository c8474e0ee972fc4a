// Package webviewcache clears stale embedded WebView render caches after an
// application upgrade.
//
// A new binary that starts on top of the previous version's WebView2 profile
// can hit rendering and script engine incompatibilities. At startup the
// guard compares the running version with a marker left by the last purge;
// when they differ it deletes the known WebView cache folders under the local
// data and cache directories, then records the new version.
package webviewcache

import (
	"fmt"
	"os"
	"strings"

	"github.com/myrison/invoicedesk/internal/platform"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"go.trai.ch/zerr"
)

const logPrefix = "[webview-cache] "

// DirResolver returns a base directory path.
type DirResolver func() (string, error)

// Config carries everything the guard needs; nothing is read from globals.
type Config struct {
	// Version is the running application version. Compared after trimming.
	Version string
	// Platform selects the default strategy.
	Platform platform.Platform
	// Mode overrides the platform default.
	Mode Mode
	// LocalDataDir is required. The directory is created if missing and
	// holds the marker.
	LocalDataDir DirResolver
	// CacheDir is optional. A nil resolver, an error or an empty path skips it.
	CacheDir DirResolver
	// DirNames defaults to DefaultDirNames.
	DirNames []string
}

func (c Config) dirNames() []string {
	if len(c.DirNames) == 0 {
		return DefaultDirNames
	}
	return c.DirNames
}

// State is a step of a guard run.
type State int

const (
	StateInit State = iota
	StateCheck
	StatePurge
	StateCommit
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateCheck:
		return "check"
	case StatePurge:
		return "purge"
	case StateCommit:
		return "commit"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome summarizes a finished run.
type Outcome int

const (
	// OutcomeSkipped means the strategy does not purge on this platform.
	OutcomeSkipped Outcome = iota
	// OutcomeUpToDate means the marker already matched the running version.
	OutcomeUpToDate
	// OutcomePurged means cache directories were cleared and the marker updated.
	OutcomePurged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeUpToDate:
		return "up-to-date"
	case OutcomePurged:
		return "purged"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Report describes what a strategy did.
type Report struct {
	// State is the last state reached; StateDone unless the run failed.
	State   State
	Outcome Outcome
	// PreviousVersion is the marker content before the run, empty when absent.
	PreviousVersion string
	// LocalDataDir and CacheDir are the resolved base directories. CacheDir is
	// empty when it could not be resolved.
	LocalDataDir string
	CacheDir     string
	// Removed lists the directories deleted during the purge.
	Removed []string
}

// ActivePurgeStrategy runs the version check and purge.
type ActivePurgeStrategy struct {
	Markers MarkerStore
	Purger  Purger
}

// NewActivePurgeStrategy creates a strategy backed by the filesystem.
func NewActivePurgeStrategy() *ActivePurgeStrategy {
	return &ActivePurgeStrategy{
		Markers: NewFileMarkerStore(),
		Purger:  NewDirPurger(),
	}
}

func (s *ActivePurgeStrategy) Name() string { return "active" }

// Run executes init, check, purge and commit in order. The marker is only
// written after every purge succeeded, so an updated marker implies the
// caches for that version are already gone.
func (s *ActivePurgeStrategy) Run(cfg Config) (Report, error) {
	report := Report{State: StateInit}

	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return report, withState(ErrEmptyVersion, report.State)
	}

	localDir, err := resolveLocalDataDir(cfg.LocalDataDir)
	if err != nil {
		return report, withState(err, report.State)
	}
	report.LocalDataDir = localDir
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return report, withState(ioError("create", localDir, err), report.State)
	}
	report.CacheDir = resolveOptionalDir(cfg.CacheDir)

	report.State = StateCheck
	previous, ok := s.Markers.Read(localDir)
	report.PreviousVersion = previous
	if ok && previous == version {
		report.State = StateDone
		report.Outcome = OutcomeUpToDate
		return report, nil
	}

	report.State = StatePurge
	names := cfg.dirNames()
	for _, base := range []string{localDir, report.CacheDir} {
		if base == "" {
			continue
		}
		removed, err := s.Purger.Purge(base, names)
		report.Removed = append(report.Removed, removed...)
		if err != nil {
			return report, withState(err, report.State)
		}
	}

	report.State = StateCommit
	if err := s.Markers.Write(localDir, version); err != nil {
		return report, withState(err, report.State)
	}

	report.State = StateDone
	report.Outcome = OutcomePurged
	return report, nil
}

func resolveLocalDataDir(resolve DirResolver) (string, error) {
	if resolve == nil {
		return "", pathResolutionError("local-data", nil)
	}
	dir, err := resolve()
	if err != nil || dir == "" {
		return "", pathResolutionError("local-data", err)
	}
	return dir, nil
}

func resolveOptionalDir(resolve DirResolver) string {
	if resolve == nil {
		return ""
	}
	dir, err := resolve()
	if err != nil {
		return ""
	}
	return dir
}

func withState(err error, s State) error {
	return zerr.With(zerr.Wrap(err, ""), "stage", s.String())
}

// Result is the advisory outcome of RunAtStartup.
type Result struct {
	Report
	Strategy string
	// Err is the single descriptive error for a failed run. It has already
	// been logged and must not be treated as a launch failure.
	Err error
}

// RunAtStartup runs the strategy selected for cfg.Platform and cfg.Mode.
//
// The result is advisory: every failure, including a panic inside the
// strategy, is merged into Result.Err and logged here. Callers must never
// abort or delay launch because of it; the only consequence of a failure is
// that a stale cache may survive until the next start.
func RunAtStartup(cfg Config, log logger.Logger) Result {
	return Run(StrategyFor(cfg.Platform, cfg.Mode), cfg, log)
}

// Run is RunAtStartup with an explicit strategy.
func Run(strategy Strategy, cfg Config, log logger.Logger) Result {
	if log == nil {
		log = logger.NewDefaultLogger()
	}

	result := Result{Strategy: strategy.Name()}
	report, err := runRecovered(strategy, cfg)
	result.Report = report
	if err != nil {
		result.Err = zerr.With(
			zerr.Wrap(err, "failed to clear webview cache on version change"),
			"version", strings.TrimSpace(cfg.Version),
		)
		log.Error(logPrefix + describe(result.Err))
		return result
	}

	switch report.Outcome {
	case OutcomeSkipped:
		log.Debug(fmt.Sprintf("%sskipped on %s (strategy %s)", logPrefix, cfg.Platform, result.Strategy))
	case OutcomeUpToDate:
		log.Debug(fmt.Sprintf("%scache already cleared for version %s", logPrefix, strings.TrimSpace(cfg.Version)))
	case OutcomePurged:
		previous := report.PreviousVersion
		if previous == "" {
			previous = "none"
		}
		log.Info(fmt.Sprintf("%sversion changed (%s -> %s), removed %d cache directories",
			logPrefix, previous, strings.TrimSpace(cfg.Version), len(report.Removed)))
		for _, dir := range report.Removed {
			log.Debug(logPrefix + "removed " + dir)
		}
	}
	return result
}

func runRecovered(strategy Strategy, cfg Config) (report Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = withState(fmt.Errorf("panic: %v", r), report.State)
		}
	}()
	return strategy.Run(cfg)
}
