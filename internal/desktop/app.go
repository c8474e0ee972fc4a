// Package desktop provides the native desktop app functionality for InvoiceDesk.
package desktop

import (
	"context"

	"github.com/myrison/invoicedesk/internal/webviewcache"
)

// CacheStatus reports the startup cache guard result to the frontend.
type CacheStatus struct {
	Strategy        string   `json:"strategy"`
	Outcome         string   `json:"outcome"`
	PreviousVersion string   `json:"previousVersion,omitempty"`
	Removed         []string `json:"removed,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// App struct holds the application state
type App struct {
	ctx      context.Context
	version  string
	settings *SettingsManager
	cache    webviewcache.Result
}

// NewApp creates a new App application struct
func NewApp(version string, settings *SettingsManager, cache webviewcache.Result) *App {
	return &App{
		version:  version,
		settings: settings,
		cache:    cache,
	}
}

// Startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// GetVersion returns the application version
func (a *App) GetVersion() string {
	return a.version
}

// GetTheme returns the current theme preference
func (a *App) GetTheme() (string, error) {
	return a.settings.GetTheme()
}

// SetTheme stores the theme preference
func (a *App) SetTheme(theme string) error {
	return a.settings.SetTheme(theme)
}

// WebviewCacheStatus returns what the startup cache guard did for this launch.
func (a *App) WebviewCacheStatus() CacheStatus {
	status := CacheStatus{
		Strategy:        a.cache.Strategy,
		Outcome:         a.cache.Outcome.String(),
		PreviousVersion: a.cache.PreviousVersion,
		Removed:         a.cache.Removed,
	}
	if a.cache.Err != nil {
		status.Outcome = "failed"
		status.Error = a.cache.Err.Error()
	}
	return status
}
