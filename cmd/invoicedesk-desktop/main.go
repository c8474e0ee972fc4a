package main

import (
	"embed"
	"fmt"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/myrison/invoicedesk/internal/desktop"
	"github.com/myrison/invoicedesk/internal/platform"
	"github.com/myrison/invoicedesk/internal/webviewcache"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	environ, err := desktop.LoadEnv()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	version := desktop.CurrentVersion()
	isDev := environ.Dev || desktop.IsDevBuild(version)

	// Configure logger
	logLevel := logger.INFO
	if isDev {
		logLevel = logger.DEBUG
	}
	appLogger := desktop.NewLogger(environ.LogFile, logLevel)

	settings := desktop.NewSettingsManager(environ.ConfigPath)
	cacheMode, err := settings.WebviewCacheMode()
	if err != nil {
		appLogger.Warning(fmt.Sprintf("failed to read %s, using defaults: %v", settings.ConfigPath(), err))
	}

	if !desktop.IsSemver(version) {
		appLogger.Warning(fmt.Sprintf("[webview-cache] version %q is not a semantic version, comparing it verbatim", version))
	}

	// Runs before the window exists so WebView2 never opens a stale profile.
	// The result is advisory: failures are already logged and never stop launch.
	cacheResult := webviewcache.RunAtStartup(webviewcache.Config{
		Version:  version,
		Platform: platform.Detect(),
		Mode:     cacheMode,
		LocalDataDir: func() (string, error) {
			return platform.LocalDataDir(desktop.AppID)
		},
		CacheDir: func() (string, error) {
			return platform.CacheDir(desktop.AppID)
		},
	}, appLogger)

	app := desktop.NewApp(version, settings, cacheResult)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "InvoiceDesk",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.Startup,
		Bind: []interface{}{
			app,
		},
		Logger:             appLogger,
		LogLevel:           logLevel,
		LogLevelProduction: logger.ERROR,
		Windows: &windows.Options{
			// Keep the WebView2 profile (EBWebView) where the cache guard looks for it.
			WebviewUserDataPath: webviewUserDataPath(cacheResult),
		},
		// Enable DevTools in development mode
		Debug: options.Debug{
			OpenInspectorOnStartup: isDev,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

// webviewUserDataPath returns the local data directory the guard resolved,
// resolving it again when the guard did not get that far. An empty path
// leaves the Wails default in place.
func webviewUserDataPath(result webviewcache.Result) string {
	if result.LocalDataDir != "" {
		return result.LocalDataDir
	}
	dir, err := platform.LocalDataDir(desktop.AppID)
	if err != nil {
		return ""
	}
	return dir
}
