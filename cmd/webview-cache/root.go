package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/myrison/invoicedesk/internal/desktop"
	"github.com/myrison/invoicedesk/internal/platform"
	"github.com/myrison/invoicedesk/internal/webviewcache"
)

// rootOptions holds the persistent flags shared by all subcommands.
type rootOptions struct {
	appID        string
	platformName string
	localDataDir string
	cacheDir     string
	configPath   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "webview-cache",
		Short: "Inspect and reset the InvoiceDesk WebView cache guard",
		Long: `webview-cache shows what the InvoiceDesk startup cache guard will do and
lets support reset it.

On launch, InvoiceDesk compares its version with a marker file in the local
data directory. When they differ it deletes the WebView2 cache folders
(EBWebView, WebView2, webview2) and records the new version.

Examples:
  webview-cache status            # Show marker, directories and cache folders
  webview-cache reset             # Clear caches again on the next launch`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.appID, "app-id", desktop.AppID, "application id naming the data and cache folders")
	flags.StringVar(&opts.platformName, "platform", "", "platform to evaluate: windows, macos, linux, wsl1, wsl2 (default: detected)")
	flags.StringVar(&opts.localDataDir, "local-data-dir", "", "override the local data directory")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "override the cache directory")
	flags.StringVar(&opts.configPath, "config", "", "path to config.toml (default: ~/.invoicedesk/config.toml)")

	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newResetCmd(opts))

	return cmd
}

func (o *rootOptions) resolvePlatform() (platform.Platform, error) {
	if o.platformName == "" {
		return platform.Detect(), nil
	}
	return platform.Parse(o.platformName)
}

func (o *rootOptions) resolveLocalDataDir() (string, error) {
	if o.localDataDir != "" {
		return o.localDataDir, nil
	}
	return platform.LocalDataDir(o.appID)
}

func (o *rootOptions) resolveCacheDir() (string, error) {
	if o.cacheDir != "" {
		return o.cacheDir, nil
	}
	return platform.CacheDir(o.appID)
}

// resolveStrategy combines the platform with the mode from config.toml.
func (o *rootOptions) resolveStrategy(cmd *cobra.Command) (platform.Platform, webviewcache.Mode, webviewcache.Strategy, error) {
	p, err := o.resolvePlatform()
	if err != nil {
		return p, "", nil, err
	}

	settings := desktop.NewSettingsManager(o.configPath)
	mode, err := settings.WebviewCacheMode()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to read %s, using mode %s: %v\n", settings.ConfigPath(), mode, err)
	}
	return p, mode, webviewcache.StrategyFor(p, mode), nil
}
