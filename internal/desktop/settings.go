package desktop

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/myrison/invoicedesk/internal/webviewcache"
)

// DesktopConfig represents the [desktop] section of config.toml
type DesktopConfig struct {
	Theme        string             `toml:"theme"`         // "dark", "light", or "auto"
	WebviewCache WebviewCacheConfig `toml:"webview_cache"` // Startup cache guard settings
}

// WebviewCacheConfig represents the [desktop.webview_cache] section
type WebviewCacheConfig struct {
	// Mode controls the startup purge of stale WebView caches
	// Options: "auto" (default, Windows only), "always", "never"
	Mode string `toml:"mode"`
}

// SettingsManager manages desktop settings in config.toml
type SettingsManager struct {
	configPath string
}

// NewSettingsManager creates a settings manager. An empty path means
// ~/.invoicedesk/config.toml.
func NewSettingsManager(configPath string) *SettingsManager {
	if configPath == "" {
		home, _ := os.UserHomeDir()
		configPath = filepath.Join(home, ".invoicedesk", "config.toml")
	}
	return &SettingsManager{configPath: configPath}
}

// ConfigPath returns the config file location.
func (sm *SettingsManager) ConfigPath() string {
	return sm.configPath
}

// fullConfig represents the entire config.toml structure we care about
type fullConfig struct {
	Desktop DesktopConfig `toml:"desktop"`
	// Other sections are preserved as raw TOML
}

func defaultDesktopConfig() *DesktopConfig {
	return &DesktopConfig{
		Theme:        "dark",
		WebviewCache: WebviewCacheConfig{Mode: string(webviewcache.ModeAuto)},
	}
}

// Load loads the desktop section from config.toml
func (sm *SettingsManager) Load() (*DesktopConfig, error) {
	data, err := os.ReadFile(sm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultDesktopConfig(), nil
		}
		return nil, err
	}

	var config fullConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return defaultDesktopConfig(), nil // Return defaults on parse error
	}

	config.Desktop.Theme = normalizeTheme(config.Desktop.Theme)

	// Unknown modes fall back to auto
	mode, _ := webviewcache.ParseMode(config.Desktop.WebviewCache.Mode)
	config.Desktop.WebviewCache.Mode = string(mode)

	return &config.Desktop, nil
}

// save writes the desktop config, preserving other sections
func (sm *SettingsManager) save(desktop *DesktopConfig) error {
	// Read existing config to preserve other sections
	existingData, _ := os.ReadFile(sm.configPath)

	var existingConfig map[string]interface{}
	if len(existingData) > 0 {
		if err := toml.Unmarshal(existingData, &existingConfig); err != nil {
			existingConfig = make(map[string]interface{})
		}
	} else {
		existingConfig = make(map[string]interface{})
	}

	existingConfig["desktop"] = map[string]interface{}{
		"theme": desktop.Theme,
		"webview_cache": map[string]interface{}{
			"mode": desktop.WebviewCache.Mode,
		},
	}

	if err := os.MkdirAll(filepath.Dir(sm.configPath), 0700); err != nil {
		return err
	}

	var buf bytes.Buffer
	if len(existingData) == 0 {
		buf.WriteString("# InvoiceDesk Configuration\n\n")
	}
	if err := toml.NewEncoder(&buf).Encode(existingConfig); err != nil {
		return err
	}

	return os.WriteFile(sm.configPath, buf.Bytes(), 0600)
}

func normalizeTheme(theme string) string {
	theme = strings.ToLower(strings.TrimSpace(theme))
	switch theme {
	case "dark", "light", "auto":
		return theme
	default:
		return "dark"
	}
}

// GetTheme returns the current desktop theme preference
func (sm *SettingsManager) GetTheme() (string, error) {
	config, err := sm.Load()
	if err != nil {
		return "dark", err
	}
	return config.Theme, nil
}

// SetTheme sets the desktop theme preference
func (sm *SettingsManager) SetTheme(theme string) error {
	config, err := sm.Load()
	if err != nil {
		config = defaultDesktopConfig()
	}

	config.Theme = normalizeTheme(theme)
	return sm.save(config)
}

// WebviewCacheMode returns the configured startup cache guard mode.
// Read errors return ModeAuto alongside the error.
func (sm *SettingsManager) WebviewCacheMode() (webviewcache.Mode, error) {
	config, err := sm.Load()
	if err != nil {
		return webviewcache.ModeAuto, err
	}
	return webviewcache.Mode(config.WebviewCache.Mode), nil
}

// SetWebviewCacheMode validates and stores the startup cache guard mode.
func (sm *SettingsManager) SetWebviewCacheMode(mode string) error {
	parsed, err := webviewcache.ParseMode(mode)
	if err != nil {
		return err
	}

	config, err := sm.Load()
	if err != nil {
		config = defaultDesktopConfig()
	}

	config.WebviewCache.Mode = string(parsed)
	return sm.save(config)
}
