package desktop

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/myrison/invoicedesk/internal/webviewcache"
)

func TestSettingsGetThemeDefault(t *testing.T) {
	tmpDir := t.TempDir()
	sm := NewSettingsManager(filepath.Join(tmpDir, "config.toml"))

	// Default theme should be "dark"
	theme, err := sm.GetTheme()
	if err != nil {
		t.Fatalf("GetTheme failed: %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected default theme 'dark', got '%s'", theme)
	}
}

func TestSettingsSetTheme(t *testing.T) {
	tmpDir := t.TempDir()
	sm := NewSettingsManager(filepath.Join(tmpDir, "config.toml"))

	for _, want := range []string{"light", "dark", "auto"} {
		if err := sm.SetTheme(want); err != nil {
			t.Fatalf("SetTheme(%q) failed: %v", want, err)
		}
		theme, err := sm.GetTheme()
		if err != nil {
			t.Fatalf("GetTheme failed: %v", err)
		}
		if theme != want {
			t.Errorf("Expected theme '%s', got '%s'", want, theme)
		}
	}
}

func TestSettingsInvalidTheme(t *testing.T) {
	tmpDir := t.TempDir()
	sm := NewSettingsManager(filepath.Join(tmpDir, "config.toml"))

	// Invalid theme should default to "dark"
	if err := sm.SetTheme("invalid-theme"); err != nil {
		t.Fatalf("SetTheme('invalid') failed: %v", err)
	}

	theme, _ := sm.GetTheme()
	if theme != "dark" {
		t.Errorf("Expected invalid theme to default to 'dark', got '%s'", theme)
	}
}

func TestSettingsWebviewCacheModeDefault(t *testing.T) {
	tmpDir := t.TempDir()
	sm := NewSettingsManager(filepath.Join(tmpDir, "config.toml"))

	mode, err := sm.WebviewCacheMode()
	if err != nil {
		t.Fatalf("WebviewCacheMode failed: %v", err)
	}
	if mode != webviewcache.ModeAuto {
		t.Errorf("Expected default mode 'auto', got '%s'", mode)
	}
}

func TestSettingsSetWebviewCacheMode(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	sm := NewSettingsManager(configPath)
	if err := sm.SetWebviewCacheMode("never"); err != nil {
		t.Fatalf("SetWebviewCacheMode failed: %v", err)
	}

	// New manager simulates an app restart
	sm2 := NewSettingsManager(configPath)
	mode, err := sm2.WebviewCacheMode()
	if err != nil {
		t.Fatalf("WebviewCacheMode failed: %v", err)
	}
	if mode != webviewcache.ModeNever {
		t.Errorf("Expected persisted mode 'never', got '%s'", mode)
	}
}

func TestSettingsSetWebviewCacheModeRejectsUnknown(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	sm := NewSettingsManager(configPath)

	if err := sm.SetWebviewCacheMode("sometimes"); err == nil {
		t.Fatal("Expected error for unknown mode")
	}
	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Errorf("Config file should not be written for an invalid mode")
	}
}

func TestSettingsUnknownModeInFileFallsBackToAuto(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	content := `[desktop.webview_cache]
mode = "weekly"
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	mode, err := NewSettingsManager(configPath).WebviewCacheMode()
	if err != nil {
		t.Fatalf("WebviewCacheMode failed: %v", err)
	}
	if mode != webviewcache.ModeAuto {
		t.Errorf("Expected fallback mode 'auto', got '%s'", mode)
	}
}

func TestSettingsPreservesOtherSections(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	existing := `[supabase]
url = "https://example.supabase.co"

[desktop]
theme = "light"
`
	if err := os.WriteFile(configPath, []byte(existing), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	sm := NewSettingsManager(configPath)
	if err := sm.SetWebviewCacheMode("always"); err != nil {
		t.Fatalf("SetWebviewCacheMode failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "[supabase]") || !strings.Contains(content, "https://example.supabase.co") {
		t.Errorf("Other sections should be preserved, got:\n%s", content)
	}

	theme, _ := sm.GetTheme()
	if theme != "light" {
		t.Errorf("Expected theme 'light' to survive, got '%s'", theme)
	}
	mode, _ := sm.WebviewCacheMode()
	if mode != webviewcache.ModeAlways {
		t.Errorf("Expected mode 'always', got '%s'", mode)
	}
}

func TestSettingsCorruptedConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("this is not [valid toml"), 0600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	sm := NewSettingsManager(configPath)
	theme, err := sm.GetTheme()
	if err != nil {
		t.Fatalf("GetTheme should not fail on corrupt config: %v", err)
	}
	if theme != "dark" {
		t.Errorf("Expected default theme on corrupt config, got '%s'", theme)
	}
}
