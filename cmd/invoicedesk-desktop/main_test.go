package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/myrison/invoicedesk/internal/webviewcache"
)

func TestWebviewUserDataPath_UsesGuardDirectory(t *testing.T) {
	result := webviewcache.Result{Report: webviewcache.Report{LocalDataDir: `C:\Users\me\AppData\Local\com.invoicedesk.app`}}
	assert.Equal(t, `C:\Users\me\AppData\Local\com.invoicedesk.app`, webviewUserDataPath(result))
}

func TestWebviewUserDataPath_ResolvesWhenGuardSkipped(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	path := webviewUserDataPath(webviewcache.Result{Strategy: "noop"})
	assert.Contains(t, path, "com.invoicedesk.app")
}
