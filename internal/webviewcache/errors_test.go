package webviewcache

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

func TestDescribe(t *testing.T) {
	cause := &fs.PathError{Op: "unlinkat", Path: `C:\app\EBWebView`, Err: fs.ErrPermission}
	err := zerr.With(zerr.Wrap(withState(ioError("remove", `C:\app\EBWebView`, cause), StatePurge), "outer"), "version", "1.2.0")

	got := describe(err)
	assert.Contains(t, got, "outer: filesystem operation failed: unlinkat")
	assert.Contains(t, got, `(op=remove path=C:\app\EBWebView stage=purge version=1.2.0)`)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestDescribe_PlainError(t *testing.T) {
	assert.Equal(t, "boom", describe(errors.New("boom")))
}

func TestPathResolutionError(t *testing.T) {
	err := pathResolutionError("local-data", nil)
	assert.ErrorIs(t, err, ErrPathResolution)
	assert.Contains(t, err.Error(), "empty path")
}
