package testutil

import (
	"bytes"
	"log/slog"
	"testing"
)

// CaptureDebugLog routes the default slog logger, at debug level, into a
// buffer for the rest of the test. Finder diagnostics such as git's stderr
// only appear there.
func CaptureDebugLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	previous := slog.Default()
	buf := new(bytes.Buffer)
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	slog.SetDefault(slog.New(handler))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return buf
}
