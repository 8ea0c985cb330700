// Package testutil provides shared fixtures for tests that spawn git.
package testutil

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-git/go-git/v5"
)

// SkipIfNoGit skips the test if git is not available.
func SkipIfNoGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH, skipping")
	}
}

// SkipIfNoShell skips the test on platforms without /bin/sh.
func SkipIfNoShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake git scripts need /bin/sh, skipping")
	}
}

// ResolvePath resolves symlinks (e.g. /var -> /private/var on macOS) so that
// paths match git's output, which always reports the resolved location.
// Returns the original path if resolution fails.
func ResolvePath(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		slog.Debug("EvalSymlinks failed, using original path", "path", path, "error", err)
		return path
	}
	return resolved
}

// IsolatedDir returns a fresh temporary directory that git will not treat as
// part of any enclosing repository. GIT_CEILING_DIRECTORIES stops git's
// upward search at the directory's parent for the rest of the test.
func IsolatedDir(t *testing.T) string {
	t.Helper()
	dir := ResolvePath(t.TempDir())
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	// Set by git when tests run from a hook; they would override discovery.
	for _, key := range []string{"GIT_DIR", "GIT_WORK_TREE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

// CreateTempGitRepo initializes an empty repository with go-git in an
// isolated temporary directory and returns its resolved path.
func CreateTempGitRepo(t *testing.T) string {
	t.Helper()
	dir := IsolatedDir(t)
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("failed to init repo at %s: %v", dir, err)
	}
	return dir
}

// Mkdir creates a nested directory under root and returns its path.
func Mkdir(t *testing.T, root string, elem ...string) string {
	t.Helper()
	dir := filepath.Join(append([]string{root}, elem...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	return dir
}

// WriteFakeGit writes an executable /bin/sh script standing in for git and
// returns its path.
func WriteFakeGit(t *testing.T, body string) string {
	t.Helper()
	SkipIfNoShell(t)
	path := filepath.Join(t.TempDir(), "git")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("failed to write fake git: %v", err)
	}
	return path
}
