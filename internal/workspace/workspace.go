// Package workspace provides utilities for finding the workspace root directory.
package workspace

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/wellmaintained/git-root/internal/config"
	"github.com/wellmaintained/git-root/internal/errors"
	"golang.org/x/text/encoding/unicode"
)

// waitDelay bounds how long Wait keeps draining pipes once git has exited or
// been killed, in case a grandchild still holds stdout open.
const waitDelay = time.Second

var showToplevelArgs = []string{"rev-parse", "--show-toplevel"}

// Finder resolves the top-level directory of a git work tree.
type Finder struct {
	cfg *config.Config
}

// NewFinder creates a Finder. A nil cfg means config.Default().
func NewFinder(cfg *config.Config) *Finder {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Finder{cfg: cfg}
}

// FindRoot runs `git rev-parse --show-toplevel` once and returns its standard
// output decoded as UTF-8, trailing newline included. Each byte that does not
// start a valid sequence becomes one U+FFFD.
//
// Any failure, whether a non-zero exit, a missing git binary or an expired
// timeout, is reported as *errors.NotInRepositoryError. Git's stderr is only
// logged at debug level.
func (f *Finder) FindRoot(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.cfg.Git(), showToplevelArgs...)
	cmd.Dir = f.cfg.Dir
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		slog.Debug("git rev-parse failed",
			"git", f.cfg.Git(),
			"dir", f.cfg.Dir,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
			"stderr", strings.TrimSpace(stderr.String()))
		return "", errors.NewNotInRepositoryError(err)
	}

	slog.Debug("git rev-parse completed",
		"git", f.cfg.Git(),
		"dir", f.cfg.Dir,
		"duration_ms", time.Since(start).Milliseconds())

	root, err := unicode.UTF8.NewDecoder().Bytes(stdout.Bytes())
	if err != nil {
		return "", errors.NewNotInRepositoryError(err)
	}
	return string(root), nil
}
