// Package ui provides user interface utilities for git-root, including
// colored output functions that respect NO_COLOR environment variable and TTY detection.
package ui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var stderr io.Writer = os.Stderr

// stderrIsTerminal reports whether stderr is a terminal. color.NoColor only
// inspects stdout, which git-root pipes far more often than stderr.
func stderrIsTerminal() bool {
	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newStderrColor(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if os.Getenv("NO_COLOR") != "" || !stderrIsTerminal() {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

// Error prints a red-colored message to stderr.
// Respects NO_COLOR environment variable and TTY detection.
func Error(format string, args ...interface{}) {
	newStderrColor(color.FgRed).Fprintf(stderr, format, args...)
}
