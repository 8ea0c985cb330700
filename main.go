// Package main is the entry point for git-root CLI application.
package main

import (
	"os"

	"github.com/wellmaintained/git-root/cmd"
	"github.com/wellmaintained/git-root/internal/errors"
	"github.com/wellmaintained/git-root/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Error("Error: %v\n", err)
		os.Exit(errors.GetExitCode(err))
	}
}
