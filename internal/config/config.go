// Package config provides configuration management for git-root.
package config

import "time"

// DefaultGitPath is the git executable looked up on PATH when GitPath is empty.
const DefaultGitPath = "git"

// Config controls how the repository root is resolved.
type Config struct {
	// Dir is the working directory of the git child process.
	// Empty means the current process's working directory.
	Dir string
	// GitPath is the git executable to run. Empty means DefaultGitPath.
	GitPath string
	// Timeout bounds the wait for git. Zero waits without a bound.
	Timeout time.Duration
}

// Default returns the configuration used by the git-root command:
// current directory, git from PATH, no timeout.
func Default() *Config {
	return &Config{}
}

// Git returns the executable to run, falling back to DefaultGitPath.
func (c *Config) Git() string {
	if c.GitPath == "" {
		return DefaultGitPath
	}
	return c.GitPath
}
