// Package cmd defines the command-line interface for git-root.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/wellmaintained/git-root/internal/config"
	"github.com/wellmaintained/git-root/internal/workspace"
)

// rootFinder resolves the repository root; tests swap it for one aimed at a fixture.
type rootFinder interface {
	FindRoot(ctx context.Context) (string, error)
}

var finder rootFinder = workspace.NewFinder(config.Default())

var rootCmd = &cobra.Command{
	Use:   "git-root",
	Short: "Print the top-level directory of the current git repository",
	Long: `Print the top-level directory of the git repository containing the
current working directory, exactly as reported by
"git rev-parse --show-toplevel".

git-root takes no flags or arguments; anything passed is ignored.
Outside a repository it fails with "Not in a valid git repo".`,
	Example: `  # Jump to the repository root
  cd "$(git-root)"`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd.Context(), cmd.OutOrStdout())
	},
}

func runRoot(ctx context.Context, out io.Writer) error {
	root, err := finder.FindRoot(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, root)
	return err
}

// Execute runs the root CLI command. argv is discarded before cobra sees it,
// so words like "completion" or "__complete" cannot route to cobra's
// built-in commands.
func Execute() error {
	rootCmd.SetArgs([]string{})
	return rootCmd.Execute()
}
