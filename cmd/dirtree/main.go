// Package main implements the dirtree command.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/dirtree/internal/config"
	"github.com/taigrr/dirtree/internal/filesystem"
	"github.com/taigrr/dirtree/internal/logging"
	"github.com/taigrr/dirtree/internal/tree"
	"github.com/taigrr/dirtree/internal/version"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCommand(),
		fang.WithVersion(version.Get()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dirtree [path]",
		Short: "Print a directory as an indented tree",
		Long: `dirtree recursively prints the contents of a directory as an
indented tree. Directories are marked with a trailing slash and
each level of nesting adds four spaces of indentation.

The path defaults to the root set in the config file, or the
current directory.`,
		Example:      `dirtree ~/src/project`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	path := cfg.StartPath(args)
	renderer := tree.New(filesystem.New(path), log)

	// Flush on every path so lines written before a failure still appear.
	out := bufio.NewWriter(cmd.OutOrStdout())
	renderErr := renderer.Render(cmd.Context(), out, path, "")
	if err := out.Flush(); err != nil && renderErr == nil {
		renderErr = fmt.Errorf("failed to write output: %w", err)
	}

	return renderErr
}
