// Package main implements the MCP server exposing directory trees.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/dirtree/internal/config"
	"github.com/taigrr/dirtree/internal/filesystem"
	"github.com/taigrr/dirtree/internal/logging"
	"github.com/taigrr/dirtree/internal/tree"
	"github.com/taigrr/dirtree/internal/version"
)

var (
	fileSystem *filesystem.Service
	renderer   *tree.Renderer
	maxLines   int
)

func main() {
	cmd := &cobra.Command{
		Use:   "dirtree-mcp [root]",
		Short: "MCP server for directory trees",
		Long: `dirtree-mcp is a Model Context Protocol (MCP) server that renders
directory trees and lists directories below a root directory.
Requests cannot reach outside the root.`,
		Example: `dirtree-mcp ~/src`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runServer,
	}

	if err := fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(version.Get()),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root, err := serverRoot(cfg, args)
	if err != nil {
		return err
	}

	// stdout belongs to the transport
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	// Initialize services
	fileSystem = filesystem.NewConfined(root)
	renderer = tree.New(fileSystem, log)
	maxLines = cfg.MCP.MaxLines

	log.WithField("root", fileSystem.Root()).Info("serving directory trees")

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "dirtree-mcp",
		Version: version.Get(),
	}, nil)

	registerTools(server)

	if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}

// serverRoot picks the positional argument, then mcp.root from the
// config, then the working directory.
func serverRoot(cfg config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.MCP.Root != "" {
		return cfg.MCP.Root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return wd, nil
}
