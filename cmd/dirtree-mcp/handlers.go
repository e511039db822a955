package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/dirtree/internal/uri"
)

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "." {
		return ""
	}
	return path
}

func handleTree(ctx context.Context, req *mcp.CallToolRequest, input TreeInput) (*mcp.CallToolResult, TreeOutput, error) {
	path := normalizePath(input.Path)

	fullPath, err := fileSystem.ResolvePath(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, TreeOutput{}, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(ctx, &buf, fullPath, ""); err != nil {
		return &mcp.CallToolResult{IsError: true}, TreeOutput{}, err
	}

	var lines []string
	if buf.Len() > 0 {
		lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	}
	totalLines := len(lines)

	output := TreeOutput{
		Root:       fileSystem.Root(),
		Path:       path,
		URI:        uri.GenerateFileURI(fileSystem.Root(), path),
		TotalLines: totalLines,
	}

	offset := max(input.Offset, 0)
	if offset >= totalLines {
		output.Truncated = totalLines > 0
		return nil, output, nil
	}

	limit := input.Limit
	if limit <= 0 {
		limit = maxLines
	}
	if limit <= 0 {
		limit = totalLines
	}

	if limit > totalLines-offset {
		limit = totalLines - offset
	}
	endIdx := offset + limit
	output.Truncated = offset > 0 || endIdx < totalLines

	output.Tree = strings.Join(lines[offset:endIdx], "\n") + "\n"

	return nil, output, nil
}

func handleList(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	path := normalizePath(input.Path)

	listing, err := fileSystem.ListDirectory(path)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, ListOutput{Path: path}, err
	}

	return nil, ListOutput{
		Path:        path,
		Files:       listing.Files,
		Directories: listing.Directories,
	}, nil
}
