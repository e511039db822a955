package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// TreeInput contains parameters for rendering a tree.
	TreeInput struct {
		Path   string `json:"path,omitempty" jsonschema:"Directory to render, relative to the server root (default: root)"`
		Offset int    `json:"offset,omitempty" jsonschema:"Line offset to start from (default: 0)"`
		Limit  int    `json:"limit,omitempty" jsonschema:"Maximum number of lines to return (default: server setting, else all)"`
	}

	// TreeOutput contains a rendered tree.
	TreeOutput struct {
		Root       string `json:"root"`
		Path       string `json:"path"`
		URI        string `json:"uri"`
		Tree       string `json:"tree"`
		TotalLines int    `json:"totalLines"`
		Truncated  bool   `json:"truncated,omitempty"`
	}

	// ListInput contains parameters for listing a directory.
	ListInput struct {
		Path string `json:"path,omitempty" jsonschema:"Directory to list, relative to the server root (default: root)"`
	}

	// ListOutput contains the entries of one directory.
	ListOutput struct {
		Path        string   `json:"path"`
		Files       []string `json:"files"`
		Directories []string `json:"directories"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "tree",
		Description: "Render a directory and everything below it as an indented tree. Directories end with '/', each level adds four spaces. Supports pagination with offset/limit for large trees.",
	}, handleTree)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list",
		Description: "List the immediate files and subdirectories of a directory.",
	}, handleList)
}
