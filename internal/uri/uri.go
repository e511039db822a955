// Package uri provides file URI generation.
package uri

import (
	"net/url"
	"path/filepath"
	"strings"
)

// GenerateFileURI generates a file URI for a path relative to root.
// Uses the absolute path format: file:///absolute/path/to/dir
func GenerateFileURI(root, relPath string) string {
	cleanPath := strings.TrimPrefix(filepath.ToSlash(relPath), "/")

	absolutePath := strings.TrimSuffix(filepath.ToSlash(root), "/")
	if cleanPath != "" && cleanPath != "." {
		absolutePath += "/" + cleanPath
	}

	// URI encode the path, but keep slashes as slashes
	parts := strings.Split(absolutePath, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	encodedPath := strings.Join(parts, "/")

	// Remove leading slash since we add file:/// prefix
	encodedPath = strings.TrimPrefix(encodedPath, "/")

	return "file:///" + encodedPath
}
