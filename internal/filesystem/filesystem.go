// Package filesystem lists directories and confines paths to a root.
package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/taigrr/dirtree/internal/types"
)

// Operations recorded on an AccessError.
const (
	OpList = "list directory"
	OpStat = "stat"
)

// AccessError is the single class of filesystem failure: a missing path,
// a permission denial, a broken link or an I/O error while listing.
type AccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		if e.Op == OpList {
			return fmt.Sprintf("directory not found: %s", e.Path)
		}
		return fmt.Sprintf("path not found: %s", e.Path)
	case errors.Is(e.Err, fs.ErrPermission):
		return fmt.Sprintf("permission denied: %s", e.Path)
	default:
		return fmt.Sprintf("failed to %s: %s - %v", e.Op, e.Path, e.Err)
	}
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Service provides directory listing rooted at a directory.
type Service struct {
	root     string
	realRoot string
	confined bool
}

// New creates a new Service rooted at root. ReadDir follows every symlink.
func New(root string) *Service {
	absPath, _ := filepath.Abs(root)
	realRoot, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		realRoot = absPath
	}
	return &Service{root: absPath, realRoot: realRoot}
}

// NewConfined creates a Service whose ReadDir does not follow symlinks
// that resolve outside root. Such links are listed as plain entries.
func NewConfined(root string) *Service {
	s := New(root)
	s.confined = true
	return s
}

// Root returns the absolute root path.
func (s *Service) Root() string {
	return s.root
}

func escapes(relPath string) bool {
	return relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator))
}

// contains reports whether path, after following symlinks, is the root or
// lies below it.
func (s *Service) contains(path string) bool {
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	relPath, err := filepath.Rel(s.realRoot, realPath)
	if err != nil {
		return false
	}
	return !escapes(relPath)
}

// ResolvePath resolves a relative path within the root and validates it.
// Symlinks along the path must resolve within the root as well.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.root, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within root
	relPath, err := filepath.Rel(s.root, absPath)
	if err != nil {
		return "", err
	}
	if escapes(relPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	// Missing paths have nothing to follow; the caller reports them.
	if _, err := filepath.EvalSymlinks(absPath); err != nil {
		return absPath, nil
	}
	if !s.contains(absPath) {
		return "", fmt.Errorf("path traversal not allowed: %s", relativePath)
	}

	return absPath, nil
}

// ReadDir lists the immediate entries of dir in the order os.ReadDir
// returns them, which is sorted by filename.
//
// An entry is a directory when following it (symlinks included) lands on
// a directory. Everything else, broken links included, is a plain entry.
// A confined Service also lists links leading outside the root as plain
// entries.
func (s *Service) ReadDir(dir string) ([]types.DirectoryEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &AccessError{Op: OpList, Path: dir, Err: err}
	}

	result := make([]types.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		item := types.DirectoryEntry{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		}

		isLink := entry.Type()&fs.ModeSymlink != 0
		if entry.IsDir() || isLink {
			info, err := os.Stat(item.Path)
			followed := err == nil && info.IsDir()
			if followed && isLink && s.confined && !s.contains(item.Path) {
				followed = false
			}
			if followed {
				item.IsDir = true
				item.Info = info
			}
		}

		result = append(result, item)
	}

	return result, nil
}

// Stat returns the followed file info for path.
func (s *Service) Stat(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &AccessError{Op: OpStat, Path: path, Err: err}
	}
	return info, nil
}

// ListDirectory lists files and directories of a directory under the root.
func (s *Service) ListDirectory(path string) (types.DirectoryListing, error) {
	// Normalize path: treat '.' as root directory
	if path == "." {
		path = ""
	}

	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return types.DirectoryListing{}, err
	}

	entries, err := s.ReadDir(fullPath)
	if err != nil {
		return types.DirectoryListing{}, err
	}

	files := []string{}
	directories := []string{}
	for _, entry := range entries {
		if entry.IsDir {
			directories = append(directories, entry.Name)
		} else {
			files = append(files, entry.Name)
		}
	}

	return types.DirectoryListing{
		Files:       files,
		Directories: directories,
	}, nil
}
