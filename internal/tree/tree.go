// Package tree renders a directory as an indented tree.
//
// Each entry is written as one line: directories as "{indent}├── {name}/",
// everything else as "{indent}├── {name}". The indent grows by four spaces
// per level. Traversal is pre-order depth-first: a directory's line comes
// first, then its whole subtree, then the next sibling.
package tree

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/taigrr/dirtree/internal/types"
)

const (
	// Branch prefixes every entry name.
	Branch = "├── "
	// IndentUnit is appended to the indent for each level of depth.
	IndentUnit = "    "
)

// Lister lists directories for the renderer.
type Lister interface {
	ReadDir(path string) ([]types.DirectoryEntry, error)
	Stat(path string) (fs.FileInfo, error)
}

// Renderer writes directory trees.
type Renderer struct {
	lister Lister
	log    logrus.FieldLogger
}

// New creates a Renderer. A nil logger discards diagnostics.
func New(lister Lister, log logrus.FieldLogger) *Renderer {
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Renderer{lister: lister, log: log}
}

// Render writes the tree under path to w, prefixing every line with
// indent. Callers pass "" for the root.
//
// The first listing failure aborts the walk and is returned; lines already
// written stay written. A directory that is its own ancestor (a symlink
// loop) is written but not descended into.
func (r *Renderer) Render(ctx context.Context, w io.Writer, path, indent string) error {
	info, err := r.lister.Stat(path)
	if err != nil {
		return err
	}
	return r.walk(ctx, w, path, indent, []fs.FileInfo{info})
}

func (r *Renderer) walk(ctx context.Context, w io.Writer, path, indent string, ancestors []fs.FileInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := r.lister.ReadDir(path)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir {
			if err := writeLine(w, indent, entry.Name, false); err != nil {
				return err
			}
			continue
		}

		if err := writeLine(w, indent, entry.Name, true); err != nil {
			return err
		}

		if isAncestor(entry.Info, ancestors) {
			r.log.WithField("path", entry.Path).Warn("skipping directory cycle")
			continue
		}

		r.log.WithField("path", entry.Path).Debug("descending")
		if err := r.walk(ctx, w, entry.Path, indent+IndentUnit, append(ancestors, entry.Info)); err != nil {
			return err
		}
	}

	return nil
}

func isAncestor(info fs.FileInfo, ancestors []fs.FileInfo) bool {
	if info == nil {
		return false
	}
	for _, a := range ancestors {
		if os.SameFile(info, a) {
			return true
		}
	}
	return false
}

// Line formats a single entry without the trailing newline.
func Line(indent, name string, isDir bool) string {
	if isDir {
		return indent + Branch + name + "/"
	}
	return indent + Branch + name
}

func writeLine(w io.Writer, indent, name string, isDir bool) error {
	if _, err := fmt.Fprintln(w, Line(indent, name, isDir)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
