// Package types defines the data structures shared across dirtree.
package types

import "io/fs"

type (
	// DirectoryEntry is one immediate entry of a listed directory.
	DirectoryEntry struct {
		Name  string
		Path  string
		IsDir bool
		// Info is the followed stat result for directories and is used as
		// the directory's physical identity. Nil for everything else.
		Info fs.FileInfo
	}

	// DirectoryListing contains the files and directories in a directory.
	DirectoryListing struct {
		Files       []string `json:"files"`
		Directories []string `json:"directories"`
	}
)
