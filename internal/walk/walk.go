// Package walk enumerates a directory tree contents-first: every
// descendant of a directory is yielded before the directory itself, so a
// caller may rename an entry without invalidating paths still to come.
package walk

import (
	"iter"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is one node produced by Enumerate. A non-nil Err marks a failed
// entry; Path then names the directory that could not be read.
type Entry struct {
	Path  string
	Depth int
	IsDir bool
	Err   error
}

// Enumerate walks root lazily. The root itself is never yielded as a
// normal entry. Without recurse only immediate children are produced.
// Directory contents are read in lexical order and symlinks are not
// followed.
func Enumerate(fsys afero.Fs, root string, recurse bool) iter.Seq[Entry] {
	maxDepth := 1
	if recurse {
		maxDepth = -1
	}
	return func(yield func(Entry) bool) {
		walkDir(fsys, root, 0, maxDepth, yield)
	}
}

func walkDir(fsys afero.Fs, dir string, depth, maxDepth int, yield func(Entry) bool) bool {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return yield(Entry{Path: dir, Depth: depth, IsDir: true, Err: err})
	}

	for _, info := range infos {
		path := filepath.Join(dir, info.Name())
		childDepth := depth + 1
		if info.IsDir() && (maxDepth < 0 || childDepth < maxDepth) {
			if !walkDir(fsys, path, childDepth, maxDepth, yield) {
				return false
			}
		}
		if !yield(Entry{Path: path, Depth: childDepth, IsDir: info.IsDir()}) {
			return false
		}
	}
	return true
}
