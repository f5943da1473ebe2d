// FILE: logfan/src/internal/sink/dirs.go
package sink

import (
	"os"
	"path/filepath"
	"strings"

	"logfan/src/internal/core"
)

// DirTree lazily creates the directory hierarchy for hierarchical source
// names under the logs root. Fully-resolved source names are memoized so
// repeated entries for the same source never re-touch the filesystem.
// Only the single pipeline worker calls Ensure, so no locking is needed.
type DirTree struct {
	root  string
	seen  map[string]struct{}
	mkdir func(path string) error
}

// NewDirTree creates a resolver rooted at the logs directory.
func NewDirTree(root string) *DirTree {
	return &DirTree{
		root: root,
		seen: make(map[string]struct{}),
		mkdir: func(path string) error {
			return os.MkdirAll(path, 0o755)
		},
	}
}

// Ensure creates every missing directory prefix of the source name, e.g.
// source "a/b/c" yields logs/a/ and logs/a/b/. "Already exists" is not an
// error. Directory state persists for the process lifetime regardless of
// how often the source is registered.
func (d *DirTree) Ensure(source string) error {
	if _, ok := d.seen[source]; ok {
		return nil
	}

	for i := 0; i < len(source); i++ {
		if source[i] != '/' {
			continue
		}
		dir := filepath.Join(d.root, filepath.FromSlash(source[:i]))
		if err := d.mkdir(dir); err != nil {
			return err
		}
	}

	d.seen[source] = struct{}{}
	return nil
}

// SourcePath returns the log file path for a source, path separators in the
// source becoming directory separators.
func (d *DirTree) SourcePath(source string) string {
	return filepath.Join(d.root, filepath.FromSlash(strings.TrimPrefix(source, "/"))+core.LogFileExt)
}
