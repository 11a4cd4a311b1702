package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrFolderUnreadable is returned when the scan root cannot be listed.
var ErrFolderUnreadable = errors.New("unable to read input folder")

// Scan lists root and returns the image files that pass filter, keyed by
// absolute path in directory order. With recursive set, subdirectories are
// walked depth-first and their files merged in place. Only a failure to list
// root itself is an error; unreadable subdirectories contribute nothing.
func Scan(root string, recursive bool, filter Filter) (FileSet, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return FileSet{}, fmt.Errorf("%w: %s: %v", ErrFolderUnreadable, root, err)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return FileSet{}, fmt.Errorf("%w: %s: %v", ErrFolderUnreadable, root, err)
	}

	w := &walker{
		recursive: recursive,
		filter:    filter,
		visited:   make(map[string]struct{}),
	}
	w.enter(abs)

	return w.collect(abs, entries), nil
}

type walker struct {
	recursive bool
	filter    Filter
	visited   map[string]struct{}
}

// enter records dir by its resolved path and reports whether it was new.
func (w *walker) enter(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return false
	}
	if _, seen := w.visited[resolved]; seen {
		return false
	}
	w.visited[resolved] = struct{}{}
	return true
}

func (w *walker) dir(path string) FileSet {
	entries, err := os.ReadDir(path)
	if err != nil {
		slog.Debug("Skipping unreadable folder", "path", path, "error", err)
		return NewFileSet()
	}
	return w.collect(path, entries)
}

func (w *walker) collect(dir string, entries []fs.DirEntry) FileSet {
	set := NewFileSet()

	for _, entry := range entries {
		full := filepath.Join(dir, entry.Name())

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(full)
			if err != nil {
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if !w.recursive || !w.enter(full) {
				continue
			}
			set.Merge(w.dir(full))
		case mode.IsRegular():
			d, err := Describe(full)
			if err != nil {
				slog.Debug("Skipping vanished file", "path", full, "error", err)
				continue
			}
			if w.filter.Match(d) {
				set.Add(d)
			}
		}
	}

	return set
}
