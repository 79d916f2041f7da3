package ui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

type dirProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

// listItem is one selectable row of the picker.
type listItem struct {
	name  string
	path  string
	isDir bool
	size  int64
}

func (i listItem) label() string {
	switch {
	case i.name == ".." || i.name == ".":
		return i.name
	case i.isDir:
		return i.name + "/"
	default:
		return fmt.Sprintf("%s (%s)", i.name, humanize.Bytes(uint64(i.size))) //nolint:gosec
	}
}

// readListing returns the rows for dir: the parent (unless dir is the root),
// dir itself, its sub-directories and, if withFiles is set, its files. The
// navigation rows are also returned when dir cannot be read.
func readListing(dirHandler dirProvider, dir string, withFiles bool) ([]listItem, error) {
	items := []listItem{}

	if parent := filepath.Dir(dir); parent != dir {
		items = append(items, listItem{name: "..", path: parent, isDir: true})
	}
	items = append(items, listItem{name: ".", path: dir, isDir: true})

	entries, err := dirHandler.ReadDir(dir)
	if err != nil {
		return items, fmt.Errorf("(ui-listing) %w", err)
	}

	var dirs, files []listItem

	for _, entry := range entries {
		item := listItem{
			name:  entry.Name(),
			path:  filepath.Join(dir, entry.Name()),
			isDir: entry.IsDir(),
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := dirHandler.Stat(item.path); err == nil {
				item.isDir = info.IsDir()
				item.size = info.Size()
			}
		} else if !item.isDir {
			if info, err := entry.Info(); err == nil {
				item.size = info.Size()
			}
		}

		if item.isDir {
			dirs = append(dirs, item)
		} else if withFiles {
			files = append(files, item)
		}
	}

	items = append(items, dirs...)
	items = append(items, files...)

	return items, nil
}
