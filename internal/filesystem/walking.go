package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/desertwitch/golnk/internal/schema"
)

// WalkFunc is called by [Handler.Walk] for every reported [schema.Entry]. A
// returned error stops the walk and is returned by [Handler.Walk] unchanged.
type WalkFunc func(entry schema.Entry) error

// Walk traverses root depth-first in pre-order, a directory being reported
// before its children, and calls fn for every element. A directory root is
// itself never reported, a file root is reported once. Relative paths are
// computed against base. A root that is a symbolic link is followed, so it is
// walked as a directory or reported as a file depending on its target. Any
// deeper symbolic links are reported as [schema.EntryOther].
func (f *Handler) Walk(root string, base string, fn WalkFunc) error {
	absRoot := f.Resolve(root)
	absBase := f.Resolve(base)

	info, err := f.osHandler.Lstat(absRoot)
	if err != nil {
		return schema.NewError("fs-walk", root, err)
	}

	walkRoot := absRoot
	rootKind := entryKind(info.Mode().Type())

	if info.Mode()&fs.ModeSymlink != 0 {
		if target, err := f.osHandler.Stat(absRoot); err == nil {
			switch {
			case target.IsDir():
				walkRoot = absRoot + string(filepath.Separator)
			case target.Mode().IsRegular():
				rootKind = schema.EntryFile
			}
		}
	}

	return f.fileWalkHandler.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return schema.NewError("fs-walk", path, err)
		}

		kind := entryKind(d.Type())
		if path == walkRoot {
			if kind == schema.EntryDirectory {
				return nil
			}
			kind = rootKind
		}

		absPath := filepath.Clean(path)

		relPath, err := filepath.Rel(absBase, absPath)
		if err != nil {
			return schema.NewKindError(schema.ErrInvalidPath, "fs-walk", path, fmt.Errorf("%w: %w", ErrNotRelative, err))
		}
		if relPath == "." {
			relPath = ""
		}

		subPath, err := filepath.Rel(absRoot, absPath)
		if err != nil {
			return schema.NewKindError(schema.ErrInvalidPath, "fs-walk", path, fmt.Errorf("%w: %w", ErrNotRelative, err))
		}

		givenPath := root
		if subPath != "." {
			givenPath = filepath.Join(root, subPath)
		}

		return fn(schema.Entry{
			Path:    givenPath,
			AbsPath: absPath,
			RelPath: relPath,
			Kind:    kind,
		})
	})
}

func entryKind(mode fs.FileMode) schema.EntryKind {
	switch {
	case mode.IsDir():
		return schema.EntryDirectory
	case mode.IsRegular():
		return schema.EntryFile
	default:
		return schema.EntryOther
	}
}
