package filesystem

import (
	"path/filepath"

	"github.com/desertwitch/golnk/internal/schema"
)

// WalkBase returns the base a source root is walked against. Roots coming
// from a wildcard expansion into an existing directory are walked against
// their parent, so that their own names are kept below the destination.
func WalkBase(root string, wildcard bool, destIsDir bool) string {
	if wildcard && destIsDir {
		return filepath.Dir(root)
	}

	return root
}

// DestinationPath returns the path a [schema.Entry] is to be linked at. A
// single-file root lands inside an existing destination directory under its
// own name, or at the destination itself otherwise. All other entries keep
// their relative path below the destination.
func DestinationPath(entry schema.Entry, dest string, destIsDir bool) string {
	if entry.RelPath == "" {
		if destIsDir {
			return filepath.Join(dest, filepath.Base(entry.Path))
		}

		return dest
	}

	return filepath.Join(dest, entry.RelPath)
}
