package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
)

// Exists is a helper function checking if a path is occupied. Symbolic links
// are not followed, so a dangling symbolic link also occupies its path.
func (f *Handler) Exists(path string) (bool, error) {
	if _, err := f.osHandler.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-exists) %w", err)
	}

	return true, nil
}

// IsDir is a helper function checking if a path currently is a directory,
// following symbolic links. A missing path is not a directory.
func (f *Handler) IsDir(path string) (bool, error) {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(fs-isdir) %w", err)
	}

	return info.IsDir(), nil
}
