package io

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/golnk/internal/schema"
	"golang.org/x/sys/unix"
)

// EnsureParentDirs creates every missing directory on the way to the parent
// of path, outermost first. Directories appearing concurrently are accepted.
func (i *Handler) EnsureParentDirs(path string) error {
	var missing []string

	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		exists, err := i.fsHandler.Exists(dir)
		if err != nil {
			return schema.NewError("io-mkdir", dir, err)
		}
		if exists {
			break
		}

		missing = append(missing, dir)

		if filepath.Dir(dir) == dir {
			break
		}
	}

	for idx := len(missing) - 1; idx >= 0; idx-- {
		if err := i.unixHandler.Mkdir(missing[idx], dirPerms); err != nil {
			if errors.Is(err, unix.EEXIST) {
				continue
			}

			return schema.NewError("io-mkdir", missing[idx], err)
		}

		slog.Debug("Created directory", "path", missing[idx])
	}

	return nil
}
