package io

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/golnk/internal/schema"
)

// CreateLink is the principal method for linking a single [schema.Entry] to
// its destination path. A pre-existing destination is backed up, removed or
// reported as [schema.ErrAlreadyExists], in this order of preference, except
// for directories in symbolic mode which are linked without this guard. The
// created link's path is returned.
func (i *Handler) CreateLink(entry schema.Entry, dest string, opts schema.LinkOptions) (string, error) {
	opts = opts.Normalized()

	if !entry.IsDir() || !opts.Symbolic {
		if err := i.clearDestination(dest, opts); err != nil {
			return "", err
		}
	}

	if opts.Symbolic {
		if err := i.createSymlink(entry, dest, opts.Relative); err != nil {
			return "", err
		}

		return dest, nil
	}

	if err := i.createHardlink(entry, dest); err != nil {
		return "", err
	}

	return dest, nil
}

// clearDestination makes way for a new link at dest according to the
// overwrite policy of the given options. A free dest is left alone.
func (i *Handler) clearDestination(dest string, opts schema.LinkOptions) error {
	exists, err := i.fsHandler.Exists(dest)
	if err != nil {
		return schema.NewError("io-check", dest, err)
	}
	if !exists {
		return nil
	}

	switch {
	case opts.Backup:
		backupPath, err := i.fsHandler.BackupPath(dest, opts.BackupSuffix)
		if err != nil {
			return fmt.Errorf("(io-backup) failed to find backup path: %w", err)
		}

		if err := i.osHandler.Rename(dest, backupPath); err != nil {
			return schema.NewError("io-backup", backupPath, err)
		}

		slog.Debug("Backed up existing destination",
			"path", dest,
			"backup", backupPath,
		)

	case opts.Force:
		if err := i.osHandler.Remove(dest); err != nil {
			return schema.NewError("io-force", dest, err)
		}

		slog.Debug("Removed existing destination", "path", dest)

	default:
		return schema.NewKindError(schema.ErrAlreadyExists, "io-link", dest, ErrDestinationExists)
	}

	return nil
}

func (i *Handler) createSymlink(entry schema.Entry, dest string, relative bool) error {
	target := entry.Path

	if relative {
		relTarget, err := i.relativeTarget(entry.AbsPath, dest)
		if err != nil {
			return err
		}
		target = relTarget
	}

	if err := i.unixHandler.Symlink(target, dest); err != nil {
		return schema.NewError("io-symlink", dest, err)
	}

	slog.Debug("Created symbolic link",
		"path", dest,
		"target", target,
	)

	return nil
}

func (i *Handler) createHardlink(entry schema.Entry, dest string) error {
	if err := i.unixHandler.Link(entry.AbsPath, dest); err != nil {
		return schema.NewError("io-hardlink", dest, err)
	}

	slog.Debug("Created hard link",
		"path", dest,
		"source", entry.AbsPath,
	)

	return nil
}

// relativeTarget returns the path leading from the directory of dest to
// source, with both sides canonicalized first.
func (i *Handler) relativeTarget(source string, dest string) (string, error) {
	canonicalSource, err := i.osHandler.EvalSymlinks(source)
	if err != nil {
		return "", schema.NewError("io-relative", source, err)
	}

	destDir := filepath.Dir(dest)

	canonicalDir, err := i.osHandler.EvalSymlinks(destDir)
	if err != nil {
		return "", schema.NewError("io-relative", destDir, err)
	}

	target, err := filepath.Rel(canonicalDir, canonicalSource)
	if err != nil {
		return "", schema.NewKindError(schema.ErrInvalidPath, "io-relative", source, err)
	}

	return target, nil
}
