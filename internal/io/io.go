// Package io implements the mutating side of the linking pipeline: creating
// the destination's directory chain, clearing pre-existing destinations by
// backup or removal, and finally creating the hard or symbolic links.
package io

import (
	"os"
)

type fsProvider interface {
	BackupPath(original string, suffix string) (string, error)
	Exists(path string) (bool, error)
}

type osProvider interface {
	EvalSymlinks(path string) (string, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

type unixProvider interface {
	Link(oldpath, newpath string) error
	Mkdir(path string, mode uint32) error
	Symlink(oldpath, newpath string) error
}

// Handler is the principal implementation for the IO services.
type Handler struct {
	fsHandler   fsProvider
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new IO [Handler].
func NewHandler(fsHandler fsProvider, osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		fsHandler:   fsHandler,
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// dirPerms are the permissions missing parent directories are created with,
// before the process umask applies.
const dirPerms = uint32(os.ModePerm)
