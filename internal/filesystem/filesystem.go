// Package filesystem implements the read-only side of the linking pipeline:
// expanding source patterns, walking source roots, mapping traversal entries
// to their destinations and finding unused backup names.
package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

type osProvider interface {
	Lstat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

type fsWalkProvider interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// Handler is the principal implementation for the filesystem services. All
// relative paths given to it are interpreted against its working directory,
// never against the working directory of the process.
type Handler struct {
	osHandler       osProvider
	fileWalkHandler fsWalkProvider
	workDir         string
}

// NewHandler returns a pointer to a new filesystem [Handler]. An empty
// workDir leaves relative paths to the operating system.
func NewHandler(osHandler osProvider, fileWalkHandler fsWalkProvider, workDir string) *Handler {
	return &Handler{
		osHandler:       osHandler,
		fileWalkHandler: fileWalkHandler,
		workDir:         workDir,
	}
}

// WorkDir returns the working directory relative paths are resolved against.
func (f *Handler) WorkDir() string {
	return f.workDir
}

// Resolve returns a path resolved against the working directory of the
// [Handler]. Absolute paths are returned cleaned but otherwise unchanged.
func (f *Handler) Resolve(path string) string {
	if filepath.IsAbs(path) || f.workDir == "" {
		return filepath.Clean(path)
	}

	return filepath.Join(f.workDir, path)
}
