package schema

import (
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Lstat wraps around [os.Lstat].
func (*OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Rename wraps around [os.Rename].
func (*OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// EvalSymlinks wraps around [filepath.EvalSymlinks].
func (*OS) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// WalkDir wraps around [filepath.WalkDir].
func (*OS) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Link wraps around [unix.Linkat]. A symbolic link at oldpath is followed, so
// the new link always refers to the target file.
func (*Unix) Link(oldpath, newpath string) error {
	return unix.Linkat(unix.AT_FDCWD, oldpath, unix.AT_FDCWD, newpath, unix.AT_SYMLINK_FOLLOW)
}

// Symlink wraps around [unix.Symlink].
func (*Unix) Symlink(oldpath, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}

// Mkdir wraps around [unix.Mkdir].
func (*Unix) Mkdir(path string, mode uint32) error {
	return unix.Mkdir(path, mode)
}
