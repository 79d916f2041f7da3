package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupPath_FirstCandidate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := filepath.Join(dir, "file.txt")
	writeFile(t, original, "x")

	handler := newTestHandler(t, "")

	path, err := handler.BackupPath(original, ".bak")
	require.NoError(t, err)
	assert.Equal(t, original+".bak", path)

	path, err = handler.BackupPath(original, "")
	require.NoError(t, err)
	assert.Equal(t, original+"~", path)
}

func TestBackupPath_Numbered(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := filepath.Join(dir, "file.txt")
	writeFile(t, original, "x")
	writeFile(t, original+"~", "x")
	writeFile(t, original+".~1~", "x")

	handler := newTestHandler(t, "")

	path, err := handler.BackupPath(original, "~")

	require.NoError(t, err)
	assert.Equal(t, original+".~2~", path)
}

func TestBackupPath_DanglingSymlinkOccupies(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := filepath.Join(dir, "file.txt")
	writeFile(t, original, "x")
	require.NoError(t, os.Symlink("nowhere", original+"~"))

	handler := newTestHandler(t, "")

	path, err := handler.BackupPath(original, "~")

	require.NoError(t, err)
	assert.Equal(t, original+".~1~", path)
}

func TestBackupPath_NeverReturnsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := filepath.Join(dir, "file.txt")
	writeFile(t, original, "x")

	handler := newTestHandler(t, "")
	seen := make(map[string]struct{})

	for range 10 {
		path, err := handler.BackupPath(original, "~")
		require.NoError(t, err)

		_, err = os.Lstat(path)
		require.ErrorIs(t, err, os.ErrNotExist)

		_, dup := seen[path]
		require.False(t, dup, "backup path handed out twice: %s", path)
		seen[path] = struct{}{}

		writeFile(t, path, "x")
	}
}
