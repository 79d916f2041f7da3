package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/golnk/internal/filesystem"
	"github.com/desertwitch/golnk/internal/schema"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, workDir string) *filesystem.Handler {
	t.Helper()

	osProvider := &schema.OS{}

	return filesystem.NewHandler(osProvider, osProvider, workDir)
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
