package filesystem_test

import (
	"testing"

	"github.com/desertwitch/golnk/internal/filesystem"
	"github.com/desertwitch/golnk/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestWalkBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/src/dir", filesystem.WalkBase("/src/dir", false, true))
	assert.Equal(t, "/src/dir", filesystem.WalkBase("/src/dir", true, false))
	assert.Equal(t, "/src", filesystem.WalkBase("/src/dir", true, true))
	assert.Equal(t, ".", filesystem.WalkBase("a.txt", true, true))
}

func TestDestinationPath_SingleFileIntoDirectory(t *testing.T) {
	t.Parallel()

	entry := schema.Entry{Path: "/src/file.txt", Kind: schema.EntryFile}

	assert.Equal(t, "/dst/file.txt", filesystem.DestinationPath(entry, "/dst", true))
}

func TestDestinationPath_SingleFileRenamed(t *testing.T) {
	t.Parallel()

	entry := schema.Entry{Path: "/src/file.txt", Kind: schema.EntryFile}

	assert.Equal(t, "/dst/other.txt", filesystem.DestinationPath(entry, "/dst/other.txt", false))
}

func TestDestinationPath_Nested(t *testing.T) {
	t.Parallel()

	entry := schema.Entry{Path: "/src/sub/f.txt", RelPath: "sub/f.txt", Kind: schema.EntryFile}

	assert.Equal(t, "/dst/sub/f.txt", filesystem.DestinationPath(entry, "/dst", true))
	assert.Equal(t, "/new/sub/f.txt", filesystem.DestinationPath(entry, "/new", false))
}
