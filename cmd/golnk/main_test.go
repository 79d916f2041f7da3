package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/golnk/internal/filesystem"
	"github.com/desertwitch/golnk/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupWorkDir creates: work/{src/{a.txt, sub/b.txt}, dst/, golnk.env}.
func setupWorkDir(t *testing.T, config string) string {
	t.Helper()

	workDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(workDir, "src", "sub"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "dst"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "src", "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "src", "sub", "b.txt"), []byte("b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "golnk.env"), []byte(config), 0o644))

	return workDir
}

func execute(t *testing.T, workDir string, args ...string) (string, error) {
	t.Helper()

	app := NewApp(workDir, NewSlogManager(), io.Discard)
	cmd := newRootCmd(app)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", filepath.Join(workDir, "golnk.env")}, args...))

	err := cmd.ExecuteContext(t.Context())

	return out.String(), err
}

func assertHardlink(t *testing.T, source string, link string) {
	t.Helper()

	sourceInfo, err := os.Stat(source)
	require.NoError(t, err)

	linkInfo, err := os.Lstat(link)
	require.NoError(t, err)

	assert.True(t, os.SameFile(sourceInfo, linkInfo), "%s is not a hard link of %s", link, source)
}

// Expectation: A single file should be linked to the new name.
func TestRoot_FileToNewName_Success(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	out, err := execute(t, workDir, "src/a.txt", "copy.txt")
	require.NoError(t, err)

	assert.Equal(t, "Created link: copy.txt\n", out)
	assertHardlink(t, filepath.Join(workDir, "src", "a.txt"), filepath.Join(workDir, "copy.txt"))
}

// Expectation: A tree linked into an existing directory should keep its name.
func TestRoot_TreeIntoDirectory_Success(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	out, err := execute(t, workDir, "src", "dst")
	require.NoError(t, err)

	assert.Equal(t, "Created link: a.txt\nCreated link: sub/b.txt\n", out)
	assertHardlink(t, filepath.Join(workDir, "src", "sub", "b.txt"), filepath.Join(workDir, "dst", "src", "sub", "b.txt"))
}

// Expectation: Every target should be linked into the target directory.
func TestRoot_TargetDirectory_Success(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	out, err := execute(t, workDir, "-t", "dst", "src/a.txt", "src/sub/b.txt")
	require.NoError(t, err)

	assert.Equal(t, "Created link: a.txt\nCreated link: b.txt\n", out)
	assertHardlink(t, filepath.Join(workDir, "src", "a.txt"), filepath.Join(workDir, "dst", "a.txt"))
	assertHardlink(t, filepath.Join(workDir, "src", "sub", "b.txt"), filepath.Join(workDir, "dst", "b.txt"))
}

// Expectation: The last of three or more targets should be the directory.
func TestRoot_ManyTargets_Success(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	_, err := execute(t, workDir, "src/a.txt", "src/sub/b.txt", "dst")
	require.NoError(t, err)

	assertHardlink(t, filepath.Join(workDir, "src", "a.txt"), filepath.Join(workDir, "dst", "a.txt"))
	assertHardlink(t, filepath.Join(workDir, "src", "sub", "b.txt"), filepath.Join(workDir, "dst", "b.txt"))
}

// Expectation: A missing target directory should fail before linking.
func TestRoot_MissingTargetDirectory_Error(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	_, err := execute(t, workDir, "src/a.txt", "src/sub/b.txt", "missing")
	require.ErrorIs(t, err, schema.ErrInvalidPath)

	_, err = os.Lstat(filepath.Join(workDir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// Expectation: Relative symbolic links should point back at the source.
func TestRoot_SymbolicRelative_Success(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	_, err := execute(t, workDir, "-s", "-r", "src/a.txt", "dst")
	require.NoError(t, err)

	target, err := os.Readlink(filepath.Join(workDir, "dst", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("..", "src", "a.txt"), target)
}

// Expectation: Configured defaults should apply unless a flag overrides them.
func TestRoot_ConfigDefaults_FlagOverride(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "GOLNK_SYMBOLIC=yes\n")

	_, err := execute(t, workDir, "src/a.txt", "sym.txt")
	require.NoError(t, err)

	info, err := os.Lstat(filepath.Join(workDir, "sym.txt"))
	require.NoError(t, err)
	assert.Equal(t, os.ModeSymlink, info.Mode().Type())

	_, err = execute(t, workDir, "--symbolic=false", "src/a.txt", "hard.txt")
	require.NoError(t, err)

	assertHardlink(t, filepath.Join(workDir, "src", "a.txt"), filepath.Join(workDir, "hard.txt"))
}

// Expectation: An occupied destination should fail unless forced.
func TestRoot_Exists_Force(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "dst", "a.txt"), []byte("old"), 0o644))

	_, err := execute(t, workDir, "src/a.txt", "dst")
	require.ErrorIs(t, err, schema.ErrAlreadyExists)

	_, err = execute(t, workDir, "-f", "src/a.txt", "dst")
	require.NoError(t, err)

	assertHardlink(t, filepath.Join(workDir, "src", "a.txt"), filepath.Join(workDir, "dst", "a.txt"))
}

// Expectation: A backup with a custom suffix should keep the original.
func TestRoot_Backup_Suffix(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "dst", "a.txt"), []byte("old"), 0o644))

	_, err := execute(t, workDir, "-b", "-S", ".bak", "src/a.txt", "dst")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(workDir, "dst", "a.txt.bak"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

// Expectation: Invalid invocations should fail without linking.
func TestRoot_InvalidInvocations_Error(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")

	_, err := execute(t, workDir)
	require.ErrorIs(t, err, ErrNoTargets)

	_, err = execute(t, workDir, "--log-level", "loud", "src/a.txt", "x.txt")
	require.ErrorIs(t, err, ErrInvalidLogLevel)

	_, err = execute(t, workDir, "-u", "a", "b", "c")
	require.ErrorIs(t, err, ErrTooManyTargets)

	_, err = execute(t, workDir, "-b", "-S", "a/b", "src/a.txt", "dst")
	require.Error(t, err)

	_, err = os.Lstat(filepath.Join(workDir, "x.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlanJobs(t *testing.T) {
	t.Parallel()

	workDir := setupWorkDir(t, "")
	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.OS{}, workDir)

	tests := []struct {
		name      string
		targets   []string
		targetDir string
		expected  []linkJob
	}{
		{"Single", []string{"src/a.txt"}, "", []linkJob{{"src/a.txt", "."}}},
		{"NewName", []string{"src/a.txt", "new"}, "", []linkJob{{"src/a.txt", "new"}}},
		{"IntoDirectory", []string{"src/a.txt", "dst"}, "", []linkJob{{"src/a.txt", filepath.Join("dst", "a.txt")}}},
		{"WildcardIntoDirectory", []string{"src/*", "dst"}, "", []linkJob{{"src/*", "dst"}}},
		{"Many", []string{"src/a.txt", "src/sub", "dst"}, "", []linkJob{{"src/a.txt", "dst"}, {"src/sub", "dst"}}},
		{"TargetDirectory", []string{"src/a.txt"}, "dst", []linkJob{{"src/a.txt", "dst"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jobs, err := planJobs(fsHandler, tt.targets, tt.targetDir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, jobs)
		})
	}

	_, err := planJobs(fsHandler, nil, "dst")
	require.ErrorIs(t, err, ErrNoTargets)

	_, err = planJobs(fsHandler, []string{"src/a.txt"}, "src/a.txt")
	require.ErrorIs(t, err, schema.ErrInvalidPath)
}

// Expectation: A link made at the destination itself should be printed by
// the destination's path.
func TestPrintLinked(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	printLinked(&out, "/dst/new.txt", []string{""})
	printLinked(&out, "/dst", []string{"a.txt", "sub/b.txt"})

	assert.Equal(t, "Created link: /dst/new.txt\nCreated link: a.txt\nCreated link: sub/b.txt\n", out.String())
}
