// Package linking implements the link-mirroring engine. It expands a source
// argument into its roots, walks every root, maps each entry to its
// destination and has it linked, collecting the relative paths of all links
// in traversal order.
package linking

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/desertwitch/golnk/internal/filesystem"
	"github.com/desertwitch/golnk/internal/schema"
)

type fsProvider interface {
	Expand(pattern string) ([]string, error)
	IsDir(path string) (bool, error)
	Resolve(path string) string
	Walk(root string, base string, fn filesystem.WalkFunc) error
}

type ioProvider interface {
	CreateLink(entry schema.Entry, dest string, opts schema.LinkOptions) (string, error)
	EnsureParentDirs(path string) error
}

// Handler is the principal implementation of the linking engine. It holds no
// state between invocations of [Handler.Link].
type Handler struct {
	fsHandler fsProvider
	ioHandler ioProvider
}

// NewHandler returns a pointer to a new linking [Handler].
func NewHandler(fsHandler fsProvider, ioHandler ioProvider) *Handler {
	return &Handler{
		fsHandler: fsHandler,
		ioHandler: ioHandler,
	}
}

// linkRun is the state of a single invocation of [Handler.Link].
type linkRun struct {
	opts      schema.LinkOptions
	dest      string
	destIsDir bool
	linked    []string

	// symlinkedDir is the last directory linked symbolically in this run,
	// its descendants are reachable through that link already.
	symlinkedDir string
}

// Link mirrors source into dest according to opts and returns the relative
// paths of everything linked, in traversal order. The first failure aborts
// the run and is returned without any result; links that were created up to
// that point are left in place.
func (l *Handler) Link(source string, dest string, opts schema.LinkOptions) ([]string, error) {
	roots, err := l.fsHandler.Expand(source)
	if err != nil {
		return nil, fmt.Errorf("(linking) failed to expand source: %w", err)
	}

	wildcard := filesystem.HasWildcard(source)

	run := &linkRun{
		opts:   opts.Normalized(),
		dest:   l.fsHandler.Resolve(dest),
		linked: []string{},
	}

	run.destIsDir, err = l.fsHandler.IsDir(run.dest)
	if err != nil {
		return nil, schema.NewError("linking", dest, err)
	}

	if wildcard && !run.destIsDir && len(roots) > 1 {
		return nil, schema.NewKindError(schema.ErrInvalidPath, "linking", dest, ErrMultipleRootsNoDir)
	}

	if len(roots) == 0 {
		slog.Warn("Source pattern matched nothing", "pattern", source)
	}

	for _, root := range roots {
		base := filesystem.WalkBase(root, wildcard, run.destIsDir)

		if err := l.fsHandler.Walk(root, base, func(entry schema.Entry) error {
			return l.linkEntry(run, entry)
		}); err != nil {
			return nil, fmt.Errorf("(linking) %w", err)
		}
	}

	return run.linked, nil
}

// linkEntry is the single dispatch point for the kinds of [schema.Entry].
func (l *Handler) linkEntry(run *linkRun, entry schema.Entry) error {
	switch entry.Kind {
	case schema.EntryDirectory:
		if !run.opts.Symbolic || run.opts.SymlinkFilesOnly {
			return nil
		}
	case schema.EntryOther:
		if !run.opts.Symbolic {
			return nil
		}
	case schema.EntryFile:
	}

	if run.symlinkedDir != "" && isWithin(entry.AbsPath, run.symlinkedDir) {
		run.linked = append(run.linked, resultPath(entry, run.destIsDir))

		return nil
	}

	destPath := filesystem.DestinationPath(entry, run.dest, run.destIsDir)

	if err := l.ioHandler.EnsureParentDirs(destPath); err != nil {
		return fmt.Errorf("failed to ensure parent dirs: %w", err)
	}

	if _, err := l.ioHandler.CreateLink(entry, destPath, run.opts); err != nil {
		return fmt.Errorf("failed to link %s: %w", entry.Path, err)
	}

	if entry.IsDir() {
		run.symlinkedDir = entry.AbsPath
	}

	run.linked = append(run.linked, resultPath(entry, run.destIsDir))

	slog.Debug("Linked",
		"path", entry.Path,
		"dest", destPath,
		"kind", entry.Kind,
	)

	return nil
}

// resultPath returns the relative path an [schema.Entry] is reported with. A
// single-file root linked into a directory is reported by its name.
func resultPath(entry schema.Entry, destIsDir bool) string {
	if entry.RelPath == "" && destIsDir {
		return filepath.Base(entry.Path)
	}

	return entry.RelPath
}

func isWithin(path string, dir string) bool {
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
