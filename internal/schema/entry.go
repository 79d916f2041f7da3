package schema

// EntryKind is the type of a filesystem element met during a traversal.
type EntryKind int

const (
	// EntryFile is a regular file.
	EntryFile EntryKind = iota

	// EntryDirectory is a directory.
	EntryDirectory

	// EntryOther is anything else: symbolic links, devices, sockets, pipes.
	EntryOther
)

// String returns the human-readable name of an [EntryKind].
func (k EntryKind) String() string {
	switch k {
	case EntryFile:
		return "file"
	case EntryDirectory:
		return "directory"
	case EntryOther:
		return "other"
	default:
		return "unknown"
	}
}

// Entry is a single element yielded by a traversal of a source root.
type Entry struct {
	// Path is the element's path in the form the source was given in.
	Path string

	// AbsPath is Path resolved against the working directory of the run.
	AbsPath string

	// RelPath is the element's path relative to the traversal base. It is
	// empty for a single-file root walked against itself.
	RelPath string

	// Kind is the type of the element.
	Kind EntryKind
}

// IsDir returns true if the [Entry] is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == EntryDirectory
}
