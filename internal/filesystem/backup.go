package filesystem

import (
	"fmt"

	"github.com/desertwitch/golnk/internal/schema"
)

// BackupPath returns an unused path an existing file at original can be
// renamed to. The first candidate is original with the suffix appended
// (an empty suffix meaning [schema.DefaultBackupSuffix]), followed by the
// numbered candidates original.~1~, original.~2~ and so on until one is free.
// The filesystem is only inspected, the renaming is left to the caller.
func (f *Handler) BackupPath(original string, suffix string) (string, error) {
	if suffix == "" {
		suffix = schema.DefaultBackupSuffix
	}

	candidate := original + suffix

	for n := 1; ; n++ {
		exists, err := f.Exists(candidate)
		if err != nil {
			return "", schema.NewError("fs-backup", candidate, err)
		}
		if !exists {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s.~%d~", original, n)
	}
}
