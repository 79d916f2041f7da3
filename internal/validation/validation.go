// Package validation checks the arguments of a linking run before anything on
// the file system is touched.
package validation

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/desertwitch/golnk/internal/schema"
)

type fsProvider interface {
	IsDir(path string) (bool, error)
	Resolve(path string) string
}

// ValidateTargetDirectory returns an error if path is not an existing
// directory. Symbolic links to directories are allowed.
func ValidateTargetDirectory(fsHandler fsProvider, path string) error {
	resolved := fsHandler.Resolve(path)

	isDir, err := fsHandler.IsDir(resolved)
	if err != nil {
		return schema.NewError("validate-target", resolved, err)
	}

	if !isDir {
		return schema.NewKindError(schema.ErrInvalidPath, "validate-target", resolved, ErrTargetNotDirectory)
	}

	return nil
}

// ValidateBackupSuffix returns an error if suffix cannot be appended to a
// file name without leaving its directory.
func ValidateBackupSuffix(suffix string) error {
	if strings.ContainsRune(suffix, '/') || strings.ContainsRune(suffix, 0) {
		return schema.NewKindError(schema.ErrInvalidPath, "validate-suffix", suffix, ErrSuffixInvalid)
	}

	return nil
}

// ValidateOptions validates opts and warns about combinations that are
// accepted but without effect.
func ValidateOptions(opts schema.LinkOptions) error {
	if opts.Backup {
		if err := ValidateBackupSuffix(opts.BackupSuffix); err != nil {
			return fmt.Errorf("(validate) %w", err)
		}
	}

	if !opts.Symbolic {
		if opts.Relative {
			slog.Warn("Relative has no effect without symbolic links")
		}
		if opts.SymlinkFilesOnly {
			slog.Warn("Files-only has no effect without symbolic links")
		}
	}

	return nil
}
