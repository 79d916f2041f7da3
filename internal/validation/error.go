package validation

import "errors"

var (
	// ErrTargetNotDirectory occurs when a path given as the shared target of
	// several sources is not a directory.
	ErrTargetNotDirectory = errors.New("target is not a directory")

	// ErrSuffixInvalid occurs when a backup suffix contains a path separator
	// or a NUL byte.
	ErrSuffixInvalid = errors.New("backup suffix contains invalid characters")
)
