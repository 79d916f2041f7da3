package schema

import (
	"errors"
	"fmt"
	"io/fs"

	"golang.org/x/sys/unix"
)

var (
	// ErrNotFound is an error kind for a missing source, pattern directory or
	// path component.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is an error kind for a destination that is already
	// present while neither force nor backup were requested.
	ErrAlreadyExists = errors.New("already exists")

	// ErrPermissionDenied is an error kind for operations refused by the
	// operating system due to missing permissions.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrCrossDevice is an error kind for hard links that would have to span
	// two different filesystems.
	ErrCrossDevice = errors.New("cross-device link")

	// ErrInvalidPath is an error kind for paths that cannot be computed or
	// combinations of arguments that cannot be mapped to a destination.
	ErrInvalidPath = errors.New("invalid path")

	// ErrOther is an error kind for any other wrapped I/O failure.
	ErrOther = errors.New("i/o failure")
)

// Error is the principal error of the linking pipeline. It carries one of
// the error kinds (e.g. [ErrAlreadyExists]) together with the failed operation
// and the offending path. Both the kind and the underlying error can be
// tested for with [errors.Is].
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

// NewError returns a new [Error] for an underlying error, deriving the kind
// from it with [Classify].
func NewError(op string, path string, err error) *Error {
	return &Error{
		Kind: Classify(err),
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// NewKindError returns a new [Error] of a given kind.
func NewKindError(kind error, op string, path string, err error) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("(%s) %v: %s", e.Op, e.Kind, e.Path)
	}

	return fmt.Sprintf("(%s) %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// Classify returns the error kind of an error. Errors already carrying a kind
// keep it, syscall errors are mapped by their meaning and everything else is
// an [ErrOther].
func Classify(err error) error {
	var linkErr *Error
	if errors.As(err, &linkErr) && linkErr.Kind != nil {
		return linkErr.Kind
	}

	switch {
	case errors.Is(err, unix.EXDEV):
		return ErrCrossDevice
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, fs.ErrExist):
		return ErrAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	default:
		return ErrOther
	}
}
