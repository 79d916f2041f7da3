package filesystem

import "errors"

// ErrNotRelative is an error that occurs when a traversal entry cannot be
// expressed relative to its traversal base.
var ErrNotRelative = errors.New("path is not relative to base")
