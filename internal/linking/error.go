package linking

import "errors"

// ErrMultipleRootsNoDir is an error that occurs when a wildcard source
// expands to more than one root while the destination is not an existing
// directory, leaving no place to put the second and later roots.
var ErrMultipleRootsNoDir = errors.New("multiple sources need an existing destination directory")
