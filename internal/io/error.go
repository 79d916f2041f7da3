package io

import "errors"

// ErrDestinationExists is an error that occurs when a destination is already
// present and neither a backup nor a forced removal was requested.
var ErrDestinationExists = errors.New("destination file exists")
