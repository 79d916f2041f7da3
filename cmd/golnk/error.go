package main

import "errors"

var (
	// ErrNoTargets occurs when no target was given on the command line.
	ErrNoTargets = errors.New("missing file operand")

	// ErrTooManyTargets occurs when the picker is given more than a source
	// and a destination.
	ErrTooManyTargets = errors.New("the picker accepts at most two targets")

	// ErrInvalidLogLevel occurs when a log level cannot be parsed.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
