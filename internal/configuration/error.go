package configuration

import "errors"

var (
	// ErrConfigNotFound is an error that occurs when an explicitly given
	// configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidBool is an error that occurs when a configuration value is
	// expected to be a boolean but cannot be read as one.
	ErrInvalidBool = errors.New("invalid boolean value")
)
