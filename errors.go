package linesift

import "fmt"

// ConfigError reports missing or unusable command arguments. It is detected
// before any file I/O happens.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid arguments: %s", e.Reason)
}

// IOError reports a failure to read the search target: the file is missing,
// unreadable, or not valid text.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Cause)
}

func (e *IOError) Unwrap() error {
	return e.Cause
}
