package commentsync

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates a source or target workbook does not exist.
var ErrInputNotFound = errors.New("file not found")

// ErrInputUnreadable indicates a source or target workbook is not a valid xlsx file.
var ErrInputUnreadable = errors.New("invalid xlsx format")

// InputError represents a fatal problem with an input workbook.
type InputError struct {
	Role string // "source" or "target"
	Path string
	Kind error // ErrInputNotFound or ErrInputUnreadable
	Err  error
}

func (e *InputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s workbook %s: %v", e.Role, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s workbook %s: %v: %v", e.Role, e.Path, e.Kind, e.Err)
}

func (e *InputError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// NewInputError creates a new InputError.
func NewInputError(role, path string, kind, err error) *InputError {
	return &InputError{
		Role: role,
		Path: path,
		Kind: kind,
		Err:  err,
	}
}

// OutputWriteError represents a failure to persist the output workbook or log.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// NewOutputWriteError creates a new OutputWriteError.
func NewOutputWriteError(path string, err error) *OutputWriteError {
	return &OutputWriteError{Path: path, Err: err}
}

// ConfigError reports a configuration value that was ignored in favour of
// its default. It is never fatal.
type ConfigError struct {
	Key   string // option name, e.g. "START_ROW"; empty for file-level problems
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("config: %v (using defaults)", e.Err)
	}
	return fmt.Sprintf("config %s=%q: %v (using default)", e.Key, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(key, value string, err error) *ConfigError {
	return &ConfigError{Key: key, Value: value, Err: err}
}
