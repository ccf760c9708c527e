package config

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no config file exists in the directory.
	ErrNotFound = errors.New("no config file found. Run `eden init` to create one")

	// ErrUnsupportedFormat is returned for a config path with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ParseError reports content that did not parse under its format.
type ParseError struct {
	Format string // "TOML", "YAML", "JSON" or "JSONC"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
