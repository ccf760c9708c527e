// Package templates provides the starter configs written by `eden init`.
//
// Templates are embedded at build time so that every distribution of the
// binary can scaffold a config without extra files.
package templates

import (
	_ "embed"
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned for an init format with no template.
var ErrUnsupportedFormat = errors.New("unsupported format")

//go:embed eden.toml
var TOML string

//go:embed eden.yaml
var YAML string

//go:embed eden.json
var JSON string

// Formats lists the values accepted by `eden init --format`.
var Formats = []string{"toml", "yaml", "yml", "json"}

// For returns the file name and starter content for an init format.
func For(format string) (filename, content string, err error) {
	switch format {
	case "toml":
		return "eden.toml", TOML, nil
	case "yaml", "yml":
		return "eden.yaml", YAML, nil
	case "json":
		return "eden.json", JSON, nil
	default:
		return "", "", fmt.Errorf("%w: %s. Use toml, yaml, or json", ErrUnsupportedFormat, format)
	}
}
