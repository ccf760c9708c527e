package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/json-iterator/go"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// FileNames are the config files searched for, in priority order.
var FileNames = []string{
	"eden.toml",
	"eden.yaml",
	"eden.yml",
	"eden.json",
	"eden.jsonc",
}

type parseFunc func(content []byte) (*Config, error)

// parsers maps a file extension (without dot) to its parser.
var parsers = map[string]parseFunc{
	"toml":  parseTOML,
	"yaml":  parseYAML,
	"yml":   parseYAML,
	"json":  parseJSON,
	"jsonc": parseJSONC,
}

// Find returns the highest-priority config file present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Resolve returns explicitPath if it exists, otherwise the config found in dir.
func Resolve(dir, explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("failed to read config file: config file not found: %s", explicitPath)
			}
			return "", fmt.Errorf("failed to read config file: %w", err)
		}
		return explicitPath, nil
	}
	return Find(dir)
}

// Load reads and parses the config at explicitPath, or the one discovered in
// the working directory when explicitPath is empty. It returns the path used.
func Load(explicitPath string) (*Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	path, err := Resolve(wd, explicitPath)
	if err != nil {
		return nil, "", err
	}

	content, err := os.ReadFile(path) //nolint:gosec // intentional: reading user config
	if err != nil {
		return nil, path, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(path, content)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Parse decodes content using the parser selected by path's extension.
func Parse(path string, content []byte) (*Config, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	parse, ok := parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	return parse(content)
}

func parseTOML(content []byte) (*Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(content, &raw); err != nil {
		return nil, &ParseError{Format: "TOML", Err: err}
	}
	return raw.normalize(), nil
}

func parseYAML(content []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, &ParseError{Format: "YAML", Err: err}
	}
	return raw.normalize(), nil
}

func parseJSON(content []byte) (*Config, error) {
	var raw rawConfig
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &ParseError{Format: "JSON", Err: err}
	}
	return raw.normalize(), nil
}

// parseJSONC accepts comments and trailing commas.
func parseJSONC(content []byte) (*Config, error) {
	standard, err := hujson.Standardize(append([]byte(nil), content...))
	if err != nil {
		return nil, &ParseError{Format: "JSONC", Err: err}
	}
	var raw rawConfig
	if err := json.Unmarshal(standard, &raw); err != nil {
		return nil, &ParseError{Format: "JSONC", Err: err}
	}
	return raw.normalize(), nil
}
