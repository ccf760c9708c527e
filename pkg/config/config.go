// Package config loads the eden check list from eden.toml, eden.yaml,
// eden.yml, eden.json or eden.jsonc.
package config

// Config is the parsed check list. It is read-only after Load.
type Config struct {
	Checks Checks
}

// Checks lists the probes to run, in file order.
type Checks struct {
	Binaries    []BinaryCheck
	Environment []string
}

// CheckCount returns how many results a run of this config produces.
func (c *Config) CheckCount() int {
	return len(c.Checks.Binaries) + len(c.Checks.Environment)
}

// BinaryKind tags which form a binary check was written in.
type BinaryKind int

const (
	// BinarySimple is a bare binary name.
	BinarySimple BinaryKind = iota
	// BinaryWithVersion is an object with a name and optional version.
	BinaryWithVersion
)

// BinaryCheck is a binary that must be on the search path.
type BinaryCheck struct {
	kind    BinaryKind
	name    string
	version *string
}

// Simple returns a binary check written as a bare name.
func Simple(name string) BinaryCheck {
	return BinaryCheck{kind: BinarySimple, name: name}
}

// WithVersion returns a binary check written as an object. version may be nil.
func WithVersion(name string, version *string) BinaryCheck {
	return BinaryCheck{kind: BinaryWithVersion, name: name, version: version}
}

func (b BinaryCheck) Kind() BinaryKind { return b.kind }

func (b BinaryCheck) Name() string { return b.name }

// Version returns the version constraint, if one was configured.
func (b BinaryCheck) Version() (string, bool) {
	if b.kind != BinaryWithVersion || b.version == nil {
		return "", false
	}
	return *b.version, true
}

// rawConfig mirrors the on-disk schema, including the legacy env_vars key.
type rawConfig struct {
	Checks rawChecks `toml:"checks" yaml:"checks" json:"checks"`
}

type rawChecks struct {
	Binaries    []BinaryCheck `toml:"binaries" yaml:"binaries" json:"binaries"`
	Environment []string      `toml:"environment" yaml:"environment" json:"environment"`
	EnvVars     []string      `toml:"env_vars" yaml:"env_vars" json:"env_vars"`
}

func (r rawConfig) normalize() *Config {
	env := r.Checks.Environment
	if env == nil {
		env = r.Checks.EnvVars
	}
	return &Config{
		Checks: Checks{
			Binaries:    r.Checks.Binaries,
			Environment: env,
		},
	}
}
