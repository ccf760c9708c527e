package check

// Type identifies what kind of item a check probed.
type Type int

const (
	TypeBinary Type = iota
	TypeEnv
)

// String returns the label used in console output.
func (t Type) String() string {
	switch t {
	case TypeBinary:
		return "Binary"
	case TypeEnv:
		return "Env"
	default:
		return "Unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Type    Type   // Binary or Env
	Name    string // probed identifier, e.g. "docker", "DATABASE_URL"
	Passed  bool
	Message string // e.g. "v20.10.8 (/usr/bin/docker)", "not set"
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Passed
}
