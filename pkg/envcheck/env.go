package envcheck

import "os"

// EnvGetter abstracts environment lookup for testability.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvGetter serves variables from a map.
type MapEnvGetter map[string]string

func (m MapEnvGetter) LookupEnv(key string) (string, bool) {
	val, ok := m[key]
	return val, ok
}
