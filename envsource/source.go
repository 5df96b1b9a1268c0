// Package envsource provides the key/value lookup capability consumed when
// a configuration is materialized at runtime.
//
// A Source resolves one key at a time to text or absence; it carries no
// defaulting, coercion, or merging.
package envsource

import "os"

// Source resolves a configuration key to its text value.
type Source interface {
	// Lookup returns the value for key and whether it was present.
	Lookup(key string) (string, bool)
}

type envSource struct{}

func (envSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Env returns a Source backed by the process environment.
func Env() Source {
	return envSource{}
}

type mapSource map[string]string

func (m mapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]

	return v, ok
}

// Map returns a Source backed by a fixed map. Useful for tests and fixtures.
func Map(values map[string]string) Source {
	return mapSource(values)
}

type prefixedSource struct {
	src    Source
	prefix string
}

func (p prefixedSource) Lookup(key string) (string, bool) {
	return p.src.Lookup(p.prefix + key)
}

// Prefixed wraps src so that every lookup key gets prefix prepended, e.g.
// Prefixed(Env(), "MYAPP_") resolves "HAT" via "MYAPP_HAT".
func Prefixed(src Source, prefix string) Source {
	return prefixedSource{src: src, prefix: prefix}
}
