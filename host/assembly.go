package host

import (
	"reflect"
	"sort"
	"sync/atomic"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/lightup/errors"
)

// Assembly is one loaded version of a host library: a fixed set of named
// types that can be looked up by their qualified name.
type Assembly struct {
	name    string
	version string
	types   map[string]reflect.Type
}

// NewAssembly builds an Assembly holding the given types.
// Each type is registered under QualifiedName(t); unnamed types and
// duplicate names are rejected.
func NewAssembly(name, version string, types ...reflect.Type) (*Assembly, error) {
	a := &Assembly{
		name:    name,
		version: version,
		types:   make(map[string]reflect.Type, len(types)),
	}
	for _, t := range types {
		qn := QualifiedName(t)
		if qn == "" {
			typeName := "<nil>"
			if t != nil {
				typeName = t.String()
			}
			return nil, errorc.With(
				errors.ErrInvalidHostType,
				errorc.String(errors.ErrorFieldHostName, name),
				errorc.String(errors.ErrorFieldTypeName, typeName),
			)
		}
		if _, exists := a.types[qn]; exists {
			return nil, errorc.With(
				errors.ErrDuplicateHostType,
				errorc.String(errors.ErrorFieldHostName, name),
				errorc.String(errors.ErrorFieldTypeName, qn),
			)
		}
		a.types[qn] = t
	}
	return a, nil
}

func (a *Assembly) Name() string {
	if a == nil {
		return ""
	}
	return a.name
}

func (a *Assembly) Version() string {
	if a == nil {
		return ""
	}
	return a.version
}

// String returns name@version.
func (a *Assembly) String() string {
	if a == nil {
		return "<none>"
	}
	return a.name + "@" + a.version
}

// LookupType returns the type registered under qualifiedName.
func (a *Assembly) LookupType(qualifiedName string) (reflect.Type, bool) {
	if a == nil {
		return nil, false
	}
	t, ok := a.types[qualifiedName]
	return t, ok
}

// TypeNames returns the qualified names of all types, sorted.
func (a *Assembly) TypeNames() []string {
	if a == nil {
		return nil
	}
	names := make([]string, 0, len(a.types))
	for name := range a.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var loaded atomic.Pointer[Assembly]

// Load makes a the process-wide host assembly and returns the previous one.
// Passing nil unloads the host; every shape then reports as unsupported.
func Load(a *Assembly) (previous *Assembly) {
	return loaded.Swap(a)
}

// Loaded returns the process-wide host assembly, or nil if none is loaded.
func Loaded() *Assembly {
	return loaded.Load()
}
