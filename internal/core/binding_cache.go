package core

import "reflect"

type bindingKind uint8

const (
	readBinding bindingKind = iota
	replaceBinding
)

// bindingKey identifies one binding: the host type and member it targets,
// whether it reads or replaces, and the static types the caller expects.
type bindingKey struct {
	owner     reflect.Type
	member    string
	kind      bindingKind
	ownerType reflect.Type
	valueType reflect.Type
}

// bindingCache holds a thread-safe cache of built bindings.
type bindingCache struct {
	c cache // map[bindingKey]Reader[...] | Replacer[...]
}

// loadOrBuild returns the cached binding for key, building it on a miss.
// Concurrent misses may build twice; only the first stored result is returned.
func (c bindingCache) loadOrBuild(key bindingKey, build func() any) any {
	if v, ok := c.c.Load(key); ok {
		return v
	}
	v, _ := c.c.LoadOrStore(key, build())
	return v
}
