package core

import "sync"

// Locator resolves qualified type names against a TypeSource.
// Each name is looked up once; absent results are remembered too.
type Locator struct {
	src   TypeSource
	cache cache // map[string]*TypeDescriptor
}

type cache interface {
	Load(key any) (value any, ok bool)
	LoadOrStore(key, value any) (actual any, loaded bool)
}

func NewLocator(src TypeSource) *Locator {
	return &Locator{
		src:   src,
		cache: &sync.Map{},
	}
}

// Resolve returns the descriptor for qualifiedName, or nil when the source
// does not have the type. Concurrent first calls may both query the source,
// but all of them observe the descriptor that was stored first.
func (l *Locator) Resolve(qualifiedName string) *TypeDescriptor {
	if v, ok := l.cache.Load(qualifiedName); ok {
		return v.(*TypeDescriptor)
	}

	var d *TypeDescriptor
	if l.src != nil {
		if t, ok := l.src.LookupType(qualifiedName); ok && t != nil {
			d = &TypeDescriptor{name: qualifiedName, typ: t}
		}
	}
	v, _ := l.cache.LoadOrStore(qualifiedName, d)
	return v.(*TypeDescriptor)
}
