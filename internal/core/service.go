package core

import (
	"reflect"
	"sync"
)

// TypeSource is the part of a host assembly the core depends on.
type TypeSource interface {
	LookupType(qualifiedName string) (reflect.Type, bool)
}

// Service owns the caches of one host-assembly load: resolved type
// descriptors and the accessor bindings built on top of them.
type Service struct {
	locator  *Locator
	bindings bindingCache
}

// NewService creates a Service resolving types from src.
// A nil src yields a Service where every shape is absent.
func NewService(src TypeSource) *Service {
	return &Service{
		locator:  NewLocator(src),
		bindings: bindingCache{c: &sync.Map{}},
	}
}

// Resolve returns the descriptor of qualifiedName, or nil if the host lacks it.
func (s *Service) Resolve(qualifiedName string) *TypeDescriptor {
	return s.locator.Resolve(qualifiedName)
}
