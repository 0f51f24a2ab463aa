package lightup

import (
	"sync"
	"sync/atomic"

	"github.com/ygrebnov/lightup/host"
	"github.com/ygrebnov/lightup/internal/core"
)

// Shape is a host node type that the loaded host version may or may not have.
// TNode is the general node type instances of the shape are handled as.
//
// Shapes are declared once, usually as package-level variables, and resolve
// their host type lazily, once per host-assembly load.
type Shape[TNode any] struct {
	name   string
	source func() *host.Assembly
	state  atomic.Pointer[shapeState]

	mu      sync.Mutex
	members []member
}

// shapeState is the resolution of a shape against one host load.
type shapeState struct {
	host *host.Assembly
	svc  *core.Service
	desc *core.TypeDescriptor
}

type member interface {
	describe() MemberInfo
}

// NewShape declares the shape of the host type named qualifiedName
// ("<import path>.<TypeName>").
// It panics if qualifiedName is malformed: that is a bug in the declaring
// package, not a missing feature of the host.
func NewShape[TNode any](qualifiedName string, opts ...ShapeOption) *Shape[TNode] {
	if _, _, err := host.ParseQualifiedName(qualifiedName); err != nil {
		panic(err)
	}
	cfg := shapeConfig{source: host.Loaded}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shape[TNode]{name: qualifiedName, source: cfg.source}
}

// current returns the resolution for the host currently served by the source.
func (s *Shape[TNode]) current() *shapeState {
	a := s.source()
	if st := s.state.Load(); st != nil && st.host == a {
		return st
	}
	svc := serviceFor(a)
	st := &shapeState{host: a, svc: svc, desc: svc.Resolve(s.name)}
	s.state.Store(st)
	return st
}

// Name returns the qualified name of the host type.
func (s *Shape[TNode]) Name() string { return s.name }

// Host returns the assembly the shape currently resolves against.
func (s *Shape[TNode]) Host() *host.Assembly { return s.current().host }

// Supported reports whether the current host has the shape.
func (s *Shape[TNode]) Supported() bool { return s.current().desc.Present() }

// Descriptor returns the resolved host type, nil when unsupported.
func (s *Shape[TNode]) Descriptor() *core.TypeDescriptor { return s.current().desc }

// IsInstance reports whether node is of this shape. It is always false for
// nil nodes and when the host does not have the shape.
func (s *Shape[TNode]) IsInstance(node any) bool {
	return core.IsInstance(node, s.current().desc)
}

// Cast returns node as TNode after checking it is of this shape.
// A nil node casts to the zero TNode without error. A non-nil node of any
// other shape, or any node while the host lacks the shape, fails with a
// *CastError.
func (s *Shape[TNode]) Cast(node any) (TNode, error) {
	var zero TNode
	if core.IsNil(node) {
		return zero, nil
	}
	if !s.IsInstance(node) {
		return zero, newCastError(node, s.name)
	}
	n, ok := node.(TNode)
	if !ok {
		return zero, newCastError(node, s.name)
	}
	return n, nil
}

// Describe reports whether the current host supports the shape and each of its declared properties.
func (s *Shape[TNode]) Describe() ShapeInfo {
	st := s.current()
	info := ShapeInfo{
		Name:      s.name,
		Host:      st.host.String(),
		Supported: st.desc.Present(),
	}

	s.mu.Lock()
	members := append([]member(nil), s.members...)
	s.mu.Unlock()

	for _, m := range members {
		info.Members = append(info.Members, m.describe())
	}
	return info
}

func (s *Shape[TNode]) addMember(m member) {
	s.mu.Lock()
	s.members = append(s.members, m)
	s.mu.Unlock()
}
