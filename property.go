package lightup

import (
	"sync/atomic"

	"github.com/ygrebnov/lightup/host"
	"github.com/ygrebnov/lightup/internal/core"
)

// Property is one member of a Shape, read and replaced through bindings that
// degrade to zero reads and no-op replacements when the host lacks the shape
// or the member.
type Property[TNode any, TValue any] struct {
	shape  *Shape[TNode]
	member string
	state  atomic.Pointer[propertyState[TNode, TValue]]
}

type propertyState[TNode any, TValue any] struct {
	host     *host.Assembly
	reader   core.Reader[TNode, TValue]
	replacer core.Replacer[TNode, TValue]
}

// NewProperty declares the member named member of shape.
// It panics if shape is nil or member is not an exported identifier.
func NewProperty[TNode any, TValue any](shape *Shape[TNode], member string) *Property[TNode, TValue] {
	if shape == nil {
		panic("lightup: NewProperty: shape is nil")
	}
	if err := host.ValidateMemberName(member); err != nil {
		panic(err)
	}
	p := &Property[TNode, TValue]{shape: shape, member: member}
	shape.addMember(p)
	return p
}

func (p *Property[TNode, TValue]) current() *propertyState[TNode, TValue] {
	st := p.shape.current()
	if ps := p.state.Load(); ps != nil && ps.host == st.host {
		return ps
	}
	ps := &propertyState[TNode, TValue]{
		host:     st.host,
		reader:   core.BindReader[TNode, TValue](st.svc, st.desc, p.member),
		replacer: core.BindReplacer[TNode, TValue](st.svc, st.desc, p.member),
	}
	p.state.Store(ps)
	return ps
}

// Name returns the member name.
func (p *Property[TNode, TValue]) Name() string { return p.member }

// Get reads the member of node. The zero TValue is returned for nil nodes,
// nodes of another shape and when the host lacks the member.
func (p *Property[TNode, TValue]) Get(node TNode) TValue {
	return p.current().reader.Read(node)
}

// With returns a node equal to node except for the member, set to v.
// node itself is never modified; it is returned as is when the member cannot be replaced.
func (p *Property[TNode, TValue]) With(node TNode, v TValue) TNode {
	return p.current().replacer.Replace(node, v)
}

// Readable reports whether the current host lets Get read the member.
func (p *Property[TNode, TValue]) Readable() bool { return p.current().reader.Supported() }

// Replaceable reports whether the current host lets With replace the member.
func (p *Property[TNode, TValue]) Replaceable() bool { return p.current().replacer.Supported() }

func (p *Property[TNode, TValue]) describe() MemberInfo {
	ps := p.current()
	return MemberInfo{
		Name:        p.member,
		Readable:    ps.reader.Supported(),
		Replaceable: ps.replacer.Supported(),
	}
}
