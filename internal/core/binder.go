package core

import (
	"reflect"

	"github.com/ygrebnov/lightup/constants"
)

// Reader reads one member of a host node.
// The zero Reader is degraded: it never touches the node and reads the zero TValue.
type Reader[TOwner any, TValue any] struct {
	read func(owner TOwner) TValue
}

// Supported reports whether the Reader is bound to a host member.
func (r Reader[TOwner, TValue]) Supported() bool { return r.read != nil }

// Read returns the member value of owner. It returns the zero TValue when the
// Reader is degraded, owner is nil, or owner is not of the bound shape.
func (r Reader[TOwner, TValue]) Read(owner TOwner) TValue {
	if r.read == nil || IsNil(owner) {
		var zero TValue
		return zero
	}
	return r.read(owner)
}

// Replacer produces a copy of a host node with one member replaced.
// The zero Replacer is degraded and returns the owner unchanged.
type Replacer[TOwner any, TValue any] struct {
	replace func(owner TOwner, value TValue) TOwner
}

// Supported reports whether the Replacer is bound to a host member.
func (r Replacer[TOwner, TValue]) Supported() bool { return r.replace != nil }

// Replace returns a new node equal to owner except for the bound member, which
// is set to value. owner is never modified. A degraded Replacer, a nil owner
// or an owner of another shape yields owner itself.
func (r Replacer[TOwner, TValue]) Replace(owner TOwner, value TValue) TOwner {
	if r.replace == nil || IsNil(owner) {
		return owner
	}
	return r.replace(owner, value)
}

// BindReader returns the cached Reader for member on owner.
//
// The member is either a method taking no arguments and returning a single
// value assignable to TValue, or an exported struct field of such a type.
// An absent owner, a missing member, or a member with another signature all
// produce a degraded Reader.
func BindReader[TOwner any, TValue any](s *Service, owner *TypeDescriptor, member string) Reader[TOwner, TValue] {
	if !owner.Present() {
		return Reader[TOwner, TValue]{}
	}
	key := bindingKey{
		owner:     owner.Type(),
		member:    member,
		kind:      readBinding,
		ownerType: typeOf[TOwner](),
		valueType: typeOf[TValue](),
	}
	v := s.bindings.loadOrBuild(key, func() any {
		return buildReader[TOwner, TValue](owner.Type(), member)
	})
	return v.(Reader[TOwner, TValue])
}

// BindReplacer returns the cached Replacer for member on owner.
//
// The member is either a method With<member> taking one argument that accepts
// TValue and returning a single value assignable to TOwner, or an exported
// struct field assignable from TValue, replaced on a shallow copy of the node.
// Anything else produces a degraded Replacer.
func BindReplacer[TOwner any, TValue any](s *Service, owner *TypeDescriptor, member string) Replacer[TOwner, TValue] {
	if !owner.Present() {
		return Replacer[TOwner, TValue]{}
	}
	key := bindingKey{
		owner:     owner.Type(),
		member:    member,
		kind:      replaceBinding,
		ownerType: typeOf[TOwner](),
		valueType: typeOf[TValue](),
	}
	v := s.bindings.loadOrBuild(key, func() any {
		return buildReplacer[TOwner, TValue](owner.Type(), member)
	})
	return v.(Replacer[TOwner, TValue])
}

func buildReader[TOwner any, TValue any](t reflect.Type, member string) Reader[TOwner, TValue] {
	ownerType, valueType := typeOf[TOwner](), typeOf[TValue]()
	if !compatible(t, ownerType) {
		return Reader[TOwner, TValue]{}
	}

	if m, ok := lookupMethod(t, member); ok {
		if m.variadic || len(m.in) != 0 || len(m.out) != 1 || !compatible(m.out[0], valueType) {
			return Reader[TOwner, TValue]{}
		}
		return Reader[TOwner, TValue]{read: func(owner TOwner) TValue {
			recv, ok := receiver(owner, t)
			if !ok {
				var zero TValue
				return zero
			}
			out, _ := as[TValue](m.call(recv)[0])
			return out
		}}
	}

	if f, ok := lookupField(t, member); ok {
		if !compatible(f.typ, valueType) {
			return Reader[TOwner, TValue]{}
		}
		return Reader[TOwner, TValue]{read: func(owner TOwner) TValue {
			var zero TValue
			recv, ok := receiver(owner, t)
			if !ok {
				return zero
			}
			fv, ok := f.get(recv)
			if !ok {
				return zero
			}
			out, _ := as[TValue](fv)
			return out
		}}
	}

	return Reader[TOwner, TValue]{}
}

func buildReplacer[TOwner any, TValue any](t reflect.Type, member string) Replacer[TOwner, TValue] {
	ownerType, valueType := typeOf[TOwner](), typeOf[TValue]()
	if !compatible(t, ownerType) {
		return Replacer[TOwner, TValue]{}
	}

	if m, ok := lookupMethod(t, constants.WithPrefix+member); ok {
		if m.variadic || len(m.in) != 1 || len(m.out) != 1 ||
			!compatible(valueType, m.in[0]) || !compatible(m.out[0], ownerType) {
			return Replacer[TOwner, TValue]{}
		}
		param := m.in[0]
		return Replacer[TOwner, TValue]{replace: func(owner TOwner, value TValue) TOwner {
			recv, ok := receiver(owner, t)
			if !ok {
				return owner
			}
			out, _ := as[TOwner](m.call(recv, argument(value, param))[0])
			return out
		}}
	}

	if f, ok := lookupField(t, member); ok {
		if f.shared || !compatible(valueType, f.typ) {
			return Replacer[TOwner, TValue]{}
		}
		return Replacer[TOwner, TValue]{replace: func(owner TOwner, value TValue) TOwner {
			recv, ok := receiver(owner, t)
			if !ok {
				return owner
			}
			cp, ok := f.replace(recv, argument(value, f.typ))
			if !ok {
				return owner
			}
			out, ok := as[TOwner](cp)
			if !ok {
				return owner
			}
			return out
		}}
	}

	return Replacer[TOwner, TValue]{}
}
