package core

import (
	"reflect"

	"github.com/ygrebnov/lightup/host"
)

// IsInstance reports whether node is of the shape described by target.
// It is false for nil nodes (including typed nil pointers) and for absent shapes.
func IsInstance(node any, target *TypeDescriptor) bool {
	if !target.Present() || IsNil(node) {
		return false
	}
	return compatible(reflect.TypeOf(node), target.Type())
}

// compatible reports whether a value of type actual can be used where
// expected is declared: identical types first, then assignability, which
// covers interface implementation.
func compatible(actual, expected reflect.Type) bool {
	if actual == nil || expected == nil {
		return false
	}
	if actual == expected {
		return true
	}
	if actual.AssignableTo(expected) {
		return true
	}
	return expected.Kind() == reflect.Interface && actual.Implements(expected)
}

// IsNil reports whether v is nil or holds a nil pointer, map, slice, func,
// channel or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// TypeName returns the qualified name of v's dynamic type when it has one,
// and its reflect string otherwise.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	if qn := host.QualifiedName(t); qn != "" {
		return qn
	}
	return t.String()
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
