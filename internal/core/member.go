package core

import "reflect"

// method is a located host method with the receiver removed from its signature.
type method struct {
	in       []reflect.Type
	out      []reflect.Type
	variadic bool
	index    int
	// fn is set for concrete receivers and takes the receiver as first argument.
	// For interface receivers it is invalid and calls go through the method table.
	fn reflect.Value
}

func lookupMethod(t reflect.Type, name string) (method, bool) {
	m, ok := t.MethodByName(name)
	if !ok {
		return method{}, false
	}

	first := 1
	if t.Kind() == reflect.Interface {
		first = 0
	}
	ft := m.Type
	mm := method{variadic: ft.IsVariadic(), index: m.Index, fn: m.Func}
	for i := first; i < ft.NumIn(); i++ {
		mm.in = append(mm.in, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		mm.out = append(mm.out, ft.Out(i))
	}
	return mm, true
}

func (m method) call(recv reflect.Value, args ...reflect.Value) []reflect.Value {
	if m.fn.IsValid() {
		return m.fn.Call(append([]reflect.Value{recv}, args...))
	}
	return recv.Method(m.index).Call(args)
}

// field is a located exported struct field, possibly promoted through embedding.
type field struct {
	typ   reflect.Type
	index []int
	// shared is set when the path crosses an embedded pointer, so a shallow
	// copy of the owner would still share the field with the original.
	shared bool
}

func lookupField(t reflect.Type, name string) (field, bool) {
	st := t
	if st.Kind() == reflect.Ptr {
		st = st.Elem()
	}
	if st.Kind() != reflect.Struct {
		return field{}, false
	}
	sf, ok := st.FieldByName(name)
	if !ok || !sf.IsExported() {
		return field{}, false
	}

	f := field{typ: sf.Type, index: sf.Index}
	for i := 1; i < len(sf.Index); i++ {
		if st.FieldByIndex(sf.Index[:i]).Type.Kind() == reflect.Ptr {
			f.shared = true
			break
		}
	}
	return f, true
}

func (f field) get(recv reflect.Value) (reflect.Value, bool) {
	if recv.Kind() == reflect.Ptr {
		if recv.IsNil() {
			return reflect.Value{}, false
		}
		recv = recv.Elem()
	}
	fv, err := recv.FieldByIndexErr(f.index)
	if err != nil {
		return reflect.Value{}, false
	}
	return fv, true
}

// replace returns a shallow copy of recv with the field set to v.
// recv itself is left untouched.
func (f field) replace(recv, v reflect.Value) (reflect.Value, bool) {
	isPtr := recv.Kind() == reflect.Ptr
	src := recv
	if isPtr {
		if recv.IsNil() {
			return reflect.Value{}, false
		}
		src = recv.Elem()
	}

	cp := reflect.New(src.Type())
	cp.Elem().Set(src)
	fv, err := cp.Elem().FieldByIndexErr(f.index)
	if err != nil || !fv.CanSet() {
		return reflect.Value{}, false
	}
	fv.Set(v)

	if isPtr {
		return cp, true
	}
	return cp.Elem(), true
}

// receiver converts owner into a value usable as receiver of t's members.
// It fails for nil owners and owners of another type.
func receiver(owner any, t reflect.Type) (reflect.Value, bool) {
	if IsNil(owner) {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(owner)
	if !compatible(rv.Type(), t) {
		return reflect.Value{}, false
	}
	if t.Kind() == reflect.Interface {
		iv := reflect.New(t).Elem()
		iv.Set(rv)
		return iv, true
	}
	return rv, true
}

// argument converts a value for a parameter or field of type param.
// nil becomes the zero value of param.
func argument(v any, param reflect.Type) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Zero(param)
	}
	return rv
}

// as converts a reflected result to T; nil and mismatching values yield the zero T.
func as[T any](v reflect.Value) (T, bool) {
	var zero T
	if !v.IsValid() || !v.CanInterface() {
		return zero, false
	}
	out, ok := v.Interface().(T)
	if !ok {
		return zero, false
	}
	return out, true
}
