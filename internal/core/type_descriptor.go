package core

import "reflect"

// TypeDescriptor is a resolved host type. A nil *TypeDescriptor stands for a
// type the loaded host does not have; all methods accept a nil receiver.
type TypeDescriptor struct {
	name string
	typ  reflect.Type
}

func (d *TypeDescriptor) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

func (d *TypeDescriptor) Type() reflect.Type {
	if d == nil {
		return nil
	}
	return d.typ
}

// Present reports whether the host has the type.
func (d *TypeDescriptor) Present() bool {
	return d != nil && d.typ != nil
}
