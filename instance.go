package typereg

import (
	"fmt"
	"reflect"
)

// New returns a pointer to a fresh zero value of the type registered under
// name. The pointer form means the result satisfies the base interface
// regardless of whether the type's methods use value or pointer receivers.
func (r *Registry) New(name string) (any, error) {
	t, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return reflect.New(t).Interface(), nil
}

// Make instantiates the type registered under name and returns it as a T,
// typically the registry's base interface:
//
//	shape, err := typereg.Make[Shape](reg, "Circle")
//
// A registered type that does not satisfy T fails with ErrNotSubtype; this
// can only happen for entries injected with Set, which bypasses the base
// check.
func Make[T any](r *Registry, name string) (T, error) {
	var zero T
	v, err := r.New(name)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%s %q is a %T, not a %s: %w",
			r.label, name, v, reflect.TypeOf((*T)(nil)).Elem(), ErrNotSubtype)
	}
	return out, nil
}
