package typereg

import (
	"fmt"
	"reflect"
	"slices"
)

// Registry tracks the named types that implement a single base interface,
// in registration order, so calling code can look them up and instantiate
// them by name without maintaining a manual lookup table.
//
// A Registry is not safe for concurrent use. The intended pattern is to
// bind the base type and register every variant during package
// initialization, which Go runs sequentially in a single goroutine;
// afterwards the registry is effectively read-only.
type Registry struct {
	label   string
	base    reflect.Type
	entries map[string]reflect.Type
	order   []string
	skip    map[string]struct{}
}

// New creates an empty registry with no base type bound. label names the
// kind of type the registry holds (e.g. "shape" or "codec") and appears in
// every error message.
func New(label string) *Registry {
	return &Registry{
		label:   label,
		entries: make(map[string]reflect.Type),
		skip:    make(map[string]struct{}),
	}
}

// Label returns the diagnostic label the registry was created with.
func (r *Registry) Label() string { return r.label }

// Bound reports whether a base type has been bound.
func (r *Registry) Bound() bool { return r.base != nil }

// Base returns the bound base type, or nil if none is bound yet.
func (r *Registry) Base() reflect.Type { return r.base }

// BindType designates base as the root of registration: every type
// subsequently passed to Register must implement it. base must be a
// defined interface type, and a registry accepts exactly one base; a
// second bind fails with ErrAlreadyBound no matter what was bound first.
// The base's own name enters the skip-set, so the base interface is never
// recorded as one of its own implementors.
func (r *Registry) BindType(base reflect.Type) error {
	if r.base != nil {
		return fmt.Errorf("bind %s to %s registry: %w", base, r.label, ErrAlreadyBound)
	}
	if base == nil {
		return fmt.Errorf("bind to %s registry: %w", r.label, ErrNilValue)
	}
	if base.Kind() != reflect.Interface {
		return fmt.Errorf("bind %s to %s registry: %w", base, r.label, ErrNotInterface)
	}
	if base.Name() == "" {
		return fmt.Errorf("bind %s to %s registry: %w", base, r.label, ErrUnnamedType)
	}
	r.base = base
	r.skip[base.Name()] = struct{}{}
	return nil
}

// Bind binds the interface type T as r's base type:
//
//	err := typereg.Bind[Shape](reg)
func Bind[T any](r *Registry) error {
	return r.BindType(reflect.TypeOf((*T)(nil)).Elem())
}

// MustBind is Bind, panicking on error. Intended for init-time setup where
// a failure is a programming bug.
func MustBind[T any](r *Registry) {
	if err := Bind[T](r); err != nil {
		panic(err)
	}
}

// Register records v's type under its declared name. It is the explicit
// form of the subtype-definition event: each variant's defining package
// calls it once, normally from init, for every type that should be
// reachable by name.
//
// v may be a value of the variant type, a pointer to one, or its
// reflect.Type; pointers are indirected so the recorded type is always the
// defined non-pointer type. Names in the skip-set are ignored silently.
// Registering a name that is already present fails with ErrDuplicateName
// and leaves the existing entry untouched.
func (r *Registry) Register(v any) error {
	t, err := r.namedType(v)
	if err != nil {
		return err
	}
	if r.base == nil {
		return fmt.Errorf("register %s in %s registry: %w", t, r.label, ErrNotBound)
	}
	if !implementsBase(t, r.base) {
		return fmt.Errorf("register %s in %s registry: does not implement %s: %w", t, r.label, r.base, ErrNotSubtype)
	}
	name := t.Name()
	if _, skipped := r.skip[name]; skipped {
		return nil
	}
	return r.insert(name, t)
}

// MustRegister is Register, panicking on error. It follows the
// database/sql.Register convention: registration runs at init time, where
// an error is a bug to fail fast on, not a condition to handle.
func (r *Registry) MustRegister(v any) {
	if err := r.Register(v); err != nil {
		panic(err)
	}
}

// SkipName marks name so Register never records it. Marking is idempotent
// and may happen before the name's type exists, or before a base is bound.
// If the name is currently registered, the entry is removed as well, so
// skipping is order-independent with respect to registration.
func (r *Registry) SkipName(name string) {
	r.skip[name] = struct{}{}
	if _, exists := r.entries[name]; exists {
		r.remove(name)
	}
}

// Skip marks v's declared name as excluded from registration. It is meant
// for abstract intermediate types that implement the base but must not be
// instantiable by name. When a base is bound, v must implement it,
// mirroring Register's scoping.
func (r *Registry) Skip(v any) error {
	t, err := r.namedType(v)
	if err != nil {
		return err
	}
	if r.base != nil && !implementsBase(t, r.base) {
		return fmt.Errorf("skip %s in %s registry: does not implement %s: %w", t, r.label, r.base, ErrNotSubtype)
	}
	r.SkipName(t.Name())
	return nil
}

// namedType resolves v to the defined type it stands for: reflect.Types
// are used as-is, pointers are indirected, and the result must carry a
// declared name.
func (r *Registry) namedType(v any) (reflect.Type, error) {
	if v == nil {
		return nil, fmt.Errorf("%s registry: %w", r.label, ErrNilValue)
	}
	t, ok := v.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(v)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return nil, fmt.Errorf("%s registry: %s: %w", r.label, t, ErrUnnamedType)
	}
	return t, nil
}

// implementsBase reports whether t or *t satisfies base. Checking the
// pointer type too keeps value-receiver and pointer-receiver implementors
// equally registrable.
func implementsBase(t, base reflect.Type) bool {
	return t.Implements(base) || reflect.PointerTo(t).Implements(base)
}

// insert adds a name → type entry at the end of iteration order.
func (r *Registry) insert(name string, t reflect.Type) error {
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("cannot register two %ss named %q: %w", r.label, name, ErrDuplicateName)
	}
	r.entries[name] = t
	r.order = append(r.order, name)
	return nil
}

// remove drops name from the mapping and from iteration order.
func (r *Registry) remove(name string) {
	delete(r.entries, name)
	r.order = slices.DeleteFunc(r.order, func(n string) bool { return n == name })
}
