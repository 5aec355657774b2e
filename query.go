package typereg

import (
	"reflect"
	"slices"
)

// Entry is a single name → type pair in a registry snapshot.
type Entry struct {
	Name string
	Type reflect.Type
}

// Lookup returns the type registered under name. An unknown name fails
// with ErrNotRegistered; the message lists the registered names ranked by
// similarity to the requested one, since unknown names usually come from
// externally supplied configuration with a typo in it.
func (r *Registry) Lookup(name string) (reflect.Type, error) {
	t, ok := r.entries[name]
	if !ok {
		return nil, r.errNotRegistered(name)
	}
	return t, nil
}

// Contains reports whether name is registered. It never fails.
func (r *Registry) Contains(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Count returns the number of registered entries.
func (r *Registry) Count() int { return len(r.entries) }

// Names returns the registered names in registration order. The result is
// a fresh snapshot reflecting the registry at call time; later mutations
// do not affect it.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Types returns the registered types, in the same order as Names.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, len(r.order))
	for i, name := range r.order {
		types[i] = r.entries[name]
	}
	return types
}

// Entries returns the name → type pairs, in the same order as Names.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.order))
	for i, name := range r.order {
		entries[i] = Entry{Name: name, Type: r.entries[name]}
	}
	return entries
}

// Set inserts a type under an explicit name without going through the
// subtype-definition event: no base needs to be bound, the skip-set is not
// consulted, and the name may differ from the type's declared one. It is
// the escape hatch for hand-patching a registry. Duplicate names are still
// rejected with ErrDuplicateName; the new entry lands at the end of
// iteration order.
func (r *Registry) Set(name string, v any) error {
	t, err := r.namedType(v)
	if err != nil {
		return err
	}
	return r.insert(name, t)
}

// Delete removes the entry registered under name, e.g. to retire a
// deprecated variant by hand. Deleting an unknown name fails with
// ErrNotRegistered.
func (r *Registry) Delete(name string) error {
	if !r.Contains(name) {
		return r.errNotRegistered(name)
	}
	r.remove(name)
	return nil
}
