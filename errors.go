package typereg

import "errors"

// Registry errors. Every failure returned by this package wraps one of
// these sentinels, so callers can classify with errors.Is while the message
// carries the registry label and the offending name or type.
var (
	// ErrAlreadyBound reports a second bind on a registry that already has
	// a base type. Binding is a once-per-registry setup step.
	ErrAlreadyBound = errors.New("registry already has a base type")

	// ErrNotBound reports a registration attempted before any base type
	// was bound.
	ErrNotBound = errors.New("registry has no base type")

	// ErrNotInterface reports an attempt to bind a base type that is not
	// an interface.
	ErrNotInterface = errors.New("base type must be an interface")

	// ErrNotSubtype reports a type that does not implement the registry's
	// base type.
	ErrNotSubtype = errors.New("type does not implement the base type")

	// ErrUnnamedType reports a type with no declared name, which cannot be
	// keyed.
	ErrUnnamedType = errors.New("type has no declared name")

	// ErrNilValue reports a nil candidate.
	ErrNilValue = errors.New("cannot derive a type from nil")

	// ErrDuplicateName reports two registrations sharing a declared name.
	ErrDuplicateName = errors.New("duplicate type name")

	// ErrNotRegistered reports a lookup of a name with no entry.
	ErrNotRegistered = errors.New("name not registered")
)
