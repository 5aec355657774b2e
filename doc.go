// Package typereg keeps a registry of the named types implementing a base
// interface, so a type named in external input (a configuration string,
// say) can be found and instantiated without a hand-written lookup table.
//
// A Registry is created with a diagnostic label, bound to exactly one base
// interface, and then filled by explicit registration calls, one per
// variant, conventionally from the variant's init function:
//
//	var Shapes = typereg.New("shape")
//
//	type Shape interface {
//		Area() float64
//	}
//
//	func init() {
//		typereg.MustBind[Shape](Shapes)
//		Shapes.MustRegister(Circle{})
//		Shapes.MustRegister(Square{})
//	}
//
// Variants are keyed by their declared type name. Later, code holding only
// a name gets a fresh instance back:
//
//	shape, err := typereg.Make[Shape](Shapes, cfg.Kind)
//
// # Collisions and skips
//
// Two types may not share a name within one registry: the second
// registration fails with ErrDuplicateName at registration time rather
// than silently replacing the first, since an overwrite would hide a
// configuration bug. Types that implement the base but should not be
// creatable by name, such as abstract intermediate types, are excluded
// with Skip or SkipName before or after their registration.
//
// # Reading the registry
//
// Lookup, Contains, Count, Names, Types and Entries form a mapping-like
// read surface. Iteration order is registration order. Lookup failures
// carry the registered names ranked by similarity to the requested one,
// which turns "unknown type" reports into actionable messages. Set and
// Delete allow hand-patching entries without a registration event.
//
// A type may be registered in any number of registries; each Registry's
// mapping is fully independent.
//
// Registries are not synchronized. Bind and register during package
// initialization, which the runtime runs in a single goroutine, and treat
// the registry as read-only afterwards.
package typereg
