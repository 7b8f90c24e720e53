// Package attrx declares object attributes ("properties") on a schema, with
// optional read-only enforcement, change listeners, and a per-instance dirty
// flag.
//
// Properties are declared through a Builder, materialized into an immutable
// Schema, and accessed on Objects instantiated from it. A bulk initializer,
// SelfProperties, copies ordered constructor arguments onto an instance in
// one call.
//
// The package is purely in-memory and performs no synchronization; see the
// Object documentation for the concurrency contract.
package attrx

// Reserved attribute names. Together with the backing-field prefix these
// form the package's naming contract: callers that read or write backing
// fields directly (via Field/SetField) use the same names.
const (
	// FieldPrefix is prepended to a property name to form its backing
	// field name.
	FieldPrefix = "_"

	// SelfName is skipped by SelfProperties regardless of exclusions.
	SelfName = "self"

	// DirtyField holds the instance dirty flag. The package sets it on
	// value-changing writes to auto-dirty properties and never clears it.
	DirtyField = "_is_dirty"

	// ArgsField holds the ordered argument capture made by SelfProperties
	// when saveArgs is requested.
	ArgsField = "_args"

	// DefaultListener is the listener name used by Observed declarations
	// that do not name one explicitly.
	DefaultListener = "_changed"
)

// Listener is invoked after a value-changing write to an observed property.
// It receives the object, the backing field name, and the old and new values.
type Listener func(obj *Object, field string, old, new any)

// DefaultFunc computes a property's value when its backing field is unset.
type DefaultFunc func(obj *Object) any
