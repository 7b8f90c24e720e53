package attrx

import "errors"

// Configuration errors, reported while declaring properties (by the Builder
// or by config validation), always before any Object exists.
var (
	ErrReadOnlyObservable = errors.New("property cannot be read-only and observable at the same time")
	ErrDuplicateProperty  = errors.New("duplicate property")
	ErrBuilderClosed      = errors.New("builder already built or closed")
	ErrEmptyName          = errors.New("empty name")
)

// Attribute-resolution errors, reported at access time and propagated
// unchanged to the caller.
var (
	ErrUnknownProperty = errors.New("unknown property")
	ErrReadOnly        = errors.New("property is read-only")
	ErrNoListener      = errors.New("no listener registered")
	ErrTypeMismatch    = errors.New("property value type mismatch")
)
