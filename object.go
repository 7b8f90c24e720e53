package attrx

import (
	"fmt"
	"reflect"
)

// Object is an instance of a Schema: a string-keyed attribute store holding
// the backing fields of its declared properties, plus the reserved dirty-flag
// and args attributes.
//
// Object performs no locking. The compare-then-write sequence in Set is not
// atomic; concurrent mutation of the same Object requires external
// synchronization by the caller.
type Object struct {
	schema   *Schema
	fields   map[string]any
	handlers map[string]Listener
}

// Schema returns the schema this object was instantiated from.
func (o *Object) Schema() *Schema { return o.schema }

// Get returns the property's current value: the backing field if set,
// else the declared default function applied to the object, else nil.
func (o *Object) Get(name string) (any, error) {
	p, ok := o.schema.props[name]
	if !ok {
		return nil, fmt.Errorf("property %q: %w", name, ErrUnknownProperty)
	}
	if v, ok := o.fields[p.field]; ok {
		return v, nil
	}
	if p.def != nil {
		return p.def(o), nil
	}
	return nil, nil
}

// Set writes a property value. Writing a read-only property fails. A write
// that compares equal to the current backing value (missing treated as nil)
// is a complete no-op. Otherwise the backing field is updated, the dirty
// flag is set if the property is auto-dirty, and the property's listener, if
// any, is resolved by name and invoked with the backing field name, the old
// value, and the new value.
//
// Listener resolution happens at write time, instance registrations first,
// then schema registrations. An unresolvable listener name is an error; by
// then the write and dirty flag have already been applied.
func (o *Object) Set(name string, value any) error {
	p, ok := o.schema.props[name]
	if !ok {
		return fmt.Errorf("property %q: %w", name, ErrUnknownProperty)
	}
	if p.readOnly {
		return fmt.Errorf("property %q: %w", name, ErrReadOnly)
	}
	old := o.fields[p.field]
	if reflect.DeepEqual(old, value) {
		return nil
	}
	o.fields[p.field] = value
	if p.autoDirty {
		o.fields[DirtyField] = true
	}
	if p.listener != "" {
		fn := o.resolve(p.listener)
		if fn == nil {
			return fmt.Errorf("property %q listener %q: %w", name, p.listener, ErrNoListener)
		}
		fn(o, p.field, old, value)
	}
	return nil
}

// On registers an instance-level listener under name, shadowing any
// class-level registration of the same name on the schema.
func (o *Object) On(name string, fn Listener) {
	o.handlers[name] = fn
}

func (o *Object) resolve(name string) Listener {
	if fn, ok := o.handlers[name]; ok {
		return fn
	}
	return o.schema.handlers[name]
}

// Field reads a backing field directly, bypassing property logic.
func (o *Object) Field(field string) (any, bool) {
	v, ok := o.fields[field]
	return v, ok
}

// SetField writes a backing field directly, bypassing read-only checks,
// equality comparison, dirty tracking, and listeners. This is how callers
// reset state out of band, e.g. SetField(DirtyField, false).
func (o *Object) SetField(field string, value any) {
	o.fields[field] = value
}

// IsDirty reports whether the dirty flag has been set. The package sets the
// flag on value-changing writes to auto-dirty properties and never clears it.
func (o *Object) IsDirty() bool {
	dirty, _ := o.fields[DirtyField].(bool)
	return dirty
}

// Args returns the ordered argument capture stored by SelfProperties with
// saveArgs, or nil if none was made.
func (o *Object) Args() []any {
	args, _ := o.fields[ArgsField].([]any)
	return args
}

// Value returns a property's value asserted to T. A set value of a
// different dynamic type is a type-mismatch error; an unset value with no
// default yields the zero T.
func Value[T any](o *Object, name string) (T, error) {
	var zero T
	v, err := o.Get(name)
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("property %q holds %T: %w", name, v, ErrTypeMismatch)
	}
	return t, nil
}
