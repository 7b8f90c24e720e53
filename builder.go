package attrx

import "fmt"

// Builder is the scoped property-declaration context. Declare properties
// with Prop, then call Build exactly once to validate the declarations,
// materialize the Schema, and release the declaration state. Close releases
// without building. After either, the builder is dead: further Prop or
// Build calls fail with ErrBuilderClosed.
//
// Configuration mistakes are detected at the declaration call that makes
// them and recorded as the builder's first error; Err exposes it and Build
// returns it.
type Builder struct {
	props     map[string]*Property
	order     []string
	autoDirty bool
	err       error
	closed    bool
}

// PropBuilder provides fluent methods for configuring one declared property.
type PropBuilder struct {
	b *Builder
	p *Property
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithAutoDirty makes every property declared on the builder auto-dirty,
// as if each declaration included AutoDirty.
func WithAutoDirty() BuilderOption {
	return func(b *Builder) {
		b.autoDirty = true
	}
}

// NewBuilder creates an open declaration context.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		props: make(map[string]*Property),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Prop declares a property by name and returns its fluent configurator.
// Redeclaring a name or declaring on a closed builder records a
// configuration error.
func (b *Builder) Prop(name string) *PropBuilder {
	pb := &PropBuilder{b: b}
	if b.closed {
		b.fail(fmt.Errorf("prop %q: %w", name, ErrBuilderClosed))
		return pb
	}
	if name == "" {
		b.fail(fmt.Errorf("prop: %w", ErrEmptyName))
		return pb
	}
	if _, dup := b.props[name]; dup {
		b.fail(fmt.Errorf("prop %q: %w", name, ErrDuplicateProperty))
		return pb
	}
	p := &Property{
		name:      name,
		field:     FieldPrefix + name,
		autoDirty: b.autoDirty,
	}
	b.props[name] = p
	b.order = append(b.order, name)
	pb.p = p
	return pb
}

// Err returns the first configuration error recorded so far, nil if none.
func (b *Builder) Err() error {
	return b.err
}

// Build validates the declarations and materializes the Schema. The
// declaration state is released on every outcome, so the builder cannot be
// reused or mutated afterward.
func (b *Builder) Build() (*Schema, error) {
	if b.closed {
		return nil, ErrBuilderClosed
	}
	if b.err != nil {
		err := b.err
		b.release()
		return nil, err
	}
	s := &Schema{
		props:    b.props,
		order:    b.order,
		handlers: make(map[string]Listener),
	}
	b.release()
	return s, nil
}

// Close releases the declaration state without building. Closing a dead
// builder is a no-op, so it is safe to defer alongside Build.
func (b *Builder) Close() {
	b.release()
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) release() {
	b.props = nil
	b.order = nil
	b.closed = true
}

// PropBuilder fluent methods. Each returns its receiver for chaining; on a
// property whose declaration already failed they are no-ops.

// ReadOnly omits the setter behavior: Set on the property fails. Combining
// ReadOnly with Listener or Observed is a configuration error.
func (pb *PropBuilder) ReadOnly() *PropBuilder {
	if pb.p == nil {
		return pb
	}
	pb.p.readOnly = true
	if pb.p.listener != "" {
		pb.b.fail(fmt.Errorf("prop %q: %w", pb.p.name, ErrReadOnlyObservable))
	}
	return pb
}

// Listener marks the property observed: every value-changing write resolves
// name on the instance (then the schema) and invokes it.
func (pb *PropBuilder) Listener(name string) *PropBuilder {
	if pb.p == nil {
		return pb
	}
	if name == "" {
		pb.b.fail(fmt.Errorf("prop %q listener: %w", pb.p.name, ErrEmptyName))
		return pb
	}
	pb.p.listener = name
	if pb.p.readOnly {
		pb.b.fail(fmt.Errorf("prop %q: %w", pb.p.name, ErrReadOnlyObservable))
	}
	return pb
}

// Observed is Listener with the conventional default name, DefaultListener.
func (pb *PropBuilder) Observed() *PropBuilder {
	return pb.Listener(DefaultListener)
}

// AutoDirty makes value-changing writes set the instance dirty flag.
func (pb *PropBuilder) AutoDirty() *PropBuilder {
	if pb.p == nil {
		return pb
	}
	pb.p.autoDirty = true
	return pb
}

// Default sets the getter fallback, invoked when the backing field is unset.
func (pb *PropBuilder) Default(fn DefaultFunc) *PropBuilder {
	if pb.p == nil {
		return pb
	}
	pb.p.def = fn
	return pb
}
