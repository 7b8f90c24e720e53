package attrx

// Property describes one declared attribute: its backing field, read-only
// and dirty-tracking behavior, listener wiring, and getter fallback.
// Properties are created by a Builder and immutable once the Schema is built.
type Property struct {
	name      string
	field     string
	readOnly  bool
	autoDirty bool
	listener  string // empty when unobserved
	def       DefaultFunc
}

// Name returns the declared property name.
func (p *Property) Name() string { return p.name }

// Field returns the backing field name (FieldPrefix + Name).
func (p *Property) Field() string { return p.field }

// ReadOnly reports whether writes to the property fail.
func (p *Property) ReadOnly() bool { return p.readOnly }

// AutoDirty reports whether value-changing writes set the dirty flag.
func (p *Property) AutoDirty() bool { return p.autoDirty }

// ListenerName returns the listener resolved on value-changing writes,
// or "" when the property is not observed.
func (p *Property) ListenerName() string { return p.listener }
