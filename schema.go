package attrx

// Schema is the materialized set of declared properties, built once by a
// Builder and immutable afterward. It also carries the class-level listener
// registrations; an Object may shadow these per instance with Object.On.
type Schema struct {
	props    map[string]*Property
	order    []string
	handlers map[string]Listener
}

// New instantiates an Object of this schema with no backing fields set.
func (s *Schema) New() *Object {
	return &Object{
		schema:   s,
		fields:   make(map[string]any),
		handlers: make(map[string]Listener),
	}
}

// On registers a class-level listener under name. Every Object of this
// schema resolves listeners against these registrations unless it installed
// its own under the same name.
func (s *Schema) On(name string, fn Listener) {
	s.handlers[name] = fn
}

// Property returns the declared property by name.
func (s *Schema) Property(name string) (*Property, bool) {
	p, ok := s.props[name]
	return p, ok
}

// Names returns the property names in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}
