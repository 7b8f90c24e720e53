package attrx

import "slices"

// Arg is one ordered name/value pair of constructor scope, as consumed by
// SelfProperties.
type Arg struct {
	Name  string
	Value any
}

// SelfProperties copies every scope entry onto the object as a backing
// field, in order, skipping SelfName and any excluded names. With saveArgs
// the same filtered values are additionally captured, in scope order, under
// ArgsField for later reuse (e.g. cloning).
//
// Writes go through SetField, so declared-property logic (read-only checks,
// listeners, dirty tracking) does not apply.
func SelfProperties(obj *Object, scope []Arg, exclude []string, saveArgs bool) {
	var args []any
	if saveArgs {
		args = make([]any, 0, len(scope))
	}
	for _, a := range scope {
		if a.Name == SelfName || slices.Contains(exclude, a.Name) {
			continue
		}
		obj.SetField(FieldPrefix+a.Name, a.Value)
		if saveArgs {
			args = append(args, a.Value)
		}
	}
	if saveArgs {
		obj.SetField(ArgsField, args)
	}
}
