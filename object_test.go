package attrx_test

import (
	"errors"
	"testing"

	. "github.com/comalice/attrx"
)

func buildSchema(t *testing.T, declare func(*Builder)) *Schema {
	t.Helper()
	b := NewBuilder()
	declare(b)
	schema, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return schema
}

func TestGetterFallback(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed").Default(func(*Object) any { return 0.0 })
		b.Prop("bare")
	})
	obj := schema.New()

	// Unset with a default: the fallback computes the value.
	v, err := obj.Get("speed")
	if err != nil {
		t.Fatal(err)
	}
	if v != 0.0 {
		t.Errorf("Get(speed) = %v, want 0.0", v)
	}

	// Unset without a default: nil.
	v, err = obj.Get("bare")
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("Get(bare) = %v, want nil", v)
	}

	// Once written, the backing field wins over the fallback.
	if err := obj.Set("speed", 50.0); err != nil {
		t.Fatal(err)
	}
	v, _ = obj.Get("speed")
	if v != 50.0 {
		t.Errorf("Get(speed) after set = %v, want 50.0", v)
	}
}

func TestDefaultFuncReceivesInstance(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("radius")
		b.Prop("diameter").Default(func(o *Object) any {
			r, _ := Value[int](o, "radius")
			return 2 * r
		})
	})
	obj := schema.New()
	if err := obj.Set("radius", 7); err != nil {
		t.Fatal(err)
	}

	v, err := obj.Get("diameter")
	if err != nil {
		t.Fatal(err)
	}
	if v != 14 {
		t.Errorf("Get(diameter) = %v, want 14", v)
	}
}

func TestSetReadOnly(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("brand").ReadOnly()
	})
	obj := schema.New()

	if err := obj.Set("brand", "Ford"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Set on read-only: err = %v, want ErrReadOnly", err)
	}

	// Read-only backing fields are still reachable out of band, and the
	// getter sees them.
	obj.SetField("_brand", "Ford")
	v, err := obj.Get("brand")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Ford" {
		t.Errorf("Get(brand) = %v, want Ford", v)
	}
}

func TestUnknownProperty(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed")
	})
	obj := schema.New()

	if _, err := obj.Get("missing"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Get(missing) err = %v, want ErrUnknownProperty", err)
	}
	if err := obj.Set("missing", 1); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Set(missing) err = %v, want ErrUnknownProperty", err)
	}
}

func TestSetEqualValueIsNoOp(t *testing.T) {
	var calls int
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed").Listener("_on_change").AutoDirty()
	})
	schema.On("_on_change", func(*Object, string, any, any) { calls++ })
	obj := schema.New()

	if err := obj.Set("speed", 50); err != nil {
		t.Fatal(err)
	}
	if err := obj.Set("speed", 50); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1 (second write is a no-op)", calls)
	}

	// Equality covers uncomparable values too.
	schema = buildSchema(t, func(b *Builder) {
		b.Prop("tags").Observed()
	})
	calls = 0
	schema.On(DefaultListener, func(*Object, string, any, any) { calls++ })
	obj = schema.New()
	if err := obj.Set("tags", []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if err := obj.Set("tags", []string{"a", "b"}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("listener calls = %d, want 1 for deep-equal slices", calls)
	}
}

func TestListenerReceivesFieldOldNew(t *testing.T) {
	type change struct {
		field    string
		old, new any
	}
	var got []change

	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed").Listener("_on_acceleration")
	})
	schema.On("_on_acceleration", func(_ *Object, field string, old, new any) {
		got = append(got, change{field, old, new})
	})
	obj := schema.New()

	if err := obj.Set("speed", 50); err != nil {
		t.Fatal(err)
	}
	if err := obj.Set("speed", 50); err != nil {
		t.Fatal(err)
	}
	if err := obj.Set("speed", 80); err != nil {
		t.Fatal(err)
	}

	want := []change{
		{"_speed", nil, 50},
		{"_speed", 50, 80},
	}
	if len(got) != len(want) {
		t.Fatalf("changes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("change[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if v, _ := obj.Field("_speed"); v != 80 {
		t.Errorf("_speed = %v, want 80", v)
	}
}

func TestInstanceListenerShadowsSchema(t *testing.T) {
	var schemaCalls, instCalls int
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("on").Observed()
	})
	schema.On(DefaultListener, func(*Object, string, any, any) { schemaCalls++ })

	a := schema.New()
	b := schema.New()
	b.On(DefaultListener, func(*Object, string, any, any) { instCalls++ })

	if err := a.Set("on", true); err != nil {
		t.Fatal(err)
	}
	if err := b.Set("on", true); err != nil {
		t.Fatal(err)
	}

	if schemaCalls != 1 {
		t.Errorf("schema listener calls = %d, want 1", schemaCalls)
	}
	if instCalls != 1 {
		t.Errorf("instance listener calls = %d, want 1", instCalls)
	}
}

func TestMissingListenerErrorsAfterWrite(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed").Listener("_on_change").AutoDirty()
	})
	obj := schema.New()

	err := obj.Set("speed", 50)
	if !errors.Is(err, ErrNoListener) {
		t.Fatalf("Set err = %v, want ErrNoListener", err)
	}

	// The write and the dirty flag land before listener resolution fails.
	if v, _ := obj.Field("_speed"); v != 50 {
		t.Errorf("_speed = %v, want 50", v)
	}
	if !obj.IsDirty() {
		t.Error("dirty flag should be set")
	}
}

func TestAutoDirty(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed").AutoDirty()
		b.Prop("label")
	})
	obj := schema.New()

	if obj.IsDirty() {
		t.Error("fresh object should not be dirty")
	}
	if err := obj.Set("label", "x"); err != nil {
		t.Fatal(err)
	}
	if obj.IsDirty() {
		t.Error("non-auto-dirty write should not set the flag")
	}
	if err := obj.Set("speed", 10); err != nil {
		t.Fatal(err)
	}
	if !obj.IsDirty() {
		t.Error("auto-dirty write should set the flag")
	}

	// The package never clears it; callers do, out of band.
	if err := obj.Set("speed", 20); err != nil {
		t.Fatal(err)
	}
	if !obj.IsDirty() {
		t.Error("flag should stay set")
	}
	obj.SetField(DirtyField, false)
	if obj.IsDirty() {
		t.Error("caller-cleared flag should read false")
	}
}

func TestValueTyped(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed")
	})
	obj := schema.New()

	// Unset with no default: zero value.
	v, err := Value[float64](obj, "speed")
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Errorf("Value on unset = %v, want 0", v)
	}

	if err := obj.Set("speed", 50.0); err != nil {
		t.Fatal(err)
	}
	v, err = Value[float64](obj, "speed")
	if err != nil {
		t.Fatal(err)
	}
	if v != 50.0 {
		t.Errorf("Value = %v, want 50.0", v)
	}

	if _, err := Value[string](obj, "speed"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Value[string] err = %v, want ErrTypeMismatch", err)
	}
	if _, err := Value[float64](obj, "missing"); !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("Value on unknown err = %v, want ErrUnknownProperty", err)
	}
}

func TestObjectSchema(t *testing.T) {
	schema := buildSchema(t, func(b *Builder) {
		b.Prop("speed")
	})
	obj := schema.New()
	if obj.Schema() != schema {
		t.Error("Schema() should return the originating schema")
	}
}
