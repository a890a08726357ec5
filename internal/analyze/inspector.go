package analyze

import (
	"reflect"

	"serialization-bridge/internal/cache"
	"serialization-bridge/options"
)

type memberKey struct {
	owner reflect.Type
	name  string
}

type memberEntry struct {
	field Field
	ok    bool
}

// Inspector keeps bounded per-type field and accessor tables. It is safe
// for concurrent use; evicted tables are rebuilt on demand.
type Inspector struct {
	fields     *cache.LRU[reflect.Type, []Field]
	properties *cache.LRU[reflect.Type, []Property]
	members    *cache.LRU[memberKey, memberEntry]
}

// NewInspector creates an inspector with the given cache capacities.
func NewInspector(sizes cache.Sizes) *Inspector {
	return &Inspector{
		fields:     cache.MustNew[reflect.Type, []Field](max(sizes.Types, 1)),
		properties: cache.MustNew[reflect.Type, []Property](max(sizes.Types, 1)),
		members:    cache.MustNew[memberKey, memberEntry](max(sizes.Members, 1)),
	}
}

// Fields returns the exported fields of the struct behind t in declaration
// order, without those tagged `bridge:"-"`. Non-struct types have none.
func (i *Inspector) Fields(t reflect.Type) []Field {
	t = Deref(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	if fields, ok := i.fields.Get(t); ok {
		return fields
	}

	fields := make([]Field, 0, t.NumField())

	for n := range t.NumField() {
		sf := t.Field(n)
		if !sf.IsExported() {
			continue
		}

		f := FieldOf(sf)
		if f.Flags.Has(options.FlagSkip) {
			continue
		}

		fields = append(fields, f)
	}

	i.fields.Add(t, fields)

	return fields
}

// Field finds the field called name on the struct behind t.
func (i *Inspector) Field(t reflect.Type, name string) (Field, bool) {
	t = Deref(t)
	key := memberKey{owner: t, name: name}

	if entry, ok := i.members.Get(key); ok {
		return entry.field, entry.ok
	}

	entry := memberEntry{}

	for _, f := range i.Fields(t) {
		if f.Name == name {
			entry = memberEntry{field: f, ok: true}
			break
		}
	}

	i.members.Add(key, entry)

	return entry.field, entry.ok
}

// FieldNames lists the names returned by Fields.
func (i *Inspector) FieldNames(t reflect.Type) []string {
	fields := i.Fields(t)

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}

	return names
}

// Properties returns the accessor pairs declared on *T for the struct T
// behind t, sorted by name.
func (i *Inspector) Properties(t reflect.Type) []Property {
	t = Deref(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	if props, ok := i.properties.Get(t); ok {
		return props
	}

	pt := reflect.PointerTo(t)

	var props []Property

	for n := range pt.NumMethod() {
		getter := pt.Method(n)
		if getter.Type.NumIn() != 1 || getter.Type.NumOut() != 1 {
			continue
		}

		setter, ok := pt.MethodByName("Set" + getter.Name)
		if !ok || setter.Type.NumIn() != 2 || setter.Type.NumOut() != 0 ||
			setter.Type.In(1) != getter.Type.Out(0) {
			continue
		}

		props = append(props, Property{
			Name:   getter.Name,
			Type:   getter.Type.Out(0),
			getter: getter.Index,
			setter: setter.Index,
		})
	}

	i.properties.Add(t, props)

	return props
}
