package analyze

import (
	"reflect"
	"strconv"
	"strings"
)

// TypeString returns a compact readable form of t: named types appear with
// their package alias, composite types are spelled out.
//
//	*fixture.SerializableComponent
//	[]*fixture.ThirdGenericSerializableComponent[string]
//	map[string]int
func TypeString(t reflect.Type) string {
	var b strings.Builder

	writeType(&b, t)

	return b.String()
}

func writeType(b *strings.Builder, t reflect.Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}

	if t.Name() != "" {
		if id := IDOf(t); id.PkgPath != "" {
			b.WriteString(id.Short())
			return
		}

		b.WriteString(t.Name())

		return
	}

	switch t.Kind() {
	case reflect.Pointer:
		b.WriteByte('*')
		writeType(b, t.Elem())
	case reflect.Slice:
		b.WriteString("[]")
		writeType(b, t.Elem())
	case reflect.Array:
		b.WriteString("[" + strconv.Itoa(t.Len()) + "]")
		writeType(b, t.Elem())
	case reflect.Map:
		b.WriteString("map[")
		writeType(b, t.Key())
		b.WriteByte(']')
		writeType(b, t.Elem())
	default:
		b.WriteString(t.String())
	}
}

// JoinPath joins field names with the persisted path separator.
func JoinPath(names ...string) string {
	return strings.Join(names, PathSeparator)
}

// PathSeparator separates field names in persisted paths.
const PathSeparator = "/"
