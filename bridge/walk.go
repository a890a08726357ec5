package bridge

import (
	"reflect"

	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/convert"
	"serialization-bridge/internal/registry"
)

// read follows path from the component value v. Nil intermediates and a nil
// leaf report false.
func read(v reflect.Value, path registry.FieldPath) (reflect.Value, bool) {
	for _, f := range path {
		v = indirect(v)
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return reflect.Value{}, false
		}

		v = v.Field(f.Index)
	}

	return v, !isNil(v)
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

// settle turns v into a settable struct that fields can be written to.
// Nil pointers get a new instance; non-nil ones are replaced by a copy so
// a write never reaches an instance shared with another owner.
func settle(v reflect.Value) (reflect.Value, bool) {
	for {
		switch v.Kind() {
		case reflect.Pointer:
			switch {
			case v.IsNil():
				fresh, ok := convert.Construct(v.Type())
				if !ok || !v.CanSet() {
					return reflect.Value{}, false
				}

				v.Set(fresh)
			case v.CanSet():
				fresh := reflect.New(v.Type().Elem())
				fresh.Elem().Set(v.Elem())
				v.Set(fresh)
			}

			v = v.Elem()
		case reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, false
			}

			v = v.Elem()
		case reflect.Struct:
			return v, v.CanSet()
		default:
			return reflect.Value{}, false
		}
	}
}

// cells lists the elements of a collection in storage order: slices one
// level deep, arrays down to their innermost element, row-major.
func cells(v reflect.Value) []reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		out := make([]reflect.Value, v.Len())
		for i := range v.Len() {
			out[i] = v.Index(i)
		}

		return out
	case reflect.Array:
		shape, _ := analyze.ArrayShape(v.Type())

		var out []reflect.Value
		collect(v, len(shape), &out)

		return out
	default:
		return nil
	}
}

func collect(v reflect.Value, depth int, out *[]reflect.Value) {
	if depth == 0 {
		*out = append(*out, v)
		return
	}

	for i := range v.Len() {
		collect(v.Index(i), depth-1, out)
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
