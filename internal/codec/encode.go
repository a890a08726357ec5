package codec

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"serialization-bridge/host"
)

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// encoder builds the record tree of one value. It remembers the references
// on the current path so a graph that loops back on itself fails instead
// of recursing forever.
type encoder struct {
	*JSON
	active map[visit]struct{}
}

func (c *JSON) newEncoder() *encoder {
	return &encoder{JSON: c, active: make(map[visit]struct{})}
}

// enter marks v as being encoded and returns the func that unmarks it.
// Values without reference identity are always accepted.
func (e *encoder) enter(v reflect.Value) (func(), error) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
	case reflect.Slice:
		if v.Len() == 0 {
			return func() {}, nil
		}
	default:
		return func() {}, nil
	}

	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if _, busy := e.active[key]; busy {
		return nil, fmt.Errorf("%w: %s", ErrCyclicValue, v.Type())
	}

	e.active[key] = struct{}{}

	return func() { delete(e.active, key) }, nil
}

func (e *encoder) toTree(v reflect.Value) (any, error) {
	if isNil(v) {
		return nil, nil
	}

	t := v.Type()

	if e.caps.IsHostManaged(t) && v.CanInterface() {
		if obj, ok := v.Interface().(host.Object); ok {
			return map[string]any{hashKey: obj.Identity()}, nil
		}
	}

	if isText(t) && v.CanInterface() {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s as text: %w", t, err)
		}

		return string(text), nil
	}

	leave, err := e.enter(v)
	if err != nil {
		return nil, err
	}
	defer leave()

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		return e.toTree(v.Elem())
	case reflect.Struct:
		return e.structTree(v)
	case reflect.Slice, reflect.Array:
		list := make([]any, v.Len())
		for i := range v.Len() {
			item, err := e.toTree(v.Index(i))
			if err != nil {
				return nil, err
			}

			list[i] = item
		}

		return list, nil
	case reflect.Map:
		return e.mapTree(v)
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.String:
		return v.String(), nil
	default:
		// funcs, channels and complex numbers have no record form
		return nil, nil
	}
}

func (e *encoder) structTree(v reflect.Value) (any, error) {
	t := v.Type()
	out := make(map[string]any)

	for _, f := range e.inspector.Fields(t) {
		item, err := e.toTree(v.Field(f.Index))
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}

		out[f.Name] = item
	}

	props := e.inspector.Properties(t)
	if len(props) == 0 {
		return out, nil
	}

	ptr := v
	if v.CanAddr() {
		ptr = v.Addr()
	} else {
		ptr = reflect.New(t)
		ptr.Elem().Set(v)
	}

	for _, p := range props {
		item, err := e.toTree(p.Get(ptr))
		if err != nil {
			return nil, fmt.Errorf("%s.%s(): %w", t.Name(), p.Name, err)
		}

		out[p.Name] = item
	}

	return out, nil
}

func (e *encoder) mapTree(v reflect.Value) (any, error) {
	out := make(map[string]any, v.Len())

	iter := v.MapRange()
	for iter.Next() {
		key, err := keyString(iter.Key())
		if err != nil {
			return nil, err
		}

		item, err := e.toTree(iter.Value())
		if err != nil {
			return nil, err
		}

		out[key] = item
	}

	return out, nil
}

func keyString(k reflect.Value) (string, error) {
	if isText(k.Type()) {
		text, err := k.Interface().(encoding.TextMarshaler).MarshalText()
		return string(text), err
	}

	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedKey, k.Type())
	}
}
