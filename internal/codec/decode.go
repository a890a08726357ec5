package codec

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/segmentio/encoding/json"
)

// fromTree writes node into dst, which must be settable. Struct fields and
// accessor pairs missing from node keep their current values. Pointers are
// never written through: the pointee is copied, updated and swapped in.
func (c *JSON) fromTree(node any, dst reflect.Value) error {
	t := dst.Type()

	if node == nil {
		dst.Set(reflect.Zero(t))
		return nil
	}

	if c.caps.IsHostManaged(t) {
		dst.Set(c.resolve(node, t))
		return nil
	}

	if s, ok := node.(string); ok && t.Kind() != reflect.Pointer && isText(t) {
		return dst.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	}

	switch t.Kind() {
	case reflect.Pointer:
		// decode into a copy so instances shared with other owners stay
		// untouched
		fresh := reflect.New(t.Elem())
		if !dst.IsNil() {
			fresh.Elem().Set(dst.Elem())
		}

		if err := c.fromTree(node, fresh.Elem()); err != nil {
			return err
		}

		dst.Set(fresh)

		return nil
	case reflect.Interface:
		if t.NumMethod() == 0 {
			dst.Set(reflect.ValueOf(plain(node)))
		}

		return nil
	case reflect.Struct:
		return c.structFromTree(node, dst)
	case reflect.Slice:
		list, ok := node.([]any)
		if !ok {
			return mismatch(node, t)
		}

		out := reflect.MakeSlice(t, len(list), len(list))
		for i, item := range list {
			if err := c.fromTree(item, out.Index(i)); err != nil {
				return err
			}
		}

		dst.Set(out)

		return nil
	case reflect.Array:
		list, ok := node.([]any)
		if !ok {
			return mismatch(node, t)
		}

		for i := range min(len(list), t.Len()) {
			if err := c.fromTree(list[i], dst.Index(i)); err != nil {
				return err
			}
		}

		return nil
	case reflect.Map:
		return c.mapFromTree(node, dst)
	default:
		return scalarFromTree(node, dst)
	}
}

func (c *JSON) resolve(node any, t reflect.Type) reflect.Value {
	m, _ := node.(map[string]any)
	id, _ := m[hashKey].(string)

	if id == "" || c.resolver == nil {
		return reflect.Zero(t)
	}

	obj, ok := c.resolver.Resolve(id)
	if !ok || obj == nil {
		return reflect.Zero(t)
	}

	v := reflect.ValueOf(obj)
	if !v.Type().AssignableTo(t) {
		return reflect.Zero(t)
	}

	return v
}

func (c *JSON) structFromTree(node any, dst reflect.Value) error {
	t := dst.Type()

	m, ok := node.(map[string]any)
	if !ok {
		return mismatch(node, t)
	}

	for _, f := range c.inspector.Fields(t) {
		raw, present := m[f.Name]
		if !present {
			continue
		}

		if err := c.fromTree(raw, dst.Field(f.Index)); err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), f.Name, err)
		}
	}

	props := c.inspector.Properties(t)
	if len(props) == 0 || !dst.CanAddr() {
		return nil
	}

	ptr := dst.Addr()

	for _, p := range props {
		raw, present := m[p.Name]
		if !present {
			continue
		}

		value := reflect.New(p.Type).Elem()
		value.Set(p.Get(ptr))

		if err := c.fromTree(raw, value); err != nil {
			return fmt.Errorf("%s.%s(): %w", t.Name(), p.Name, err)
		}

		p.Set(ptr, value)
	}

	return nil
}

func (c *JSON) mapFromTree(node any, dst reflect.Value) error {
	t := dst.Type()

	m, ok := node.(map[string]any)
	if !ok {
		return mismatch(node, t)
	}

	out := reflect.MakeMapWithSize(t, len(m))

	for rawKey, raw := range m {
		key := reflect.New(t.Key()).Elem()
		if err := parseKey(rawKey, key); err != nil {
			return err
		}

		value := reflect.New(t.Elem()).Elem()
		if err := c.fromTree(raw, value); err != nil {
			return err
		}

		out.SetMapIndex(key, value)
	}

	dst.Set(out)

	return nil
}

func parseKey(raw string, key reflect.Value) error {
	if isText(key.Type()) {
		return key.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw))
	}

	switch key.Kind() {
	case reflect.String:
		key.SetString(raw)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Bool:
		var node any = json.Number(raw)
		if key.Kind() == reflect.Bool {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnsupportedKey, raw)
			}

			node = b
		}

		return scalarFromTree(node, key)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, key.Type())
	}
}

func scalarFromTree(node any, dst reflect.Value) error {
	t := dst.Type()

	switch t.Kind() {
	case reflect.Bool:
		b, ok := node.(bool)
		if !ok {
			return mismatch(node, t)
		}

		dst.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, ok := node.(json.Number)
		if !ok {
			return mismatch(node, t)
		}

		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil || dst.OverflowInt(i) {
			return fmt.Errorf("%w: %s does not fit %s", ErrTypeMismatch, n, t)
		}

		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, ok := node.(json.Number)
		if !ok {
			return mismatch(node, t)
		}

		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil || dst.OverflowUint(u) {
			return fmt.Errorf("%w: %s does not fit %s", ErrTypeMismatch, n, t)
		}

		dst.SetUint(u)
	case reflect.Float32, reflect.Float64:
		n, ok := node.(json.Number)
		if !ok {
			return mismatch(node, t)
		}

		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil || dst.OverflowFloat(f) {
			return fmt.Errorf("%w: %s does not fit %s", ErrTypeMismatch, n, t)
		}

		dst.SetFloat(f)
	case reflect.String:
		s, ok := node.(string)
		if !ok {
			return mismatch(node, t)
		}

		dst.SetString(s)
	}

	return nil
}

// plain converts decoded numbers for untyped destinations the way
// encoding/json does.
func plain(node any) any {
	switch n := node.(type) {
	case json.Number:
		f, _ := strconv.ParseFloat(n.String(), 64)
		return f
	case []any:
		for i := range n {
			n[i] = plain(n[i])
		}

		return n
	case map[string]any:
		for k := range n {
			n[k] = plain(n[k])
		}

		return n
	default:
		return node
	}
}

func mismatch(node any, t reflect.Type) error {
	return fmt.Errorf("%w: cannot decode %T into %s", ErrTypeMismatch, node, t)
}
