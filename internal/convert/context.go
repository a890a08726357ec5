package convert

import (
	"reflect"
	"strings"

	"serialization-bridge/host"
	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/diagnostic"
	"serialization-bridge/options"
)

// Remapper finds the counterpart of a host object inside the destination of
// a duplication.
type Remapper interface {
	Remap(obj host.Object) (host.Object, bool)
}

// session is shared by every context of one root conversion.
type session struct {
	kernel   *Kernel
	detector *Detector
	remap    Remapper
	diags    diagnostic.Diagnostics
}

// Context is one step of a conversion walk: the value being converted, its
// type, the options of the field it came from and the step it came from.
// Contexts are immutable once built.
type Context struct {
	value  reflect.Value
	typ    reflect.Type
	flags  options.FieldFlag
	name   string
	parent *Context
	s      *session
}

func newContext(parent *Context, s *session, value reflect.Value, declared reflect.Type,
	flags options.FieldFlag, name string,
) *Context {
	typ := declared

	if value.IsValid() && value.Kind() == reflect.Interface {
		if value.IsNil() {
			value = reflect.Value{}
		} else {
			value = value.Elem()
		}
	}

	if typ != nil && typ.Kind() == reflect.Interface && value.IsValid() {
		typ = value.Type()
	}

	return &Context{value: value, typ: typ, flags: flags, name: name, parent: parent, s: s}
}

// NewRootContext starts a walk at a bridge target field with a fresh
// detector. remap may be nil when no duplication is in progress.
func (k *Kernel) NewRootContext(field analyze.Field, value reflect.Value, remap Remapper) *Context {
	s := &session{kernel: k, detector: NewDetector(), remap: remap}
	return newContext(nil, s, value, field.Type, field.Flags, field.Name)
}

// SubField steps into a struct field of the parent value.
func SubField(parent *Context, field analyze.Field) *Context {
	var value reflect.Value

	if owner := structValue(parent.value); owner.IsValid() {
		value = owner.Field(field.Index)
	}

	return newContext(parent, parent.s, value, field.Type, field.Flags, field.Name)
}

// SubProperty steps into an accessor pair of the parent, which must be a
// pointer to a struct.
func SubProperty(parent *Context, prop analyze.Property) *Context {
	var value reflect.Value

	if parent.value.IsValid() && parent.value.Kind() == reflect.Pointer && !parent.value.IsNil() {
		value = prop.Get(parent.value)
	}

	return newContext(parent, parent.s, value, prop.Type, options.FlagNone, prop.Name)
}

// Remote steps into a value that is not a member of the parent, such as a
// collection element or a map key. The field options are inherited.
func Remote(parent *Context, value reflect.Value, fallback reflect.Type) *Context {
	return newContext(parent, parent.s, value, fallback, parent.flags, "[]")
}

func structValue(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	if !v.IsValid() || v.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	return v
}

// Value is the value being converted; invalid means null.
func (c *Context) Value() reflect.Value { return c.value }

// Type is the runtime type when known, the declared type otherwise.
func (c *Context) Type() reflect.Type { return c.typ }

func (c *Context) Flags() options.FieldFlag { return c.flags }

// IsReference reports whether the originating field asked to keep the
// original reference.
func (c *Context) IsReference() bool { return c.flags.Has(options.FlagReference) }

// AllowsNesting reports whether the originating field allows slices of
// collections to be populated.
func (c *Context) AllowsNesting() bool { return c.flags.Has(options.FlagAllowNesting) }

func (c *Context) Parent() *Context { return c.parent }

// PreviousValue is the parent's value, invalid at the root.
func (c *Context) PreviousValue() reflect.Value {
	if c.parent == nil {
		return reflect.Value{}
	}

	return c.parent.value
}

// PreviousType is the parent's type, nil at the root.
func (c *Context) PreviousType() reflect.Type {
	if c.parent == nil {
		return nil
	}

	return c.parent.typ
}

// IsNull reports whether the value is absent or a nil reference.
func (c *Context) IsNull() bool { return isNil(c.value) }

// Path is the slash-joined walk from the root field, collection steps
// shown as [].
func (c *Context) Path() string {
	var names []string
	for cur := c; cur != nil; cur = cur.parent {
		names = append(names, cur.name)
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}

	return strings.Join(names, "/")
}

// Detector is the walk's cycle detector.
func (c *Context) Detector() *Detector { return c.s.detector }

// Diagnostics collected so far on this walk.
func (c *Context) Diagnostics() diagnostic.Diagnostics { return c.s.diags }

// TryBeginDependencyScope must be called before recursing into the value's
// children. It refuses when the value is already being converted higher up
// the walk; the caller then returns null. Values without reference identity
// get a nil scope and are always accepted.
func (c *Context) TryBeginDependencyScope() (*Scope, bool) {
	id, ok := identity(c.value)
	if !ok {
		return nil, true
	}

	return c.s.detector.TryEnter(id, c.typ)
}

func (c *Context) warn(code, message string) {
	c.s.diags.AddWarning(code, message, analyze.TypeString(c.typ), c.Path())
	c.s.kernel.trace(code, message, c)
}

func (c *Context) info(code, message string) {
	c.s.diags.AddInfo(code, message, analyze.TypeString(c.typ), c.Path())
	c.s.kernel.trace(code, message, c)
}

func (c *Context) capabilities() *analyze.Capabilities { return c.s.kernel.caps }

func (c *Context) inspector() *analyze.Inspector { return c.s.kernel.inspector }

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
