package convert

import (
	"reflect"

	"go.uber.org/zap"

	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/diagnostic"
)

// Converter handles one shape of value. CanConvert must be cheap; Convert
// returns the copy, or an invalid value for null.
type Converter interface {
	CanConvert(ctx *Context) bool
	Convert(ctx *Context) reflect.Value
}

// Kernel dispatches contexts to the first converter that claims them.
// A Kernel is safe for concurrent use; walks share nothing but its caches.
type Kernel struct {
	caps       *analyze.Capabilities
	inspector  *analyze.Inspector
	converters []Converter
	logger     *zap.Logger
}

// NewKernel creates a kernel with the default converter chain.
func NewKernel(caps *analyze.Capabilities, inspector *analyze.Inspector, logger *zap.Logger) *Kernel {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Kernel{
		caps:      caps,
		inspector: inspector,
		logger:    logger,
		converters: []Converter{
			stringConverter{},
			arrayConverter{},
			listConverter{},
			dictionaryConverter{},
			valueObjectConverter{},
			hostReferenceConverter{},
			objectConverter{},
		},
	}
}

// Convert runs the first matching converter, or passes the value through.
func (k *Kernel) Convert(ctx *Context) reflect.Value {
	if ctx.typ == nil {
		return ctx.value
	}

	for _, c := range k.converters {
		if c.CanConvert(ctx) {
			return c.Convert(ctx)
		}
	}

	return ctx.value
}

// ConvertRoot converts value, read from field, on a fresh walk.
func (k *Kernel) ConvertRoot(field analyze.Field, value reflect.Value, remap Remapper,
) (reflect.Value, diagnostic.Diagnostics) {
	ctx := k.NewRootContext(field, value, remap)
	out := k.Convert(ctx)

	return out, ctx.s.diags
}

// Reconvert converts a child context with the kernel of its walk. It is how
// converters recurse.
func Reconvert(ctx *Context) reflect.Value {
	return ctx.s.kernel.Convert(ctx)
}

func (k *Kernel) trace(code, message string, ctx *Context) {
	k.logger.Debug(message,
		zap.String("code", code),
		zap.String("path", ctx.Path()),
		zap.String("type", analyze.TypeString(ctx.typ)))
}

// assign stores v into dst, zeroing dst for null. Values of an unexpected
// type leave dst untouched.
func assign(dst, v reflect.Value) {
	if !v.IsValid() {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}

	if v.Type().AssignableTo(dst.Type()) {
		dst.Set(v)
	}
}

// orZero returns v, or the zero value of t when v is null.
func orZero(v reflect.Value, t reflect.Type) reflect.Value {
	if !v.IsValid() {
		return reflect.Zero(t)
	}

	return v
}

// Construct creates an empty instance of t: a new zeroed struct behind
// pointers, an empty slice or map, the zero value otherwise. Interfaces,
// funcs and channels cannot be constructed.
func Construct(t reflect.Type) (reflect.Value, bool) {
	if t == nil {
		return reflect.Value{}, false
	}

	switch t.Kind() {
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Interface {
			return reflect.Value{}, false
		}

		return reflect.New(t.Elem()), true
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0), true
	case reflect.Map:
		return reflect.MakeMap(t), true
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return reflect.Value{}, false
	default:
		return reflect.New(t).Elem(), true
	}
}

func isCollection(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
