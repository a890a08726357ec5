package convert

import (
	"reflect"

	"serialization-bridge/internal/diagnostic"
	"serialization-bridge/primitive"
)

// objectConverter copies plain structs and pointers to them. The copy
// starts as an assignment, so unexported state is carried over, and every
// exported field is then converted on its own.
type objectConverter struct{}

func (objectConverter) CanConvert(ctx *Context) bool {
	t := ctx.typ
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct && !primitive.IsLeaf(t) && !ctx.capabilities().IsHostManaged(ctx.typ)
}

func (objectConverter) Convert(ctx *Context) reflect.Value {
	src := ctx.value
	if ctx.IsNull() {
		return reflect.Value{}
	}

	if ctx.typ.Kind() == reflect.Struct {
		dst := reflect.New(ctx.typ).Elem()
		dst.Set(src)
		copyFields(ctx, dst)

		return dst
	}

	if ctx.IsReference() {
		return src
	}

	scope, ok := ctx.TryBeginDependencyScope()
	if !ok {
		ctx.warn(diagnostic.CodeConversionCycle, "back-reference omitted")
		return reflect.Value{}
	}
	defer scope.Release()

	dst := reflect.New(ctx.typ.Elem())
	dst.Elem().Set(src.Elem())
	copyFields(ctx, dst.Elem())

	return dst
}

func copyFields(ctx *Context, dst reflect.Value) {
	for _, f := range ctx.inspector().Fields(ctx.typ) {
		assign(dst.Field(f.Index), Reconvert(SubField(ctx, f)))
	}
}
