package convert

import (
	"reflect"

	"serialization-bridge/internal/diagnostic"
)

// valueObjectConverter copies host value objects: host-defined pointer
// types that carry data only. A null source yields a fresh instance.
type valueObjectConverter struct{}

func (valueObjectConverter) CanConvert(ctx *Context) bool {
	return ctx.capabilities().IsHostValueType(ctx.typ)
}

func (valueObjectConverter) Convert(ctx *Context) reflect.Value {
	if ctx.IsReference() {
		return ctx.value
	}

	fresh, ok := Construct(ctx.typ)
	if !ok {
		ctx.warn(diagnostic.CodeConstructionFailed, "no way to build a copy, original kept")
		return ctx.value
	}

	if ctx.IsNull() {
		return fresh
	}

	scope, ok := ctx.TryBeginDependencyScope()
	if !ok {
		ctx.warn(diagnostic.CodeConversionCycle, "back-reference to a value object being copied omitted")
		return reflect.Value{}
	}
	defer scope.Release()

	for _, prop := range ctx.inspector().Properties(ctx.typ) {
		converted := Reconvert(SubProperty(ctx, prop))
		prop.Set(fresh, orZero(converted, prop.Type))
	}

	for _, f := range ctx.inspector().Fields(ctx.typ) {
		assign(fresh.Elem().Field(f.Index), Reconvert(SubField(ctx, f)))
	}

	return fresh
}
