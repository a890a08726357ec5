package convert

import (
	"reflect"

	"serialization-bridge/host"
	"serialization-bridge/internal/diagnostic"
)

// hostReferenceConverter resolves references to host-owned objects. Such
// objects are never copied field by field: they are cloned when they know
// how, swapped for their counterpart in a duplicated subtree, or shared.
type hostReferenceConverter struct{}

func (hostReferenceConverter) CanConvert(ctx *Context) bool {
	return ctx.capabilities().IsHostManaged(ctx.typ)
}

func (hostReferenceConverter) Convert(ctx *Context) reflect.Value {
	if ctx.IsNull() {
		return reflect.Value{}
	}

	src := ctx.value
	if !src.CanInterface() {
		return src
	}

	obj, ok := src.Interface().(host.Object)
	if !ok {
		return src
	}

	if r, ok := obj.(host.Readable); ok && !r.IsReadable() {
		return src
	}

	if c, ok := obj.(host.Cloner); ok {
		if clone := reflect.ValueOf(c.CloneObject()); clone.IsValid() && clone.Type().AssignableTo(ctx.typ) {
			return clone
		}
	}

	if ctx.s.remap != nil {
		if mapped, ok := ctx.s.remap.Remap(obj); ok && mapped != nil {
			if v := reflect.ValueOf(mapped); v.Type().AssignableTo(ctx.typ) {
				return v
			}
		}

		ctx.info(diagnostic.CodeUnmappedReference, "no counterpart in the duplicated subtree, original kept")
	}

	return src
}
