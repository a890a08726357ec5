package convert

import (
	"fmt"
	"reflect"

	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/diagnostic"
)

type listConverter struct{}

func (listConverter) CanConvert(ctx *Context) bool {
	return ctx.typ.Kind() == reflect.Slice
}

func (listConverter) Convert(ctx *Context) reflect.Value {
	src := ctx.value
	if isNil(src) {
		if ctx.IsReference() {
			return reflect.Value{}
		}

		return reflect.MakeSlice(ctx.typ, 0, 0)
	}

	elem := ctx.typ.Elem()
	if isCollection(elem) && !ctx.AllowsNesting() {
		ctx.warn(diagnostic.CodeNestedCollection,
			fmt.Sprintf("slice of %s needs `bridge:\"nest\"` to be copied", analyze.TypeString(elem)))

		return reflect.Value{}
	}

	scope, ok := ctx.TryBeginDependencyScope()
	if !ok {
		// A slice holding itself as an element would nest forever.
		if isCollection(elem) && ctx.Detector().ContainsType(elem) {
			ctx.warn(diagnostic.CodeNestedCollection,
				fmt.Sprintf("%s contains itself", analyze.TypeString(ctx.typ)))

			return reflect.Value{}
		}

		ctx.warn(diagnostic.CodeConversionCycle, "back-reference to a slice being copied omitted")

		return reflect.Value{}
	}
	defer scope.Release()

	dst := reflect.MakeSlice(ctx.typ, src.Len(), src.Len())
	for i := range src.Len() {
		assign(dst.Index(i), Reconvert(Remote(ctx, src.Index(i), elem)))
	}

	return dst
}
