package convert

import (
	"reflect"

	"serialization-bridge/internal/diagnostic"
)

type dictionaryConverter struct{}

func (dictionaryConverter) CanConvert(ctx *Context) bool {
	return ctx.typ.Kind() == reflect.Map
}

func (dictionaryConverter) Convert(ctx *Context) reflect.Value {
	src := ctx.value
	if isNil(src) {
		return reflect.Value{}
	}

	scope, ok := ctx.TryBeginDependencyScope()
	if !ok {
		ctx.warn(diagnostic.CodeConversionCycle, "back-reference to a map being copied omitted")
		return reflect.Value{}
	}
	defer scope.Release()

	keyType, elemType := ctx.typ.Key(), ctx.typ.Elem()
	dst := reflect.MakeMapWithSize(ctx.typ, src.Len())

	iter := src.MapRange()
	for iter.Next() {
		key := Reconvert(Remote(ctx, iter.Key(), keyType))
		if isNil(key) {
			ctx.warn(diagnostic.CodeNullKey, "entry dropped: key converted to null")
			continue
		}

		value := Reconvert(Remote(ctx, iter.Value(), elemType))
		dst.SetMapIndex(key, orZero(value, elemType))
	}

	return dst
}
