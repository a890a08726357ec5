package convert

import (
	"reflect"
	"strings"
)

type stringConverter struct{}

func (stringConverter) CanConvert(ctx *Context) bool {
	return ctx.typ.Kind() == reflect.String
}

func (stringConverter) Convert(ctx *Context) reflect.Value {
	if !ctx.value.IsValid() {
		return ctx.value
	}

	return reflect.ValueOf(strings.Clone(ctx.value.String())).Convert(ctx.typ)
}
