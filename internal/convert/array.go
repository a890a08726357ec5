package convert

import (
	"reflect"

	"serialization-bridge/internal/analyze"
)

// arrayConverter copies arrays of any rank. Nested arrays count as extra
// dimensions and are walked with one index vector, last index fastest.
type arrayConverter struct{}

func (arrayConverter) CanConvert(ctx *Context) bool {
	return ctx.typ.Kind() == reflect.Array
}

func (arrayConverter) Convert(ctx *Context) reflect.Value {
	src := ctx.value
	if !src.IsValid() {
		return src
	}

	dims, elem := analyze.ArrayShape(ctx.typ)
	dst := reflect.New(ctx.typ).Elem()

	for _, n := range dims {
		if n == 0 {
			return dst
		}
	}

	index := make([]int, len(dims))

	for {
		converted := Reconvert(Remote(ctx, elementAt(src, index), elem))
		assign(elementAt(dst, index), converted)

		if !advance(index, dims) {
			return dst
		}
	}
}

func elementAt(v reflect.Value, index []int) reflect.Value {
	for _, i := range index {
		v = v.Index(i)
	}

	return v
}

// advance moves index to the next position and reports false after the
// last one.
func advance(index, dims []int) bool {
	for d := len(index) - 1; d >= 0; d-- {
		index[d]++
		if index[d] < dims[d] {
			return true
		}

		index[d] = 0
	}

	return false
}
