package registry

import (
	"reflect"

	"serialization-bridge/internal/analyze"
)

// BridgeTarget is a field path, rooted at a component type, whose value the
// bridge saves and restores.
type BridgeTarget struct {
	Root         reflect.Type
	Path         FieldPath
	IsCollection bool
}

// RootName is the persisted name of the declaring root type.
func (t BridgeTarget) RootName() string {
	return analyze.IDOf(t.Root).String()
}

// Key identifies the target across roots.
func (t BridgeTarget) Key() string {
	return t.RootName() + ":" + t.Path.String()
}

// Type is the declared type of the leaf field.
func (t BridgeTarget) Type() reflect.Type {
	return t.Path.Leaf().Type
}

// ElementType is the element type of a collection target: one level for
// slices, every nested level for arrays. Plain targets return their own
// type.
func (t BridgeTarget) ElementType() reflect.Type {
	return elementOf(t.Type())
}

func elementOf(ft reflect.Type) reflect.Type {
	switch ft.Kind() {
	case reflect.Slice:
		return ft.Elem()
	case reflect.Array:
		_, elem := analyze.ArrayShape(ft)
		return elem
	default:
		return ft
	}
}

func (t BridgeTarget) String() string {
	s := analyze.IDOf(t.Root).Short() + "/" + t.Path.String()
	if t.IsCollection {
		s += "[]"
	}

	return s
}
