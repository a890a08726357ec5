package analyze

import (
	"reflect"

	"serialization-bridge/internal/common"
	"serialization-bridge/options"
	"serialization-bridge/primitive"
)

// TypeID uniquely identifies a named type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "serialization-bridge/fixture"
	Name    string // e.g., "TestComponent"
}

// IDOf returns the TypeID of t with pointers removed.
func IDOf(t reflect.Type) TypeID {
	t = Deref(t)
	if t == nil {
		return TypeID{}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the TypeID qualified by the package alias only.
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// Deref strips every pointer level from t.
func Deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}

// TypeKind represents the coarse shape of a type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // primitives, enums, time values
	TypeKindStruct             // struct value
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // fixed-size array
	TypeKindMap                // map
	TypeKindInterface          // interface
	TypeKindExternal           // func, chan and other opaque kinds
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindInterface:
		return "interface"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// KindOf classifies t.
func KindOf(t reflect.Type) TypeKind {
	if t == nil {
		return TypeKindUnknown
	}

	if primitive.IsLeaf(t) {
		return TypeKindBasic
	}

	switch t.Kind() {
	case reflect.Struct:
		return TypeKindStruct
	case reflect.Pointer:
		return TypeKindPointer
	case reflect.Slice:
		return TypeKindSlice
	case reflect.Array:
		return TypeKindArray
	case reflect.Map:
		return TypeKindMap
	case reflect.Interface:
		return TypeKindInterface
	case reflect.Complex64, reflect.Complex128, reflect.Uintptr:
		return TypeKindBasic
	default:
		return TypeKindExternal
	}
}

// Field describes an exported struct field.
type Field struct {
	Name     string            // Go field name
	Index    int               // Field index in the struct
	Type     reflect.Type      // Declared type
	Tag      reflect.StructTag // Raw struct tag
	Flags    options.FieldFlag // Parsed bridge options
	Embedded bool              // Whether the field is embedded (anonymous)
}

// FieldOf wraps a reflect.StructField.
func FieldOf(sf reflect.StructField) Field {
	return Field{
		Name:     sf.Name,
		Index:    sf.Index[len(sf.Index)-1],
		Type:     sf.Type,
		Tag:      sf.Tag,
		Flags:    options.ParseTag(sf.Tag),
		Embedded: sf.Anonymous,
	}
}

// HasTag returns true if the field has the specified tag.
func (f Field) HasTag(key string) bool {
	_, ok := f.Tag.Lookup(key)
	return ok
}

// Property is an accessor pair: a getter Name() T and a setter SetName(T)
// on the pointer receiver.
type Property struct {
	Name   string
	Type   reflect.Type
	getter int
	setter int
}

// Get calls the getter on ptr, a pointer to the owning struct.
func (p Property) Get(ptr reflect.Value) reflect.Value {
	return ptr.Method(p.getter).Call(nil)[0]
}

// Set calls the setter on ptr, a pointer to the owning struct.
func (p Property) Set(ptr reflect.Value, v reflect.Value) {
	ptr.Method(p.setter).Call([]reflect.Value{v})
}

// ArrayShape returns the lengths of the nested array levels of t, outermost
// first, and the innermost element type. [2][3]T has shape [2 3] and rank 2.
func ArrayShape(t reflect.Type) ([]int, reflect.Type) {
	var dims []int

	for t.Kind() == reflect.Array {
		dims = append(dims, t.Len())
		t = t.Elem()
	}

	return dims, t
}
