package analyze

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/host"
	"serialization-bridge/host/scene"
	"serialization-bridge/internal/cache"
	"serialization-bridge/options"
)

type payload struct {
	Value  int
	Label  string `bridge:"ref"`
	Hidden string `bridge:"-"`
	secret int
}

func (payload) BridgeSerializable() {}

type pointerMarked struct{ N int }

func (*pointerMarked) BridgeSerializable() {}

type withCallback struct {
	OnDone func()
}

type external struct{ X int }

type accessors struct {
	name  string
	count int
}

func (a *accessors) Name() string        { return a.name }
func (a *accessors) SetName(v string)    { a.name = v }
func (a *accessors) Count() int          { return a.count }
func (a *accessors) SetCount(v int64)    { a.count = int(v) } // mismatched type
func (a *accessors) Describe(int) string { return a.name }

func TestTypeID(t *testing.T) {
	id := IDOf(reflect.TypeFor[**payload]())

	assert.Equal(t, "serialization-bridge/internal/analyze.payload", id.String())
	assert.Equal(t, "analyze.payload", id.Short())
	assert.Equal(t, "int", IDOf(reflect.TypeFor[int]()).String())
	assert.Equal(t, TypeID{}, IDOf(nil))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		rtype    reflect.Type
		expected TypeKind
	}{
		{nil, TypeKindUnknown},
		{reflect.TypeFor[int](), TypeKindBasic},
		{reflect.TypeFor[time.Time](), TypeKindBasic},
		{reflect.TypeFor[payload](), TypeKindStruct},
		{reflect.TypeFor[*payload](), TypeKindPointer},
		{reflect.TypeFor[[]int](), TypeKindSlice},
		{reflect.TypeFor[[2]int](), TypeKindArray},
		{reflect.TypeFor[map[string]int](), TypeKindMap},
		{reflect.TypeFor[any](), TypeKindInterface},
		{reflect.TypeFor[func()](), TypeKindExternal},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.rtype))
		})
	}

	assert.Equal(t, "unknown", TypeKind(99).String())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "*analyze.payload", TypeString(reflect.TypeFor[*payload]()))
	assert.Equal(t, "[3][]int", TypeString(reflect.TypeFor[[3][]int]()))
	assert.Equal(t, "map[string]*scene.Object", TypeString(reflect.TypeFor[map[string]*scene.Object]()))
	assert.Equal(t, "<nil>", TypeString(nil))
	assert.Equal(t, "a/b/c", JoinPath("a", "b", "c"))
}

func TestArrayShape(t *testing.T) {
	dims, elem := ArrayShape(reflect.TypeFor[[2][3][4]string]())
	assert.Equal(t, []int{2, 3, 4}, dims)
	assert.Equal(t, reflect.TypeFor[string](), elem)

	dims, elem = ArrayShape(reflect.TypeFor[[2][]int]())
	assert.Equal(t, []int{2}, dims)
	assert.Equal(t, reflect.TypeFor[[]int](), elem)

	dims, _ = ArrayShape(reflect.TypeFor[[]int]())
	assert.Empty(t, dims)
}

func TestCapabilities_AutoSerializable(t *testing.T) {
	caps := NewCapabilities()

	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[payload]()))
	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[*payload]()))
	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[pointerMarked]()))
	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[*pointerMarked]()))
	assert.False(t, caps.IsAutoSerializable(reflect.TypeFor[external]()))
	assert.False(t, caps.IsAutoSerializable(nil))

	caps.MarkAutoSerializable(reflect.TypeFor[*external]())
	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[external]()))
	assert.True(t, caps.IsAutoSerializable(reflect.TypeFor[*external]()))
}

func TestCapabilities_HostManaged(t *testing.T) {
	caps := NewCapabilities()

	assert.True(t, caps.IsHostManaged(reflect.TypeFor[*scene.Object]()))
	assert.True(t, caps.IsHostManaged(reflect.TypeFor[*scene.Material]()))
	assert.True(t, caps.IsHostManaged(reflect.TypeFor[host.Node]()))
	assert.False(t, caps.IsHostManaged(reflect.TypeFor[scene.Object]()))
	assert.False(t, caps.IsHostManaged(reflect.TypeFor[*payload]()))

	caps.MarkHostManaged(reflect.TypeFor[external]())
	assert.True(t, caps.IsHostManaged(reflect.TypeFor[*external]()))
	assert.False(t, caps.IsHostManaged(reflect.TypeFor[external]()), "values are never host-owned")
}

func TestCapabilities_HostValueType(t *testing.T) {
	caps := NewCapabilities()

	assert.True(t, caps.IsHostValueType(reflect.TypeFor[*scene.Curve]()))
	assert.True(t, caps.IsHostValueType(reflect.TypeFor[*scene.Gradient]()))
	assert.False(t, caps.IsHostValueType(reflect.TypeFor[scene.Curve]()), "values are copied by assignment")
	assert.False(t, caps.IsHostValueType(reflect.TypeFor[*scene.Object]()), "host-managed")
	assert.False(t, caps.IsHostValueType(reflect.TypeFor[*payload]()), "outside the host namespace")

	caps.MarkHostValueType(reflect.TypeFor[withCallback]())
	assert.False(t, caps.IsHostValueType(reflect.TypeFor[*withCallback]()), "func fields")

	caps.MarkHostValueType(reflect.TypeFor[external]())
	assert.True(t, caps.IsHostValueType(reflect.TypeFor[*external]()))

	custom := NewCapabilities("serialization-bridge/internal")
	assert.True(t, custom.IsHostValueType(reflect.TypeFor[*payload]()))
	assert.False(t, custom.IsHostValueType(reflect.TypeFor[*scene.Curve]()))
}

func TestCapabilities_Traversable(t *testing.T) {
	caps := NewCapabilities()

	assert.True(t, caps.IsTraversable(reflect.TypeFor[payload]()))
	assert.True(t, caps.IsTraversable(reflect.TypeFor[*payload]()))
	assert.False(t, caps.IsTraversable(reflect.TypeFor[time.Time]()))
	assert.False(t, caps.IsTraversable(reflect.TypeFor[string]()))
	assert.False(t, caps.IsTraversable(reflect.TypeFor[[]payload]()))
	assert.False(t, caps.IsTraversable(reflect.TypeFor[*scene.Object]()))
	assert.False(t, caps.IsTraversable(reflect.TypeFor[scene.Object]()))
}

func TestInspector_Fields(t *testing.T) {
	in := NewInspector(cache.NewSizes(10, 10))

	fields := in.Fields(reflect.TypeFor[*payload]())
	require.Len(t, fields, 2)
	assert.Equal(t, "Value", fields[0].Name)
	assert.Equal(t, 0, fields[0].Index)
	assert.Equal(t, "Label", fields[1].Name)
	assert.Equal(t, 1, fields[1].Index)
	assert.True(t, fields[1].Flags.Has(options.FlagReference))
	assert.True(t, fields[1].HasTag("bridge"))

	assert.Equal(t, []string{"Value", "Label"}, in.FieldNames(reflect.TypeFor[payload]()))
	assert.Nil(t, in.Fields(reflect.TypeFor[int]()))

	f, ok := in.Field(reflect.TypeFor[payload](), "Label")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeFor[string](), f.Type)

	_, ok = in.Field(reflect.TypeFor[payload](), "Hidden")
	assert.False(t, ok)

	_, ok = in.Field(reflect.TypeFor[payload](), "secret")
	assert.False(t, ok)
}

func TestInspector_Properties(t *testing.T) {
	in := NewInspector(cache.NewSizes(10, 10))

	props := in.Properties(reflect.TypeFor[accessors]())
	require.Len(t, props, 1)
	assert.Equal(t, "Name", props[0].Name)

	a := &accessors{name: "before"}
	ptr := reflect.ValueOf(a)
	assert.Equal(t, "before", props[0].Get(ptr).String())

	props[0].Set(ptr, reflect.ValueOf("after"))
	assert.Equal(t, "after", a.name)

	curve := in.Properties(reflect.TypeFor[scene.Curve]())
	names := make([]string, 0, len(curve))
	for _, p := range curve {
		names = append(names, p.Name)
	}

	assert.Equal(t, []string{"Keys", "WrapMode"}, names)
}
