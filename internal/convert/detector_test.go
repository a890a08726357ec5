package convert

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_EnterAndRelease(t *testing.T) {
	d := NewDetector()
	intType := reflect.TypeFor[*int]()
	strType := reflect.TypeFor[*string]()

	scope, ok := d.TryEnter(1, intType)
	require.True(t, ok)
	assert.True(t, d.Has(1, intType))
	assert.True(t, scope.ContainsType(intType))

	_, ok = d.TryEnter(1, intType)
	assert.False(t, ok, "same identity and type is refused")

	other, ok := d.TryEnter(1, strType)
	require.True(t, ok, "same address with another type is a different entry")
	assert.Equal(t, 2, d.Depth())

	other.Release()
	assert.False(t, d.ContainsType(strType))

	scope.Release()
	scope.Release()
	assert.Zero(t, d.Depth())
	assert.False(t, d.ContainsType(intType))

	again, ok := d.TryEnter(1, intType)
	require.True(t, ok, "released entries can be entered again")
	again.Release()
}

func TestDetector_TypeCounting(t *testing.T) {
	d := NewDetector()
	typ := reflect.TypeFor[[]int]()

	first, _ := d.TryEnter(1, typ)
	second, _ := d.TryEnter(2, typ)

	first.Release()
	assert.True(t, d.ContainsType(typ))

	second.Release()
	assert.False(t, d.ContainsType(typ))
}

func TestScope_Nil(t *testing.T) {
	var s *Scope

	assert.NotPanics(t, s.Release)
	assert.False(t, s.ContainsType(reflect.TypeFor[int]()))
}

func TestIdentity(t *testing.T) {
	n := 1
	s := []int{1}
	m := map[string]int{}

	tests := []struct {
		name string
		v    reflect.Value
		ok   bool
	}{
		{"invalid", reflect.Value{}, false},
		{"int", reflect.ValueOf(1), false},
		{"struct", reflect.ValueOf(struct{}{}), false},
		{"array", reflect.ValueOf([1]int{}), false},
		{"pointer", reflect.ValueOf(&n), true},
		{"nil pointer", reflect.ValueOf((*int)(nil)), false},
		{"slice", reflect.ValueOf(s), true},
		{"nil slice", reflect.ValueOf([]int(nil)), false},
		{"map", reflect.ValueOf(m), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := identity(tt.v)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
