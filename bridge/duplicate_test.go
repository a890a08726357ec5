package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/fixture"
	"serialization-bridge/host/scene"
	"serialization-bridge/internal/diagnostic"
)

func component[T any](t *testing.T, o *scene.Object) T {
	t.Helper()

	for _, c := range o.Components() {
		if typed, ok := c.(T); ok {
			return typed
		}
	}

	require.FailNow(t, "component not found", "%T on %s", *new(T), o.Name)

	var zero T

	return zero
}

func TestBridge_Duplicate(t *testing.T) {
	s := fixture.NewScene()
	b := newBridge(t, s.World)

	out, diags, err := b.Duplicate(s.Root)
	require.NoError(t, err)

	dup, ok := out.(*scene.Object)
	require.True(t, ok)
	require.NotEqual(t, s.Root.Identity(), dup.Identity())

	left, leaf, right := dup.Find("Left"), dup.Find("Left/Leaf"), dup.Find("Right")
	require.NotNil(t, left)
	require.NotNil(t, leaf)
	require.NotNil(t, right)

	t.Run("data is deep copied", func(t *testing.T) {
		src := component[*fixture.TestComponent](t, s.Root)
		cp := component[*fixture.TestComponent](t, dup)

		assert.Equal(t, src.Component, cp.Component)
		assert.NotSame(t, src.Component, cp.Component)
		assert.NotSame(t, src.Component.SubComp, cp.Component.SubComp)
		assert.Equal(t, "test", cp.Label)

		src.Component.SubComp.Str = "changed"
		src.Component.SecondGenComp.Component.ListComponents[0].Value = "changed"

		assert.Equal(t, "WELCOME TO", cp.Component.SubComp.Str)
		assert.Equal(t, "Something else to be tested",
			cp.Component.SecondGenComp.Component.ListComponents[0].Value)

		leftCopy := component[*fixture.TestComponent](t, left)
		assert.Equal(t, "left", leftCopy.Label)
		assert.NotSame(t, component[*fixture.TestComponent](t, s.Left).Component, leftCopy.Component)
	})

	t.Run("references follow the copy", func(t *testing.T) {
		src := component[*fixture.LinkComponent](t, s.Root).Links
		cp := component[*fixture.LinkComponent](t, dup).Links

		assert.Same(t, leaf, cp.Target)
		assert.Same(t, component[*fixture.TestComponent](t, left), cp.Sibling)
		assert.Same(t, s.Outside, cp.Outside)

		assert.Same(t, s.Leaf, src.Target, "source links are untouched")
		assert.Same(t, component[*fixture.TestComponent](t, s.Left), src.Sibling)

		back := component[*fixture.LinkComponent](t, right).Links
		assert.Same(t, dup, back.Target)
		assert.Same(t, component[*fixture.TestComponent](t, dup), back.Sibling)
	})

	t.Run("resources", func(t *testing.T) {
		src := component[*fixture.LinkComponent](t, s.Root).Links
		cp := component[*fixture.LinkComponent](t, dup).Links

		require.NotNil(t, cp.Material)
		assert.NotSame(t, src.Material, cp.Material)
		assert.Equal(t, "Stone (Clone)", cp.Material.Name)
		assert.Equal(t, src.Material.Color, cp.Material.Color)

		assert.Same(t, src.Texture, cp.Texture, "unreadable textures are shared")

		require.NotNil(t, cp.Curve)
		assert.NotSame(t, src.Curve, cp.Curve)
		assert.Equal(t, src.Curve.Keys(), cp.Curve.Keys())
		assert.Equal(t, scene.WrapPingPong, cp.Curve.WrapMode())

		assert.Equal(t, src.Gradient, cp.Gradient)
		assert.NotSame(t, src.Gradient, cp.Gradient)
	})

	t.Run("callbacks rebuild unbridged state", func(t *testing.T) {
		src := component[*fixture.ScoreBoard](t, s.Root)
		cp := component[*fixture.ScoreBoard](t, dup)

		assert.Equal(t, map[string]int{"ann": 3, "bob": 5}, cp.Scores)

		cp.Scores["ann"] = 100
		assert.Equal(t, 3, src.Scores["ann"])
	})

	t.Run("diagnostics", func(t *testing.T) {
		unmapped := diags.ByCode(diagnostic.CodeUnmappedReference)
		require.Len(t, unmapped, 1)
		assert.Contains(t, unmapped[0].FieldPath, "Outside")
	})

	t.Run("attachments are removed", func(t *testing.T) {
		for _, n := range []*scene.Object{dup, left, leaf, right} {
			_, ok := n.Attachment("serialization-bridge/state")
			assert.False(t, ok, n.Name)
		}
	})
}

func TestBridge_DuplicateOrdinals(t *testing.T) {
	s := fixture.NewScene()
	b := newBridge(t, s.World)

	out, _, err := b.Duplicate(s.Root)
	require.NoError(t, err)

	dup := out.(*scene.Object)

	for _, path := range []string{"Left", "Left/Leaf", "Right"} {
		assert.Equal(t, b.Order(s.Root, s.Root.Find(path)), b.Order(dup, dup.Find(path)), path)
	}

	assert.Equal(t, -1, b.Order(s.Root, dup))
}

func TestBridge_DuplicateNil(t *testing.T) {
	b := newBridge(t, scene.NewWorld())

	_, _, err := b.Duplicate(nil)
	require.Error(t, err)
}
