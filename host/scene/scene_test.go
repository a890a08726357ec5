package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/host"
	"serialization-bridge/host/scene"
)

type marker struct {
	scene.Behaviour

	Label  string
	Target *scene.Object
}

func buildTree(w *scene.World) *scene.Object {
	root := w.NewObject("root")
	a := root.AddChild("a")
	root.AddChild("b")
	a.AddChild("a1")

	return root
}

func TestObject_Hierarchy(t *testing.T) {
	w := scene.NewWorld()
	root := buildTree(w)

	assert.Equal(t, 2, root.ChildCount())
	assert.Equal(t, "a1", root.Find("a/a1").Name)
	assert.Nil(t, root.Find("a/missing"))
	assert.Same(t, root, root.Find(""))
	assert.Same(t, root, root.Find("a").Parent())

	b := root.Find("b")
	b.SetSiblingIndex(0)

	names := make([]string, 0, 2)
	for _, c := range host.Children(root) {
		names = append(names, c.(*scene.Object).Name)
	}

	assert.Equal(t, []string{"b", "a"}, names)
}

func TestWorld_ResolveAndDestroy(t *testing.T) {
	w := scene.NewWorld()
	root := buildTree(w)
	m := scene.AddComponent(root.Find("a"), &marker{Label: "x"})

	found, ok := w.Resolve(m.Identity())
	require.True(t, ok)
	assert.Same(t, m, found)
	assert.Equal(t, 5, w.Len())

	w.Destroy(root.Find("a"))

	_, ok = w.Resolve(m.Identity())
	assert.False(t, ok)
	assert.Equal(t, 1, root.ChildCount())
	assert.Equal(t, 2, w.Len())
}

func TestWorld_OnDestroy(t *testing.T) {
	w := scene.NewWorld()
	root := buildTree(w)

	var destroyed []string
	w.OnDestroy(func(n host.Node) {
		destroyed = append(destroyed, n.(*scene.Object).Name)
	})

	w.Destroy(root.Find("a"))
	assert.Equal(t, []string{"a", "a1"}, destroyed)

	w.Destroy(root)
	assert.Equal(t, []string{"a", "a1", "root", "b"}, destroyed)
	assert.Zero(t, w.Len())
}

func TestWorld_DuplicateSubtree(t *testing.T) {
	w := scene.NewWorld()
	root := buildTree(w)
	target := root.Find("a/a1")
	original := scene.AddComponent(root, &marker{Label: "hello", Target: target})
	root.Attach("key", 1)

	dup, ok := w.DuplicateSubtree(root).(*scene.Object)
	require.True(t, ok)

	assert.NotEqual(t, root.Identity(), dup.Identity())
	assert.Equal(t, "root", dup.Name)
	assert.Nil(t, dup.Parent())
	require.NotNil(t, dup.Find("a/a1"))
	assert.NotEqual(t, target.Identity(), dup.Find("a/a1").Identity())

	copied, ok := scene.GetComponent[*marker](dup)
	require.True(t, ok)
	assert.NotSame(t, original, copied)
	assert.NotEqual(t, original.Identity(), copied.Identity())
	assert.Equal(t, "hello", copied.Label)
	assert.Same(t, target, copied.Target, "pointers are shared until restored")
	assert.Same(t, dup, copied.Owner())

	_, attached := dup.Attachment("key")
	assert.False(t, attached)

	_, ok = w.Resolve(copied.Identity())
	assert.True(t, ok)
}

func TestObject_Attachments(t *testing.T) {
	o := scene.NewWorld().NewObject("o")

	o.Attach("state", "v")
	v, ok := o.Attachment("state")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	o.Detach("state")
	_, ok = o.Attachment("state")
	assert.False(t, ok)
}

func TestMaterial_CloneObject(t *testing.T) {
	w := scene.NewWorld()
	m := w.NewMaterial("stone", scene.Color{R: 1, A: 1})
	m.Shininess = 0.5

	clone, ok := m.CloneObject().(*scene.Material)
	require.True(t, ok)
	assert.NotEqual(t, m.Identity(), clone.Identity())
	assert.Equal(t, "stone (Clone)", clone.Name)
	assert.Equal(t, m.Color, clone.Color)
	assert.InDelta(t, 0.5, clone.Shininess, 1e-9)
}

func TestTexture_Readable(t *testing.T) {
	w := scene.NewWorld()

	assert.True(t, w.NewTexture("cpu", 2, 2, true).IsReadable())
	assert.Len(t, w.NewTexture("cpu", 2, 2, true).Pixels, 4)
	assert.False(t, w.NewTexture("gpu", 2, 2, false).IsReadable())
}

func TestCurve_Evaluate(t *testing.T) {
	c := scene.NewCurve(scene.Keyframe{Time: 0, Value: 0}, scene.Keyframe{Time: 2, Value: 10})
	c.SetWrapMode(scene.WrapLoop)

	assert.InDelta(t, 0, c.Evaluate(-1), 1e-9)
	assert.InDelta(t, 5, c.Evaluate(1), 1e-9)
	assert.InDelta(t, 10, c.Evaluate(3), 1e-9)
	assert.Equal(t, scene.WrapLoop, c.WrapMode())
	assert.InDelta(t, 0, scene.NewCurve().Evaluate(1), 1e-9)
}
