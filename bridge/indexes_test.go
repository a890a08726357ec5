package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/fixture"
	"serialization-bridge/host/scene"
)

func TestBridge_DestroyForgetsIndexes(t *testing.T) {
	s := fixture.NewScene()

	b, err := New(s.World, DefaultConfig())
	require.NoError(t, err)

	out, _, err := b.Duplicate(s.Root)
	require.NoError(t, err)
	assert.Equal(t, 2, b.indexes.Len(), "source and copy are indexed")

	s.World.Destroy(out.(*scene.Object))
	assert.Equal(t, 1, b.indexes.Len())

	s.World.Destroy(s.Root)
	assert.Zero(t, b.indexes.Len())
}
