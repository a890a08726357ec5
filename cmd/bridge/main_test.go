package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serialization-bridge/bridge"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	color.NoColor = true
	t.Chdir(t.TempDir())

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())

	return out.String()
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"discover", "save", "duplicate"})
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestDiscoverCommand(t *testing.T) {
	out := run(t, "discover")

	assert.Contains(t, out, "fixture.TestComponent")
	assert.Contains(t, out, "Component/SubComp")
	assert.Contains(t, out, "collection")
	assert.Contains(t, out, "fixture.ScoreBoard")
}

func TestSaveCommand(t *testing.T) {
	out := run(t, "save", "--node", "Left")

	assert.Contains(t, out, "# Left:")

	state, err := bridge.UnmarshalState([]byte(out))
	require.NoError(t, err)
	assert.True(t, state.Valid())
	assert.Contains(t, state.Fields, "StringComponent")
}

func TestSaveCommand_UnknownNode(t *testing.T) {
	color.NoColor = true
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"save", "--node", "Nowhere"})

	require.Error(t, cmd.Execute())
}

func TestDuplicateCommand(t *testing.T) {
	out := run(t, "duplicate")

	assert.Contains(t, out, "WELCOME TO")
	assert.Contains(t, out, "Stone (Clone)")
	assert.NotContains(t, out, "wrong")
	assert.Contains(t, out, "host_reference_unmapped")
}
