// Package bridge saves and restores the bridged fields of host components
// and carries them across host subtree duplication.
//
// For every component on a node, the bridge discovers the field paths whose
// values the host cannot copy on its own, deep-copies each value through the
// converter chain and persists it as a flat record. Restoring walks the same
// paths on a live component and writes the records back.
//
//	b, err := bridge.New(world, bridge.DefaultConfig())
//	if err != nil {
//		return err
//	}
//
//	state, err := b.Save(node)
//	...
//	diags, err := b.Restore(other, state)
//
// Duplicate wires both together around the host's own subtree copy and
// rewrites references into the copied subtree onto their counterparts.
package bridge
