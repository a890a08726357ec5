package bridge

import (
	"fmt"

	"go.uber.org/zap"

	"serialization-bridge/host"
	"serialization-bridge/internal/diagnostic"
	"serialization-bridge/internal/hierarchy"
)

// stateKey is the attachment key of a state in flight.
const stateKey = "serialization-bridge/state"

// Duplicate has the host copy the subtree under src, then carries the
// bridged fields of every source node over to its copy. References to
// nodes and components inside the subtree are rewritten to their copies;
// references outside it are kept.
func (b *Bridge) Duplicate(src host.Node) (host.Node, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	if src == nil {
		return nil, diags, ErrNilNode
	}

	source := b.indexes.Get(src).Snapshot()

	dst := b.host.DuplicateSubtree(src)
	if dst == nil {
		return nil, diags, fmt.Errorf("%w: host returned no copy of %s", ErrDuplicateFailed, src.Identity())
	}

	copied := b.indexes.Get(dst).Snapshot()
	if copied.Len() != source.Len() {
		return dst, diags, fmt.Errorf("%w: copy has %d nodes, source %d",
			ErrDuplicateFailed, copied.Len(), source.Len())
	}

	remap := &correspondence{source: source, copied: copied}

	for ordinal, node := range source.Nodes() {
		twin, ok := copied.NodeAt(ordinal)
		if !ok {
			return dst, diags, fmt.Errorf("%w: no copy at ordinal %d", ErrDuplicateFailed, ordinal)
		}

		state, err := b.save(node, remap)
		diags.Merge(state.Diagnostics)

		if err != nil {
			return dst, diags, err
		}

		if state.Len() == 0 {
			continue
		}

		restored, err := b.restoreAttached(twin, state)
		diags.Merge(restored)

		if err != nil {
			return dst, diags, err
		}
	}

	b.logger.Debug("subtree duplicated",
		zap.String("source", src.Identity()),
		zap.String("copy", dst.Identity()),
		zap.Int("nodes", source.Len()))

	return dst, diags, nil
}

// restoreAttached hands state to node for the duration of the restore when
// the host supports attachments.
func (b *Bridge) restoreAttached(node host.Node, state *State) (diagnostic.Diagnostics, error) {
	a, ok := node.(host.Attacher)
	if !ok {
		return b.Restore(node, state)
	}

	a.Attach(stateKey, state)
	defer a.Detach(stateKey)

	attached, _ := a.Attachment(stateKey)
	st, _ := attached.(*State)

	return b.Restore(node, st)
}

// correspondence maps objects of a source subtree to their structural
// counterparts in its copy: nodes by ordinal, components by the ordinal of
// their owner and their position on it. Both sides are snapshots taken once
// per duplication.
type correspondence struct {
	source *hierarchy.Snapshot
	copied *hierarchy.Snapshot
}

func (c *correspondence) Remap(obj host.Object) (host.Object, bool) {
	switch o := obj.(type) {
	case host.Node:
		twin, ok := c.node(o)
		if !ok {
			return nil, false
		}

		return twin, true
	case host.Component:
		owner := o.Owner()
		if owner == nil {
			return nil, false
		}

		twin, ok := c.node(owner)
		if !ok {
			return nil, false
		}

		idx := host.ComponentIndex(o)
		comps := twin.Components()

		if idx < 0 || idx >= len(comps) {
			return nil, false
		}

		return comps[idx], true
	default:
		return nil, false
	}
}

func (c *correspondence) node(n host.Node) (host.Node, bool) {
	ordinal := c.source.Order(n)
	if ordinal < 0 {
		return nil, false
	}

	return c.copied.NodeAt(ordinal)
}
