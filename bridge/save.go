package bridge

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"serialization-bridge/host"
	"serialization-bridge/internal/codec"
	"serialization-bridge/internal/convert"
	"serialization-bridge/internal/registry"
	"serialization-bridge/options"
)

// Save captures the bridged fields of every component on node. On failure
// the returned state is empty and the error wraps ErrSaveFailed; a state is
// never half written.
func (b *Bridge) Save(node host.Node) (*State, error) {
	if node == nil {
		return nil, ErrNilNode
	}

	return b.save(node, nil)
}

func (b *Bridge) save(node host.Node, remap convert.Remapper) (state *State, err error) {
	state = &State{}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSaveFailed, r)
		}

		if err != nil {
			state.Reset()
			b.logger.Error("save failed, state discarded",
				zap.String("node", node.Identity()),
				zap.Error(err))
		}
	}()

	for _, comp := range node.Components() {
		if err := b.saveComponent(state, comp, remap); err != nil {
			return state, err
		}
	}

	return state, nil
}

func (b *Bridge) saveComponent(state *State, comp host.Component, remap convert.Remapper) error {
	targets, err := b.registry.Discover(reflect.TypeOf(comp))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	if len(targets) == 0 {
		return nil
	}

	if cb, ok := comp.(options.SerializationCallbacks); ok {
		cb.OnBeforeSerialize()
	}

	root := reflect.ValueOf(comp)

	for _, t := range targets {
		value, ok := read(root, t.Path)
		if !ok {
			continue
		}

		converted, diags := b.kernel.ConvertRoot(t.Path.Leaf(), value, remap)
		state.Diagnostics.Merge(diags)

		if isNil(converted) {
			continue
		}

		text, err := b.encode(converted, t)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSaveFailed, t, err)
		}

		state.add(text, t.Path.String(), t.RootName(), t.IsCollection)

		b.logger.Debug("saved bridge target",
			zap.String("root", t.RootName()),
			zap.String("path", t.Path.String()),
			zap.Int("bytes", len(text)))
	}

	return nil
}

// encode writes a plain target as one record and a collection target as
// one record per non-nil element, back to back.
func (b *Bridge) encode(v reflect.Value, t registry.BridgeTarget) (string, error) {
	if !t.IsCollection {
		return b.codec.Encode(v.Interface())
	}

	elems := cells(v)
	records := make([]string, 0, len(elems))

	for _, elem := range elems {
		if isNil(elem) {
			continue
		}

		text, err := b.codec.Encode(elem.Interface())
		if err != nil {
			return "", err
		}

		records = append(records, text)
	}

	return codec.Concat(records), nil
}
