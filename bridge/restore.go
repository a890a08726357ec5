package bridge

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"serialization-bridge/host"
	"serialization-bridge/internal/analyze"
	"serialization-bridge/internal/codec"
	"serialization-bridge/internal/diagnostic"
	"serialization-bridge/internal/match"
	"serialization-bridge/internal/registry"
	"serialization-bridge/options"
)

// Restore writes state back onto the components of node. A state whose
// sequences differ in length restores nothing. Entries for components the
// node does not have are skipped; a broken path or an undecodable record
// only aborts its own entry and is reported as a diagnostic.
func (b *Bridge) Restore(node host.Node, state *State) (diags diagnostic.Diagnostics, err error) {
	if node == nil {
		return diags, ErrNilNode
	}

	if state == nil || !state.Valid() {
		b.logger.Debug("nothing to restore", zap.String("node", node.Identity()))
		return diags, nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRestoreFailed, r)
		}
	}()

	var touched []host.Component

	for i := range state.Len() {
		comp := findComponent(node, state.ComponentNames[i])
		if comp == nil {
			continue
		}

		b.restoreEntry(&diags, comp, state.Fields[i], state.SerializedData[i], state.IsCollection[i])

		if !containsComponent(touched, comp) {
			touched = append(touched, comp)
		}
	}

	for _, comp := range touched {
		if cb, ok := comp.(options.SerializationCallbacks); ok {
			cb.OnAfterDeserialize()
		}
	}

	return diags, nil
}

func findComponent(node host.Node, name string) host.Component {
	for _, c := range node.Components() {
		if analyze.IDOf(reflect.TypeOf(c)).String() == name {
			return c
		}
	}

	return nil
}

func containsComponent(list []host.Component, c host.Component) bool {
	for _, other := range list {
		if other.Identity() == c.Identity() {
			return true
		}
	}

	return false
}

func (b *Bridge) restoreEntry(diags *diagnostic.Diagnostics, comp host.Component, path, text string,
	isCollection bool,
) {
	rootName := analyze.IDOf(reflect.TypeOf(comp)).String()

	names, err := registry.ParsePath(path)
	if err != nil {
		b.broken(diags, err.Error(), rootName, path)
		return
	}

	current := reflect.ValueOf(comp)

	for i, name := range names {
		owner, ok := settle(current)
		if !ok {
			b.broken(diags, fmt.Sprintf("cannot reach %q", name), rootName, path)
			return
		}

		f, ok := b.inspector.Field(owner.Type(), name)
		if !ok {
			suggestions := match.Suggest(name, b.inspector.FieldNames(owner.Type()), 1)
			b.broken(diags, fmt.Sprintf("field %q not found on %s", name, analyze.TypeString(owner.Type())),
				rootName, path, suggestions...)

			return
		}

		field := owner.Field(f.Index)

		if i < len(names)-1 {
			current = field
			continue
		}

		if err := b.apply(field, text, isCollection); err != nil {
			diags.AddWarning(diagnostic.CodeDecodeFailed, err.Error(), rootName, path)
			b.logger.Warn("record not restored",
				zap.String("root", rootName),
				zap.String("path", path),
				zap.Error(err))
		}
	}
}

func (b *Bridge) broken(diags *diagnostic.Diagnostics, msg, rootName, path string, suggestions ...string) {
	diags.AddWarning(diagnostic.CodePathBroken, msg, rootName, path, suggestions...)
	b.logger.Warn("path broken, entry skipped",
		zap.String("root", rootName),
		zap.String("path", path),
		zap.Strings("suggestions", suggestions))
}

// apply decodes text into field. Plain values are overwritten in place.
// Collections are rebuilt from their records, one fresh element each;
// arrays keep their length and are filled in order.
func (b *Bridge) apply(field reflect.Value, text string, isCollection bool) error {
	if !isCollection {
		return b.codec.Decode(text, field.Addr().Interface())
	}

	records, err := codec.Split(text)
	if err != nil {
		return err
	}

	ft := field.Type()

	switch ft.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(ft, 0, len(records))

		for _, record := range records {
			elem := reflect.New(ft.Elem())
			if err := b.codec.Decode(record, elem.Interface()); err != nil {
				return err
			}

			out = reflect.Append(out, elem.Elem())
		}

		field.Set(out)
	case reflect.Array:
		fresh := reflect.New(ft).Elem()
		slots := cells(fresh)

		for i := range min(len(slots), len(records)) {
			if err := b.codec.Decode(records[i], slots[i].Addr().Interface()); err != nil {
				return err
			}
		}

		field.Set(fresh)
	default:
		return fmt.Errorf("%s is not a collection", analyze.TypeString(ft))
	}

	return nil
}
