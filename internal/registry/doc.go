// Package registry discovers, once per root type, the field paths whose
// values the bridge must carry: every field whose type (or collection
// element type) is auto-serializable, reached through other such fields.
//
// Key types:
//   - FieldPath: the fields walked from a root value to a target
//   - BridgeTarget: a root type, a path and whether the leaf is a collection
//   - Registry: the LRU-bounded per-root cache of targets
package registry
