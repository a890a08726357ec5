// Package analyze inspects live Go types by reflection for the bridge.
//
// It answers the capability questions every other package asks
// (auto-serializable, host-managed, host value object, traversable) and
// keeps bounded accessor tables so repeated walks over the same types do
// not repeat reflection work.
//
// Key types:
//   - TypeID: package import path + type name, the persisted root type name
//   - TypeKind: coarse shape of a reflect.Type
//   - Field: an exported struct field with its bridge options
//   - Property: a Name()/SetName() accessor pair
//   - Capabilities: interface checks with a tag registry fallback
//   - Inspector: LRU-bounded field and accessor tables
package analyze
