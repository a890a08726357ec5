// Package convert deep-copies values reached through bridge targets.
//
// A Kernel owns an ordered chain of converters, one per value shape:
// strings, arrays of any rank, slices, maps, host value objects, host
// references and plain structs. Each conversion walks a chain of Context
// values rooted at a target field; every walk has its own Detector so a
// reference reachable from itself is entered once and its back-reference is
// dropped instead of recursing.
//
// Values no converter claims pass through unchanged.
package convert
