package convert

import "reflect"

type scopeKey struct {
	id  uintptr
	typ reflect.Type
}

// Detector tracks the references currently being converted on one walk.
// It is not safe for concurrent use; every root conversion owns one.
type Detector struct {
	active map[scopeKey]struct{}
	types  map[reflect.Type]int
}

// NewDetector creates an empty detector.
func NewDetector() *Detector {
	return &Detector{
		active: make(map[scopeKey]struct{}),
		types:  make(map[reflect.Type]int),
	}
}

// TryEnter registers (id, t) and returns the scope that unregisters it.
// It refuses when the pair is already being converted.
func (d *Detector) TryEnter(id uintptr, t reflect.Type) (*Scope, bool) {
	key := scopeKey{id: id, typ: t}
	if _, busy := d.active[key]; busy {
		return nil, false
	}

	d.active[key] = struct{}{}
	d.types[t]++

	return &Scope{detector: d, key: key}, true
}

// Has reports whether (id, t) is being converted.
func (d *Detector) Has(id uintptr, t reflect.Type) bool {
	_, ok := d.active[scopeKey{id: id, typ: t}]
	return ok
}

// ContainsType reports whether any active entry has type t.
func (d *Detector) ContainsType(t reflect.Type) bool {
	return d.types[t] > 0
}

// Depth is the number of active entries.
func (d *Detector) Depth() int {
	return len(d.active)
}

func (d *Detector) leave(key scopeKey) {
	delete(d.active, key)

	if d.types[key.typ]--; d.types[key.typ] <= 0 {
		delete(d.types, key.typ)
	}
}

// Scope is an active detector entry. Release it with defer right after a
// successful enter; releasing twice is a no-op. A nil scope is valid and
// stands for a value that never needs tracking.
type Scope struct {
	detector *Detector
	key      scopeKey
	released bool
}

// Release removes the entry from the detector.
func (s *Scope) Release() {
	if s == nil || s.released {
		return
	}

	s.released = true
	s.detector.leave(s.key)
}

// ContainsType reports whether t is anywhere on the active chain.
func (s *Scope) ContainsType(t reflect.Type) bool {
	if s == nil {
		return false
	}

	return s.detector.ContainsType(t)
}

// identity returns the address that identifies a reference value, or false
// for values copied by assignment and nil references.
func identity(v reflect.Value) (uintptr, bool) {
	if !v.IsValid() {
		return 0, false
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return 0, false
		}

		return v.Pointer(), true
	default:
		return 0, false
	}
}
