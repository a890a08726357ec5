package analyze

import (
	"reflect"
	"strings"
	"sync"

	"serialization-bridge/host"
	"serialization-bridge/options"
	"serialization-bridge/primitive"
)

var (
	autoSerializableType = reflect.TypeFor[options.AutoSerializable]()
	hostObjectType       = reflect.TypeFor[host.Object]()
)

// HostNamespace is the package path prefix of host value objects when no
// namespace is configured.
var HostNamespace = reflect.TypeFor[host.Object]().PkgPath()

// Capabilities answers capability questions about types. Interface
// implementation is checked first; types outside the module's control can
// be tagged explicitly.
type Capabilities struct {
	mu               sync.RWMutex
	autoSerializable map[reflect.Type]struct{}
	hostManaged      map[reflect.Type]struct{}
	hostValue        map[reflect.Type]struct{}
	namespaces       []string
}

// NewCapabilities creates a capability set treating types from the given
// package path prefixes as host value objects. HostNamespace is used when
// none are given.
func NewCapabilities(namespaces ...string) *Capabilities {
	if len(namespaces) == 0 {
		namespaces = []string{HostNamespace}
	}

	return &Capabilities{
		autoSerializable: make(map[reflect.Type]struct{}),
		hostManaged:      make(map[reflect.Type]struct{}),
		hostValue:        make(map[reflect.Type]struct{}),
		namespaces:       namespaces,
	}
}

// MarkAutoSerializable tags t (and *t) as auto-serializable.
func (c *Capabilities) MarkAutoSerializable(t reflect.Type) {
	c.mark(c.autoSerializable, t)
}

// MarkHostManaged tags t (and *t) as identity-managed by the host.
func (c *Capabilities) MarkHostManaged(t reflect.Type) {
	c.mark(c.hostManaged, t)
}

// MarkHostValueType tags t (and *t) as a host value object regardless of
// its package.
func (c *Capabilities) MarkHostValueType(t reflect.Type) {
	c.mark(c.hostValue, t)
}

func (c *Capabilities) mark(set map[reflect.Type]struct{}, t reflect.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()

	set[Deref(t)] = struct{}{}
}

func (c *Capabilities) tagged(set map[reflect.Type]struct{}, t reflect.Type) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := set[Deref(t)]

	return ok
}

// IsAutoSerializable reports whether t or *t implements
// options.AutoSerializable, or t was tagged.
func (c *Capabilities) IsAutoSerializable(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Implements(autoSerializableType) {
		return true
	}

	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		reflect.PointerTo(t).Implements(autoSerializableType) {
		return true
	}

	return c.tagged(c.autoSerializable, t)
}

// IsHostManaged reports whether values of t are host-owned objects.
// Interface types embedding host.Object count as host-managed.
func (c *Capabilities) IsHostManaged(t reflect.Type) bool {
	if t == nil {
		return false
	}

	if t.Implements(hostObjectType) {
		return true
	}

	return t.Kind() == reflect.Pointer && c.tagged(c.hostManaged, t)
}

// IsHostValueType reports whether t is a pointer to a host-defined struct
// that behaves like a value: not host-managed, not a collection, no func
// fields.
func (c *Capabilities) IsHostValueType(t reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return false
	}

	if c.IsHostManaged(t) || HasFuncFields(t.Elem()) {
		return false
	}

	return c.inNamespace(t.Elem().PkgPath()) || c.tagged(c.hostValue, t)
}

func (c *Capabilities) inNamespace(pkgPath string) bool {
	for _, ns := range c.namespaces {
		if pkgPath == ns || strings.HasPrefix(pkgPath, ns+"/") {
			return true
		}
	}

	return false
}

// IsTraversable reports whether discovery may descend into fields of t:
// structs and pointers to structs that are neither primitive nor
// host-managed.
func (c *Capabilities) IsTraversable(t reflect.Type) bool {
	base := Deref(t)
	if base == nil || base.Kind() != reflect.Struct || primitive.IsLeaf(base) {
		return false
	}

	return !c.IsHostManaged(t) && !c.IsHostManaged(reflect.PointerTo(base))
}

// HasFuncFields reports whether the struct t declares a func-typed field.
func HasFuncFields(t reflect.Type) bool {
	if t.Kind() != reflect.Struct {
		return false
	}

	for i := range t.NumField() {
		if t.Field(i).Type.Kind() == reflect.Func {
			return true
		}
	}

	return false
}
