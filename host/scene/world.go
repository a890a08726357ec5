package scene

import (
	"reflect"
	"slices"
	"sync"

	"github.com/google/uuid"

	"serialization-bridge/host"
)

// World owns every object created through it and resolves identities.
type World struct {
	mu      sync.RWMutex
	objects map[string]host.Object
	hooks   []func(host.Node)
	newID   func() string
}

// NewWorld creates an empty world issuing random UUID identities.
func NewWorld() *World {
	return &World{
		objects: make(map[string]host.Object),
		newID:   uuid.NewString,
	}
}

func (w *World) register(o host.Object) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.objects[o.Identity()] = o
}

func (w *World) unregister(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.objects, id)
}

// Resolve implements host.Resolver.
func (w *World) Resolve(identity string) (host.Object, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	o, ok := w.objects[identity]

	return o, ok
}

// Len is the number of live objects, components and resources.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.objects)
}

// NewObject creates a detached root object.
func (w *World) NewObject(name string) *Object {
	o := &Object{world: w, id: w.newID(), Name: name}
	w.register(o)

	return o
}

// OnDestroy implements host.Destroyer.
func (w *World) OnDestroy(hook func(host.Node)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.hooks = append(w.hooks, hook)
}

// Destroy removes o, its descendants and their components from the world
// and detaches o from its parent.
func (w *World) Destroy(o *Object) {
	if o.parent != nil {
		o.parent.removeChild(o)
		o.parent = nil
	}

	w.mu.RLock()
	hooks := slices.Clone(w.hooks)
	w.mu.RUnlock()

	host.Walk(o, func(n host.Node) bool {
		for _, c := range n.Components() {
			w.unregister(c.Identity())
		}

		w.unregister(n.Identity())

		for _, hook := range hooks {
			hook(n)
		}

		return true
	})
}

// DuplicateSubtree implements host.Duplicator. The copy mirrors names,
// structure and sibling order; every node and component gets a new
// identity. Components are copied field by field without following
// pointers, so anything the bridge does not restore stays shared.
func (w *World) DuplicateSubtree(root host.Node) host.Node {
	src, ok := root.(*Object)
	if !ok {
		return nil
	}

	return w.duplicate(src)
}

func (w *World) duplicate(src *Object) *Object {
	dst := w.NewObject(src.Name)

	for _, c := range src.components {
		copied := reflect.New(reflect.TypeOf(c).Elem())
		copied.Elem().Set(reflect.ValueOf(c).Elem())

		bound := copied.Interface().(bindable)
		w.bind(dst, bound)
	}

	for _, child := range src.children {
		dup := w.duplicate(child)
		dup.parent = dst
		dst.children = append(dst.children, dup)
	}

	return dst
}

func (w *World) bind(o *Object, c bindable) {
	b := c.behaviour()
	b.id = w.newID()
	b.owner = o

	o.components = append(o.components, c)
	w.register(c)
}
