// Package host declares what the bridge needs from the scene graph that owns
// identity-managed objects: identities, ordered children, components,
// subtree duplication and identity lookup.
package host

// Object is an identity-managed value owned by the host. Identities are
// stable for the lifetime of the object and never reused within a session.
type Object interface {
	Identity() string
}

// Node is an element of the host hierarchy. Children are returned in a
// deterministic order.
type Node interface {
	Object
	ChildCount() int
	Child(i int) Node
	Components() []Component
}

// Component is an object attached to a node. Component types are the root
// types the bridge discovers field paths for.
type Component interface {
	Object
	Owner() Node
}

// Duplicator copies a subtree, preserving structure and sibling order, and
// returns the new subtree root.
type Duplicator interface {
	DuplicateSubtree(root Node) Node
}

// Resolver finds a live object by identity.
type Resolver interface {
	Resolve(identity string) (Object, bool)
}

// Host is everything the bridge consumes from the scene graph.
type Host interface {
	Duplicator
	Resolver
}

// Destroyer is implemented by hosts that announce destroyed nodes, so
// state kept per node can be dropped. The hook runs once per destroyed
// node, descendants included.
type Destroyer interface {
	OnDestroy(hook func(Node))
}

// Cloner is implemented by host objects that can produce an independent
// copy of themselves.
type Cloner interface {
	CloneObject() Object
}

// Readable is implemented by leaf resources whose data may be inaccessible,
// such as a texture living only on the GPU. Unreadable resources are shared,
// never copied.
type Readable interface {
	IsReadable() bool
}

// Attacher lets the bridge hang bookkeeping on a node while a duplication
// is in flight.
type Attacher interface {
	Attach(key string, value any)
	Attachment(key string) (any, bool)
	Detach(key string)
}

// Children returns the direct children of n in order.
func Children(n Node) []Node {
	count := n.ChildCount()

	children := make([]Node, 0, count)
	for i := range count {
		children = append(children, n.Child(i))
	}

	return children
}

// Walk visits n and its descendants breadth-first until visit returns false.
func Walk(n Node, visit func(Node) bool) {
	queue := []Node{n}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !visit(current) {
			return
		}

		for i := range current.ChildCount() {
			queue = append(queue, current.Child(i))
		}
	}
}

// ComponentIndex returns the position of c among its owner's components,
// or -1.
func ComponentIndex(c Component) int {
	owner := c.Owner()
	if owner == nil {
		return -1
	}

	for i, other := range owner.Components() {
		if other.Identity() == c.Identity() {
			return i
		}
	}

	return -1
}
