package scene

import (
	"slices"
	"strings"

	"serialization-bridge/host"
)

// Object is a node of the scene tree.
type Object struct {
	world       *World
	id          string
	parent      *Object
	children    []*Object
	components  []host.Component
	attachments map[string]any

	Name string
}

func (o *Object) Identity() string { return o.id }

func (o *Object) ChildCount() int { return len(o.children) }

func (o *Object) Child(i int) host.Node { return o.children[i] }

func (o *Object) Components() []host.Component {
	return append([]host.Component(nil), o.components...)
}

func (o *Object) Parent() *Object { return o.parent }

func (o *Object) World() *World { return o.world }

// Children returns the direct children in sibling order.
func (o *Object) Children() []*Object {
	return append([]*Object(nil), o.children...)
}

// AddChild creates a new child appended after the existing siblings.
func (o *Object) AddChild(name string) *Object {
	child := o.world.NewObject(name)
	child.parent = o
	o.children = append(o.children, child)

	return child
}

// SetSiblingIndex moves o to position i among its siblings.
func (o *Object) SetSiblingIndex(i int) {
	p := o.parent
	if p == nil {
		return
	}

	p.removeChild(o)
	p.children = slices.Insert(p.children, max(0, min(i, len(p.children))), o)
}

func (o *Object) removeChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// Find looks up a descendant by slash-separated names, "" being o itself.
func (o *Object) Find(path string) *Object {
	current := o
	if path == "" {
		return current
	}

	for name := range strings.SplitSeq(path, "/") {
		var next *Object

		for _, c := range current.children {
			if c.Name == name {
				next = c
				break
			}
		}

		if next == nil {
			return nil
		}

		current = next
	}

	return current
}

// Attach implements host.Attacher.
func (o *Object) Attach(key string, value any) {
	if o.attachments == nil {
		o.attachments = make(map[string]any)
	}

	o.attachments[key] = value
}

func (o *Object) Attachment(key string) (any, bool) {
	v, ok := o.attachments[key]
	return v, ok
}

func (o *Object) Detach(key string) {
	delete(o.attachments, key)
}
