package scene

import "serialization-bridge/host"

// Behaviour is embedded by component types to become attachable:
//
//	type Spawner struct {
//		scene.Behaviour
//		Prefab *scene.Object
//	}
type Behaviour struct {
	id    string
	owner *Object
}

func (b *Behaviour) Identity() string { return b.id }

func (b *Behaviour) Owner() host.Node {
	if b.owner == nil {
		return nil
	}

	return b.owner
}

func (b *Behaviour) behaviour() *Behaviour { return b }

type bindable interface {
	host.Component
	behaviour() *Behaviour
}

// AddComponent attaches c to o and registers it in o's world.
func AddComponent[T bindable](o *Object, c T) T {
	o.world.bind(o, c)
	return c
}

// GetComponent returns the first component of o with type T.
func GetComponent[T host.Component](o host.Node) (T, bool) {
	for _, c := range o.Components() {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}

	var zero T

	return zero, false
}
